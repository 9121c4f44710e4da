// Package supabase persists roadmaps through the Supabase PostgREST API.
// Each roadmap is one row; nodes and connections live in jsonb columns so
// a save replaces the whole document atomically.
package supabase

import (
	"context"
	"time"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/domain/core/entities"
	"tutoria-backend/domain/core/valueobjects"
	pkgerrors "tutoria-backend/pkg/errors"
)

// roadmapRow is the table row shape
type roadmapRow struct {
	ID          string             `json:"id"`
	OwnerID     string             `json:"owner_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Difficulty  string             `json:"difficulty"`
	Tags        []string           `json:"tags"`
	Nodes       []nodeRecord       `json:"nodes"`
	Connections []connectionRecord `json:"connections"`
	UpdatedAt   string             `json:"updated_at"`
}

// nodeRecord is the persisted node shape inside the jsonb column
type nodeRecord struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Type           string           `json:"type"`
	Position       positionRecord   `json:"position"`
	Resources      []resourceRecord `json:"resources"`
	EstimatedHours float64          `json:"estimatedHours"`
	IsOptional     bool             `json:"isOptional"`
}

type positionRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type resourceRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	IsPremium bool   `json:"isPremium"`
}

type connectionRecord struct {
	ID           string `json:"id"`
	SourceNodeID string `json:"sourceNodeId"`
	TargetNodeID string `json:"targetNodeId"`
	IsRequired   bool   `json:"isRequired"`
}

// RoadmapRepository implements ports.RoadmapRepository on Supabase
type RoadmapRepository struct {
	client *supabase.Client
	table  string
	cfg    *config.EditorConfig
	logger *zap.Logger
}

// NewRoadmapRepository creates a repository bound to one table
func NewRoadmapRepository(client *supabase.Client, table string, cfg *config.EditorConfig, logger *zap.Logger) *RoadmapRepository {
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}
	return &RoadmapRepository{
		client: client,
		table:  table,
		cfg:    cfg,
		logger: logger,
	}
}

var _ ports.RoadmapRepository = (*RoadmapRepository)(nil)

// FindByID loads one roadmap owned by ownerID
func (r *RoadmapRepository) FindByID(ctx context.Context, ownerID string, id aggregates.RoadmapID) (*aggregates.Roadmap, error) {
	var rows []roadmapRow
	_, err := r.client.From(r.table).
		Select("*", "", false).
		Eq("id", string(id)).
		Eq("owner_id", ownerID).
		ExecuteTo(&rows)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("find roadmap", err)
	}
	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("roadmap")
	}
	return r.toAggregate(rows[0])
}

// FindByOwner lists all roadmaps of one author, most recently updated first
func (r *RoadmapRepository) FindByOwner(ctx context.Context, ownerID string) ([]*aggregates.Roadmap, error) {
	var rows []roadmapRow
	_, err := r.client.From(r.table).
		Select("*", "", false).
		Eq("owner_id", ownerID).
		ExecuteTo(&rows)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list roadmaps", err)
	}

	roadmaps := make([]*aggregates.Roadmap, 0, len(rows))
	for _, row := range rows {
		roadmap, err := r.toAggregate(row)
		if err != nil {
			r.logger.Warn("Skipping unreadable roadmap row",
				zap.String("roadmap_id", row.ID),
				zap.Error(err),
			)
			continue
		}
		roadmaps = append(roadmaps, roadmap)
	}
	return roadmaps, nil
}

// Save upserts the complete roadmap record
func (r *RoadmapRepository) Save(ctx context.Context, roadmap *aggregates.Roadmap) error {
	row := r.toRow(roadmap)
	_, _, err := r.client.From(r.table).
		Insert(row, true, "id", "minimal", "").
		Execute()
	if err != nil {
		return pkgerrors.NewDatabaseError("save roadmap", err)
	}
	return nil
}

// Delete removes a roadmap owned by ownerID
func (r *RoadmapRepository) Delete(ctx context.Context, ownerID string, id aggregates.RoadmapID) error {
	_, _, err := r.client.From(r.table).
		Delete("minimal", "").
		Eq("id", string(id)).
		Eq("owner_id", ownerID).
		Execute()
	if err != nil {
		return pkgerrors.NewDatabaseError("delete roadmap", err)
	}
	return nil
}

// toRow flattens an aggregate into its table row
func (r *RoadmapRepository) toRow(roadmap *aggregates.Roadmap) roadmapRow {
	nodes := roadmap.Nodes()
	nodeRecords := make([]nodeRecord, 0, len(nodes))
	for _, node := range nodes {
		resources := node.Resources()
		resourceRecords := make([]resourceRecord, 0, len(resources))
		for _, resource := range resources {
			resourceRecords = append(resourceRecords, resourceRecord{
				ID:        resource.ID.String(),
				Title:     resource.Title,
				URL:       resource.URL,
				Type:      string(resource.Kind),
				IsPremium: resource.IsPremium,
			})
		}
		nodeRecords = append(nodeRecords, nodeRecord{
			ID:          node.ID().String(),
			Title:       node.Title(),
			Description: node.Description(),
			Type:        string(node.Kind()),
			Position: positionRecord{
				X: node.Position().X(),
				Y: node.Position().Y(),
			},
			Resources:      resourceRecords,
			EstimatedHours: node.EstimatedHours(),
			IsOptional:     node.IsOptional(),
		})
	}

	connections := roadmap.Connections()
	connectionRecords := make([]connectionRecord, 0, len(connections))
	for _, connection := range connections {
		connectionRecords = append(connectionRecords, connectionRecord{
			ID:           connection.ID.String(),
			SourceNodeID: connection.SourceNodeID.String(),
			TargetNodeID: connection.TargetNodeID.String(),
			IsRequired:   connection.IsRequired,
		})
	}

	return roadmapRow{
		ID:          roadmap.ID().String(),
		OwnerID:     roadmap.OwnerID(),
		Title:       roadmap.Title(),
		Description: roadmap.Description(),
		Category:    roadmap.Category(),
		Difficulty:  roadmap.Difficulty(),
		Tags:        roadmap.Tags(),
		Nodes:       nodeRecords,
		Connections: connectionRecords,
		UpdatedAt:   roadmap.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

// toAggregate rebuilds an aggregate from its table row
func (r *RoadmapRepository) toAggregate(row roadmapRow) (*aggregates.Roadmap, error) {
	nodes := make([]*entities.Node, 0, len(row.Nodes))
	for _, record := range row.Nodes {
		node, err := r.toNode(record)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	connections := make([]*aggregates.Connection, 0, len(row.Connections))
	for _, record := range row.Connections {
		id, err := valueobjects.NewConnectionIDFromString(record.ID)
		if err != nil {
			return nil, err
		}
		sourceID, err := valueobjects.NewNodeIDFromString(record.SourceNodeID)
		if err != nil {
			return nil, err
		}
		targetID, err := valueobjects.NewNodeIDFromString(record.TargetNodeID)
		if err != nil {
			return nil, err
		}
		connections = append(connections, &aggregates.Connection{
			ID:           id,
			SourceNodeID: sourceID,
			TargetNodeID: targetID,
			IsRequired:   record.IsRequired,
		})
	}

	return aggregates.ReconstructRoadmap(
		aggregates.RoadmapID(row.ID),
		row.OwnerID,
		row.Title,
		row.Description,
		row.Category,
		row.Difficulty,
		row.Tags,
		nodes,
		connections,
		r.cfg,
	)
}

func (r *RoadmapRepository) toNode(record nodeRecord) (*entities.Node, error) {
	id, err := valueobjects.NewNodeIDFromString(record.ID)
	if err != nil {
		return nil, err
	}
	position, err := valueobjects.NewPosition(record.Position.X, record.Position.Y)
	if err != nil {
		return nil, err
	}

	resources := make([]*entities.Resource, 0, len(record.Resources))
	for _, rr := range record.Resources {
		rid, err := valueobjects.NewResourceIDFromString(rr.ID)
		if err != nil {
			return nil, err
		}
		resources = append(resources, &entities.Resource{
			ID:        rid,
			Title:     rr.Title,
			URL:       rr.URL,
			Kind:      entities.ResourceKind(rr.Type),
			IsPremium: rr.IsPremium,
		})
	}

	return entities.ReconstructNode(
		id,
		record.Title,
		record.Description,
		entities.NodeKind(record.Type),
		position,
		resources,
		record.EstimatedHours,
		record.IsOptional,
	), nil
}
