package queries

import (
	"context"
	"errors"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/domain/core/entities"
)

// GetRoadmapQuery represents a query to retrieve one roadmap
type GetRoadmapQuery struct {
	RoadmapID string `json:"roadmap_id"`
	OwnerID   string `json:"owner_id"`
}

// Validate validates the query
func (q GetRoadmapQuery) Validate() error {
	if q.RoadmapID == "" {
		return errors.New("roadmap ID is required")
	}
	if q.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// RoadmapDTO is the full roadmap read model in the persisted wire shape
type RoadmapDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	Tags        []string        `json:"tags"`
	Nodes       []NodeDTO       `json:"nodes"`
	Connections []ConnectionDTO `json:"connections"`
	UpdatedAt   string          `json:"updated_at"`
}

// NodeDTO is a data transfer object for nodes
type NodeDTO struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Type           string        `json:"type"`
	Position       PositionDTO   `json:"position"`
	Resources      []ResourceDTO `json:"resources"`
	EstimatedHours float64       `json:"estimatedHours"`
	IsOptional     bool          `json:"isOptional"`
}

// ConnectionDTO is a data transfer object for connections
type ConnectionDTO struct {
	ID           string `json:"id"`
	SourceNodeID string `json:"sourceNodeId"`
	TargetNodeID string `json:"targetNodeId"`
	IsRequired   bool   `json:"isRequired"`
}

// ResourceDTO is a data transfer object for node resources
type ResourceDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	IsPremium bool   `json:"isPremium"`
}

// PositionDTO represents a node position in canvas logical coordinates
type PositionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GetRoadmapHandler handles the GetRoadmapQuery
type GetRoadmapHandler struct {
	roadmapRepo ports.RoadmapRepository
}

// NewGetRoadmapHandler creates a new handler instance
func NewGetRoadmapHandler(roadmapRepo ports.RoadmapRepository) *GetRoadmapHandler {
	return &GetRoadmapHandler{roadmapRepo: roadmapRepo}
}

// Handle executes the get roadmap query
func (h *GetRoadmapHandler) Handle(ctx context.Context, query GetRoadmapQuery) (*RoadmapDTO, error) {
	roadmap, err := h.roadmapRepo.FindByID(ctx, query.OwnerID, aggregates.RoadmapID(query.RoadmapID))
	if err != nil {
		return nil, err
	}
	dto := MapRoadmap(roadmap)
	return &dto, nil
}

// MapRoadmap converts an aggregate into its read model
func MapRoadmap(roadmap *aggregates.Roadmap) RoadmapDTO {
	return RoadmapDTO{
		ID:          roadmap.ID().String(),
		Title:       roadmap.Title(),
		Description: roadmap.Description(),
		Category:    roadmap.Category(),
		Difficulty:  roadmap.Difficulty(),
		Tags:        roadmap.Tags(),
		Nodes:       MapNodes(roadmap.Nodes()),
		Connections: MapConnections(roadmap.Connections()),
		UpdatedAt:   roadmap.UpdatedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// MapNodes converts node entities into their wire shape
func MapNodes(nodes []*entities.Node) []NodeDTO {
	dtos := make([]NodeDTO, 0, len(nodes))
	for _, node := range nodes {
		resources := make([]ResourceDTO, 0, len(node.Resources()))
		for _, r := range node.Resources() {
			resources = append(resources, ResourceDTO{
				ID:        r.ID.String(),
				Title:     r.Title,
				URL:       r.URL,
				Type:      string(r.Kind),
				IsPremium: r.IsPremium,
			})
		}
		dtos = append(dtos, NodeDTO{
			ID:          node.ID().String(),
			Title:       node.Title(),
			Description: node.Description(),
			Type:        string(node.Kind()),
			Position: PositionDTO{
				X: node.Position().X(),
				Y: node.Position().Y(),
			},
			Resources:      resources,
			EstimatedHours: node.EstimatedHours(),
			IsOptional:     node.IsOptional(),
		})
	}
	return dtos
}

// MapConnections converts connections into their wire shape
func MapConnections(connections []*aggregates.Connection) []ConnectionDTO {
	dtos := make([]ConnectionDTO, 0, len(connections))
	for _, c := range connections {
		dtos = append(dtos, ConnectionDTO{
			ID:           c.ID.String(),
			SourceNodeID: c.SourceNodeID.String(),
			TargetNodeID: c.TargetNodeID.String(),
			IsRequired:   c.IsRequired,
		})
	}
	return dtos
}
