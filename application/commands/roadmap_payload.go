package commands

import (
	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/domain/core/entities"
	"tutoria-backend/domain/core/valueobjects"
)

// The input shapes below mirror the persisted wire format: a node
// serializes as {id, title, description, type, position:{x,y},
// resources, estimatedHours, isOptional} and a connection as
// {id, sourceNodeId, targetNodeId, isRequired}.

// PositionInput is the {x, y} canvas coordinate wire shape
type PositionInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ResourceInput is the wire shape of a node resource
type ResourceInput struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title" validate:"required,max=300"`
	URL       string `json:"url" validate:"required,url"`
	Type      string `json:"type" validate:"required,oneof=video article course documentation exercise book"`
	IsPremium bool   `json:"isPremium"`
}

// NodeInput is the wire shape of a roadmap node
type NodeInput struct {
	ID             string          `json:"id" validate:"required"`
	Title          string          `json:"title" validate:"required,max=300"`
	Description    string          `json:"description" validate:"max=5000"`
	Type           string          `json:"type" validate:"required,oneof=topic project milestone checkpoint"`
	Position       PositionInput   `json:"position"`
	Resources      []ResourceInput `json:"resources" validate:"dive"`
	EstimatedHours float64         `json:"estimatedHours" validate:"gte=0"`
	IsOptional     bool            `json:"isOptional"`
}

// ConnectionInput is the wire shape of a directed connection
type ConnectionInput struct {
	ID           string `json:"id" validate:"required"`
	SourceNodeID string `json:"sourceNodeId" validate:"required"`
	TargetNodeID string `json:"targetNodeId" validate:"required"`
	IsRequired   bool   `json:"isRequired"`
}

// buildNodes reconstructs node entities from wire inputs
func buildNodes(inputs []NodeInput) ([]*entities.Node, error) {
	nodes := make([]*entities.Node, 0, len(inputs))
	for _, in := range inputs {
		id, err := valueobjects.NewNodeIDFromString(in.ID)
		if err != nil {
			return nil, err
		}
		position, err := valueobjects.NewPosition(in.Position.X, in.Position.Y)
		if err != nil {
			return nil, err
		}

		resources := make([]*entities.Resource, 0, len(in.Resources))
		for _, r := range in.Resources {
			rid, err := valueobjects.NewResourceIDFromString(r.ID)
			if err != nil {
				return nil, err
			}
			resources = append(resources, &entities.Resource{
				ID:        rid,
				Title:     r.Title,
				URL:       r.URL,
				Kind:      entities.ResourceKind(r.Type),
				IsPremium: r.IsPremium,
			})
		}

		nodes = append(nodes, entities.ReconstructNode(
			id,
			in.Title,
			in.Description,
			entities.NodeKind(in.Type),
			position,
			resources,
			in.EstimatedHours,
			in.IsOptional,
		))
	}
	return nodes, nil
}

// buildConnections reconstructs connections from wire inputs
func buildConnections(inputs []ConnectionInput) ([]*aggregates.Connection, error) {
	connections := make([]*aggregates.Connection, 0, len(inputs))
	for _, in := range inputs {
		id, err := valueobjects.NewConnectionIDFromString(in.ID)
		if err != nil {
			return nil, err
		}
		sourceID, err := valueobjects.NewNodeIDFromString(in.SourceNodeID)
		if err != nil {
			return nil, err
		}
		targetID, err := valueobjects.NewNodeIDFromString(in.TargetNodeID)
		if err != nil {
			return nil, err
		}
		connections = append(connections, &aggregates.Connection{
			ID:           id,
			SourceNodeID: sourceID,
			TargetNodeID: targetID,
			IsRequired:   in.IsRequired,
		})
	}
	return connections, nil
}
