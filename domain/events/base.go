package events

import (
	"time"

	"tutoria-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// RoadmapCreated is raised when a new roadmap is created
type RoadmapCreated struct {
	BaseEvent
	RoadmapID string `json:"roadmap_id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
}

// NewRoadmapCreated creates a RoadmapCreated event
func NewRoadmapCreated(roadmapID, ownerID, title string, timestamp time.Time) RoadmapCreated {
	return RoadmapCreated{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.created",
			Timestamp:   timestamp,
		},
		RoadmapID: roadmapID,
		OwnerID:   ownerID,
		Title:     title,
	}
}

// NodeAdded is raised when a node is added to a roadmap
type NodeAdded struct {
	BaseEvent
	NodeID valueobjects.NodeID `json:"node_id"`
	Kind   string              `json:"kind"`
}

// NewNodeAdded creates a NodeAdded event
func NewNodeAdded(roadmapID string, nodeID valueobjects.NodeID, kind string, timestamp time.Time) NodeAdded {
	return NodeAdded{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.node_added",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
		Kind:   kind,
	}
}

// NodeUpdated is raised when node fields change
type NodeUpdated struct {
	BaseEvent
	NodeID valueobjects.NodeID `json:"node_id"`
}

// NewNodeUpdated creates a NodeUpdated event
func NewNodeUpdated(roadmapID string, nodeID valueobjects.NodeID, timestamp time.Time) NodeUpdated {
	return NodeUpdated{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.node_updated",
			Timestamp:   timestamp,
		},
		NodeID: nodeID,
	}
}

// NodeRemoved is raised when a node is deleted, after its connections
// have been cascaded away
type NodeRemoved struct {
	BaseEvent
	NodeID             valueobjects.NodeID `json:"node_id"`
	RemovedConnections int                 `json:"removed_connections"`
}

// NewNodeRemoved creates a NodeRemoved event
func NewNodeRemoved(roadmapID string, nodeID valueobjects.NodeID, removedConnections int, timestamp time.Time) NodeRemoved {
	return NodeRemoved{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.node_removed",
			Timestamp:   timestamp,
		},
		NodeID:             nodeID,
		RemovedConnections: removedConnections,
	}
}

// NodesConnected is raised when a directed connection is created
type NodesConnected struct {
	BaseEvent
	ConnectionID valueobjects.ConnectionID `json:"connection_id"`
	SourceNodeID valueobjects.NodeID       `json:"source_node_id"`
	TargetNodeID valueobjects.NodeID       `json:"target_node_id"`
}

// NewNodesConnected creates a NodesConnected event
func NewNodesConnected(roadmapID string, connectionID valueobjects.ConnectionID, sourceID, targetID valueobjects.NodeID, timestamp time.Time) NodesConnected {
	return NodesConnected{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.nodes_connected",
			Timestamp:   timestamp,
		},
		ConnectionID: connectionID,
		SourceNodeID: sourceID,
		TargetNodeID: targetID,
	}
}

// ConnectionRemoved is raised when a connection is deleted
type ConnectionRemoved struct {
	BaseEvent
	ConnectionID valueobjects.ConnectionID `json:"connection_id"`
}

// NewConnectionRemoved creates a ConnectionRemoved event
func NewConnectionRemoved(roadmapID string, connectionID valueobjects.ConnectionID, timestamp time.Time) ConnectionRemoved {
	return ConnectionRemoved{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.connection_removed",
			Timestamp:   timestamp,
		},
		ConnectionID: connectionID,
	}
}

// ResourceAttached is raised when a resource is added to a node
type ResourceAttached struct {
	BaseEvent
	NodeID     valueobjects.NodeID     `json:"node_id"`
	ResourceID valueobjects.ResourceID `json:"resource_id"`
}

// NewResourceAttached creates a ResourceAttached event
func NewResourceAttached(roadmapID string, nodeID valueobjects.NodeID, resourceID valueobjects.ResourceID, timestamp time.Time) ResourceAttached {
	return ResourceAttached{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.resource_attached",
			Timestamp:   timestamp,
		},
		NodeID:     nodeID,
		ResourceID: resourceID,
	}
}

// ResourceRemoved is raised when a resource is removed from a node
type ResourceRemoved struct {
	BaseEvent
	NodeID     valueobjects.NodeID     `json:"node_id"`
	ResourceID valueobjects.ResourceID `json:"resource_id"`
}

// NewResourceRemoved creates a ResourceRemoved event
func NewResourceRemoved(roadmapID string, nodeID valueobjects.NodeID, resourceID valueobjects.ResourceID, timestamp time.Time) ResourceRemoved {
	return ResourceRemoved{
		BaseEvent: BaseEvent{
			AggregateID: roadmapID,
			EventType:   "roadmap.resource_removed",
			Timestamp:   timestamp,
		},
		NodeID:     nodeID,
		ResourceID: resourceID,
	}
}
