package entities

import (
	"strings"
	"time"

	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/valueobjects"
)

// NodeKind defines the kind of learning unit a node represents
type NodeKind string

const (
	KindTopic      NodeKind = "topic"
	KindProject    NodeKind = "project"
	KindMilestone  NodeKind = "milestone"
	KindCheckpoint NodeKind = "checkpoint"
)

// IsValid reports whether the kind is one of the closed set
func (k NodeKind) IsValid() bool {
	switch k {
	case KindTopic, KindProject, KindMilestone, KindCheckpoint:
		return true
	default:
		return false
	}
}

// Node is the main entity representing a unit in a learning roadmap.
// This is a rich domain model with encapsulated business logic; mutation
// by identifier on a missing field is a silent no-op because such calls
// are ordinary UI races, not failures.
type Node struct {
	id             valueobjects.NodeID
	title          string
	description    string
	kind           NodeKind
	position       valueobjects.Position
	resources      []*Resource
	estimatedHours float64
	isOptional     bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewNode creates a node with the default title for its kind
func NewNode(kind NodeKind, position valueobjects.Position, cfg *config.EditorConfig) *Node {
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}
	if !kind.IsValid() {
		kind = KindTopic
	}

	now := time.Now()
	return &Node{
		id:             valueobjects.NewNodeID(),
		title:          cfg.DefaultTitleFor(string(kind)),
		kind:           kind,
		position:       position,
		resources:      []*Resource{},
		estimatedHours: cfg.DefaultEstimatedHours,
		createdAt:      now,
		updatedAt:      now,
	}
}

// ReconstructNode recreates a node from persisted data
func ReconstructNode(
	id valueobjects.NodeID,
	title, description string,
	kind NodeKind,
	position valueobjects.Position,
	resources []*Resource,
	estimatedHours float64,
	isOptional bool,
) *Node {
	if !kind.IsValid() {
		kind = KindTopic
	}
	if estimatedHours < 0 {
		estimatedHours = 0
	}
	if resources == nil {
		resources = []*Resource{}
	}
	now := time.Now()
	return &Node{
		id:             id,
		title:          title,
		description:    description,
		kind:           kind,
		position:       position,
		resources:      resources,
		estimatedHours: estimatedHours,
		isOptional:     isOptional,
		createdAt:      now,
		updatedAt:      now,
	}
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Title returns the node's title
func (n *Node) Title() string {
	return n.title
}

// Description returns the node's description
func (n *Node) Description() string {
	return n.description
}

// Kind returns the node's kind
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Position returns the node's position in canvas logical coordinates
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// EstimatedHours returns the estimated effort for the node
func (n *Node) EstimatedHours() float64 {
	return n.estimatedHours
}

// IsOptional reports whether the node is optional in the roadmap
func (n *Node) IsOptional() bool {
	return n.isOptional
}

// UpdatedAt returns when the node was last updated
func (n *Node) UpdatedAt() time.Time {
	return n.updatedAt
}

// Rename updates the node's title
func (n *Node) Rename(title string) {
	title = strings.TrimSpace(title)
	if title == "" || title == n.title {
		return
	}
	n.title = title
	n.touch()
}

// SetDescription updates the free-text description
func (n *Node) SetDescription(description string) {
	if description == n.description {
		return
	}
	n.description = description
	n.touch()
}

// SetKind changes the node's kind; unknown kinds are ignored
func (n *Node) SetKind(kind NodeKind) {
	if !kind.IsValid() || kind == n.kind {
		return
	}
	n.kind = kind
	n.touch()
}

// MoveTo moves the node to a new position
func (n *Node) MoveTo(position valueobjects.Position) {
	if position.Equals(n.position) {
		return
	}
	n.position = position
	n.touch()
}

// SetEstimatedHours updates the effort estimate; negative values are ignored
func (n *Node) SetEstimatedHours(hours float64) {
	if hours < 0 || hours == n.estimatedHours {
		return
	}
	n.estimatedHours = hours
	n.touch()
}

// SetOptional marks the node as optional or required
func (n *Node) SetOptional(optional bool) {
	if optional == n.isOptional {
		return
	}
	n.isOptional = optional
	n.touch()
}

// AttachResource appends a resource to the node's list. Returns false
// when the resource is nil, leaving the list untouched.
func (n *Node) AttachResource(resource *Resource) bool {
	if resource == nil {
		return false
	}
	n.resources = append(n.resources, resource)
	n.touch()
	return true
}

// RemoveResource deletes a resource by id; missing ids are a no-op
func (n *Node) RemoveResource(id valueobjects.ResourceID) bool {
	for i, r := range n.resources {
		if r.ID.Equals(id) {
			n.resources = append(n.resources[:i], n.resources[i+1:]...)
			n.touch()
			return true
		}
	}
	return false
}

// Resources returns the ordered resource list
func (n *Node) Resources() []*Resource {
	// Return a copy to maintain encapsulation
	resources := make([]*Resource, len(n.resources))
	copy(resources, n.resources)
	return resources
}

// Duplicate returns an independent copy of the node: fresh identifiers,
// title suffixed " (copy)" and position offset so the copy never sits
// exactly on top of the original. Resources are deep-copied.
func (n *Node) Duplicate(cfg *config.EditorConfig) *Node {
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}

	resources := make([]*Resource, 0, len(n.resources))
	for _, r := range n.resources {
		resources = append(resources, r.Clone())
	}

	now := time.Now()
	return &Node{
		id:             valueobjects.NewNodeID(),
		title:          n.title + " (copy)",
		description:    n.description,
		kind:           n.kind,
		position:       n.position.Translate(cfg.DuplicateOffsetX, cfg.DuplicateOffsetY),
		resources:      resources,
		estimatedHours: n.estimatedHours,
		isOptional:     n.isOptional,
		createdAt:      now,
		updatedAt:      now,
	}
}

func (n *Node) touch() {
	n.updatedAt = time.Now()
}
