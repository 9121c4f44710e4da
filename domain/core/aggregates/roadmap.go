package aggregates

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/entities"
	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/domain/events"
)

// RoadmapID represents a unique roadmap identifier
type RoadmapID string

// NewRoadmapID creates a new random RoadmapID
func NewRoadmapID() RoadmapID {
	return RoadmapID(uuid.New().String())
}

// String returns the string representation
func (id RoadmapID) String() string {
	return string(id)
}

// Roadmap is the aggregate root for a learning roadmap: a graph of
// nodes and directed connections plus metadata the editor never touches.
//
// Graph mutations follow the silent no-op error model: operations on
// identifiers that no longer exist, self-loops and duplicate connection
// requests leave the graph unchanged instead of failing, because they
// represent ordinary UI races (a drag event arriving after the dragged
// node was deleted by a keyboard shortcut, and the like).
type Roadmap struct {
	id          RoadmapID
	ownerID     string
	title       string
	description string
	category    string
	difficulty  string
	tags        []string
	nodes       []*entities.Node
	connections []*Connection
	cfg         *config.EditorConfig
	createdAt   time.Time
	updatedAt   time.Time
	version     int
	events      []events.DomainEvent
}

// Connection represents a directed, optionally-required prerequisite
// edge between two nodes
type Connection struct {
	ID           valueobjects.ConnectionID
	SourceNodeID valueobjects.NodeID
	TargetNodeID valueobjects.NodeID
	IsRequired   bool
}

// NodeChanges is a partial-update descriptor; nil fields are left alone
type NodeChanges struct {
	Title          *string
	Description    *string
	Kind           *entities.NodeKind
	Position       *valueobjects.Position
	EstimatedHours *float64
	IsOptional     *bool
}

// NewRoadmap creates a new roadmap aggregate
func NewRoadmap(ownerID, title string, cfg *config.EditorConfig) (*Roadmap, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID required")
	}
	if title == "" {
		return nil, errors.New("roadmap title required")
	}
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}

	now := time.Now()
	roadmap := &Roadmap{
		id:          NewRoadmapID(),
		ownerID:     ownerID,
		title:       title,
		tags:        []string{},
		nodes:       []*entities.Node{},
		connections: []*Connection{},
		cfg:         cfg,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		events:      []events.DomainEvent{},
	}

	roadmap.addEvent(events.NewRoadmapCreated(roadmap.id.String(), ownerID, title, now))

	return roadmap, nil
}

// NewRoadmapWithID creates a roadmap under a caller-supplied identifier,
// for hosts that allocate ids before dispatching the create command
func NewRoadmapWithID(id RoadmapID, ownerID, title string, cfg *config.EditorConfig) (*Roadmap, error) {
	if id == "" {
		return nil, errors.New("roadmap id required")
	}
	roadmap, err := NewRoadmap(ownerID, title, cfg)
	if err != nil {
		return nil, err
	}
	roadmap.id = id
	roadmap.events = []events.DomainEvent{events.NewRoadmapCreated(id.String(), ownerID, title, roadmap.createdAt)}
	return roadmap, nil
}

// UpdateDetails replaces the roadmap metadata the editor core never
// touches. Blank titles are ignored.
func (r *Roadmap) UpdateDetails(title, description, category, difficulty string, tags []string) {
	if title != "" {
		r.title = title
	}
	r.description = description
	r.category = category
	r.difficulty = difficulty
	if tags == nil {
		tags = []string{}
	}
	r.tags = tags
	r.bump()
}

// ReconstructRoadmap recreates a roadmap from stored data
func ReconstructRoadmap(
	id RoadmapID,
	ownerID, title, description, category, difficulty string,
	tags []string,
	nodes []*entities.Node,
	connections []*Connection,
	cfg *config.EditorConfig,
) (*Roadmap, error) {
	if id == "" || ownerID == "" {
		return nil, errors.New("required fields missing for roadmap reconstruction")
	}
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}
	if tags == nil {
		tags = []string{}
	}
	if nodes == nil {
		nodes = []*entities.Node{}
	}
	if connections == nil {
		connections = []*Connection{}
	}

	now := time.Now()
	return &Roadmap{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		category:    category,
		difficulty:  difficulty,
		tags:        tags,
		nodes:       nodes,
		connections: connections,
		cfg:         cfg,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		events:      []events.DomainEvent{},
	}, nil
}

// ID returns the roadmap's unique identifier
func (r *Roadmap) ID() RoadmapID {
	return r.id
}

// OwnerID returns the author's ID
func (r *Roadmap) OwnerID() string {
	return r.ownerID
}

// Title returns the roadmap's title
func (r *Roadmap) Title() string {
	return r.title
}

// Description returns the roadmap's description
func (r *Roadmap) Description() string {
	return r.description
}

// Category returns the roadmap's category
func (r *Roadmap) Category() string {
	return r.category
}

// Difficulty returns the roadmap's difficulty label
func (r *Roadmap) Difficulty() string {
	return r.difficulty
}

// Tags returns the roadmap's tags
func (r *Roadmap) Tags() []string {
	tags := make([]string, len(r.tags))
	copy(tags, r.tags)
	return tags
}

// UpdatedAt returns when the roadmap was last updated
func (r *Roadmap) UpdatedAt() time.Time {
	return r.updatedAt
}

// Version returns the aggregate version for optimistic saves
func (r *Roadmap) Version() int {
	return r.version
}

// Nodes returns the complete node list in insertion order
func (r *Roadmap) Nodes() []*entities.Node {
	// Return a copy to maintain encapsulation
	nodes := make([]*entities.Node, len(r.nodes))
	copy(nodes, r.nodes)
	return nodes
}

// Connections returns the complete connection list in insertion order
func (r *Roadmap) Connections() []*Connection {
	connections := make([]*Connection, len(r.connections))
	copy(connections, r.connections)
	return connections
}

// GetNode retrieves a node by ID
func (r *Roadmap) GetNode(id valueobjects.NodeID) (*entities.Node, bool) {
	for _, node := range r.nodes {
		if node.ID().Equals(id) {
			return node, true
		}
	}
	return nil, false
}

// HasNode checks if a node exists in the roadmap
func (r *Roadmap) HasNode(id valueobjects.NodeID) bool {
	_, ok := r.GetNode(id)
	return ok
}

// AddNode creates a node of the given kind at the given canvas position
// and appends it to the graph. Returns nil when the node budget is full.
func (r *Roadmap) AddNode(kind entities.NodeKind, position valueobjects.Position) *entities.Node {
	if len(r.nodes) >= r.cfg.MaxNodesPerRoadmap {
		return nil
	}

	node := entities.NewNode(kind, position, r.cfg)
	r.nodes = append(r.nodes, node)
	r.bump()

	r.addEvent(events.NewNodeAdded(r.id.String(), node.ID(), string(node.Kind()), r.updatedAt))

	return node
}

// UpdateNode merges the non-nil fields of changes into the node.
// A missing id leaves the graph untouched.
func (r *Roadmap) UpdateNode(id valueobjects.NodeID, changes NodeChanges) bool {
	node, ok := r.GetNode(id)
	if !ok {
		return false
	}

	if changes.Title != nil {
		node.Rename(*changes.Title)
	}
	if changes.Description != nil {
		node.SetDescription(*changes.Description)
	}
	if changes.Kind != nil {
		node.SetKind(*changes.Kind)
	}
	if changes.Position != nil {
		node.MoveTo(*changes.Position)
	}
	if changes.EstimatedHours != nil {
		node.SetEstimatedHours(*changes.EstimatedHours)
	}
	if changes.IsOptional != nil {
		node.SetOptional(*changes.IsOptional)
	}

	r.bump()
	r.addEvent(events.NewNodeUpdated(r.id.String(), id, r.updatedAt))

	return true
}

// MoveNode is the hot-path variant of UpdateNode used while dragging
func (r *Roadmap) MoveNode(id valueobjects.NodeID, position valueobjects.Position) bool {
	node, ok := r.GetNode(id)
	if !ok {
		return false
	}
	node.MoveTo(position)
	r.bump()
	return true
}

// DeleteNode removes a node and every connection where it is source or
// target. A missing id is a no-op.
func (r *Roadmap) DeleteNode(id valueobjects.NodeID) bool {
	index := -1
	for i, node := range r.nodes {
		if node.ID().Equals(id) {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	kept := r.connections[:0]
	removed := 0
	for _, c := range r.connections {
		if c.SourceNodeID.Equals(id) || c.TargetNodeID.Equals(id) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.connections = kept

	r.nodes = append(r.nodes[:index], r.nodes[index+1:]...)
	r.bump()

	r.addEvent(events.NewNodeRemoved(r.id.String(), id, removed, r.updatedAt))

	return true
}

// DuplicateNode clones a node with fresh identifiers and an offset
// position. The clone's resources are independent of the original's.
func (r *Roadmap) DuplicateNode(id valueobjects.NodeID) (*entities.Node, bool) {
	node, ok := r.GetNode(id)
	if !ok {
		return nil, false
	}
	if len(r.nodes) >= r.cfg.MaxNodesPerRoadmap {
		return nil, false
	}

	clone := node.Duplicate(r.cfg)
	r.nodes = append(r.nodes, clone)
	r.bump()

	r.addEvent(events.NewNodeAdded(r.id.String(), clone.ID(), string(clone.Kind()), r.updatedAt))

	return clone, true
}

// TryAddConnection creates a directed connection from source to target.
// Self-loops and pairs already connected in either direction are
// silently dropped, as are references to missing nodes. New connections
// are required by default.
func (r *Roadmap) TryAddConnection(sourceID, targetID valueobjects.NodeID) (*Connection, bool) {
	if sourceID.Equals(targetID) {
		return nil, false
	}
	if !r.HasNode(sourceID) || !r.HasNode(targetID) {
		return nil, false
	}
	if r.connected(sourceID, targetID) {
		return nil, false
	}
	if len(r.connections) >= r.cfg.MaxConnectionsPerRoadmap {
		return nil, false
	}

	connection := &Connection{
		ID:           valueobjects.NewConnectionID(),
		SourceNodeID: sourceID,
		TargetNodeID: targetID,
		IsRequired:   true,
	}
	r.connections = append(r.connections, connection)
	r.bump()

	r.addEvent(events.NewNodesConnected(r.id.String(), connection.ID, sourceID, targetID, r.updatedAt))

	return connection, true
}

// DeleteConnection removes a connection by id; missing ids are a no-op
func (r *Roadmap) DeleteConnection(id valueobjects.ConnectionID) bool {
	for i, c := range r.connections {
		if c.ID.Equals(id) {
			r.connections = append(r.connections[:i], r.connections[i+1:]...)
			r.bump()
			r.addEvent(events.NewConnectionRemoved(r.id.String(), id, r.updatedAt))
			return true
		}
	}
	return false
}

// ToggleConnectionRequired flips the isRequired flag of a connection
func (r *Roadmap) ToggleConnectionRequired(id valueobjects.ConnectionID) bool {
	for _, c := range r.connections {
		if c.ID.Equals(id) {
			c.IsRequired = !c.IsRequired
			r.bump()
			return true
		}
	}
	return false
}

// GetConnection retrieves a connection by id
func (r *Roadmap) GetConnection(id valueobjects.ConnectionID) (*Connection, bool) {
	for _, c := range r.connections {
		if c.ID.Equals(id) {
			return c, true
		}
	}
	return nil, false
}

// AddResource creates a resource and attaches it to a node. The save is
// simply not performed when title or url is missing, or the node is gone.
func (r *Roadmap) AddResource(nodeID valueobjects.NodeID, title, url string, kind entities.ResourceKind, isPremium bool) (*entities.Resource, bool) {
	node, ok := r.GetNode(nodeID)
	if !ok {
		return nil, false
	}

	resource, ok := entities.NewResource(title, url, kind, isPremium)
	if !ok {
		return nil, false
	}

	node.AttachResource(resource)
	r.bump()

	r.addEvent(events.NewResourceAttached(r.id.String(), nodeID, resource.ID, r.updatedAt))

	return resource, true
}

// DeleteResource removes a resource from a node
func (r *Roadmap) DeleteResource(nodeID valueobjects.NodeID, resourceID valueobjects.ResourceID) bool {
	node, ok := r.GetNode(nodeID)
	if !ok {
		return false
	}
	if !node.RemoveResource(resourceID) {
		return false
	}
	r.bump()

	r.addEvent(events.NewResourceRemoved(r.id.String(), nodeID, resourceID, r.updatedAt))

	return true
}

// Validate ensures graph invariants hold
func (r *Roadmap) Validate() error {
	seen := make(map[string]bool, len(r.connections))
	for _, c := range r.connections {
		if !r.HasNode(c.SourceNodeID) {
			return errors.New("connection references non-existent source node")
		}
		if !r.HasNode(c.TargetNodeID) {
			return errors.New("connection references non-existent target node")
		}
		if c.SourceNodeID.Equals(c.TargetNodeID) {
			return errors.New("connection is a self-loop")
		}
		if seen[pairKey(c.SourceNodeID, c.TargetNodeID)] {
			return errors.New("duplicate connection between node pair")
		}
		seen[pairKey(c.SourceNodeID, c.TargetNodeID)] = true
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (r *Roadmap) GetUncommittedEvents() []events.DomainEvent {
	allEvents := make([]events.DomainEvent, len(r.events))
	copy(allEvents, r.events)
	return allEvents
}

// MarkEventsAsCommitted clears all uncommitted events
func (r *Roadmap) MarkEventsAsCommitted() {
	r.events = []events.DomainEvent{}
}

// Private helper methods

func (r *Roadmap) addEvent(event events.DomainEvent) {
	r.events = append(r.events, event)
}

func (r *Roadmap) bump() {
	r.updatedAt = time.Now()
	r.version++
}

// connected reports whether the unordered pair already has an edge
func (r *Roadmap) connected(a, b valueobjects.NodeID) bool {
	for _, c := range r.connections {
		if c.SourceNodeID.Equals(a) && c.TargetNodeID.Equals(b) {
			return true
		}
		if c.SourceNodeID.Equals(b) && c.TargetNodeID.Equals(a) {
			return true
		}
	}
	return false
}

// pairKey builds an order-independent key for a node pair
func pairKey(a, b valueobjects.NodeID) string {
	if a.String() < b.String() {
		return a.String() + "|" + b.String()
	}
	return b.String() + "|" + a.String()
}
