// Package editor is the embeddable roadmap graph editor core. A host
// view seeds it once with a loaded roadmap, routes pointer and keyboard
// events into it, and receives the complete node and connection lists
// back after every mutation. The host owns save cadence; the core makes
// no assumption about when (or whether) emitted lists are persisted.
package editor

import (
	"math/rand"

	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/domain/core/entities"
	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
	"tutoria-backend/editor/interaction"
	"tutoria-backend/editor/viewport"
)

// ResourceDraft is the single resource-in-edit across the whole graph
type ResourceDraft struct {
	NodeID    valueobjects.NodeID
	Title     string
	URL       string
	Kind      entities.ResourceKind
	IsPremium bool
}

// Editor wires the graph model, viewport transform and interaction
// machine together behind the read/write contract of the hosting view.
//
// The roadmap passed to New is treated as the seed of internal mutable
// state; external changes to it after load are deliberately not
// observed, so in-progress edits are never clobbered.
type Editor struct {
	roadmap *aggregates.Roadmap
	view    *viewport.Viewport
	machine *interaction.Machine
	cfg     *config.EditorConfig

	draft *ResourceDraft

	onNodesChanged       func([]*entities.Node)
	onConnectionsChanged func([]*aggregates.Connection)
}

// New creates an editor over a loaded roadmap
func New(roadmap *aggregates.Roadmap, cfg *config.EditorConfig) *Editor {
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}
	e := &Editor{
		roadmap: roadmap,
		view:    viewport.New(cfg),
		cfg:     cfg,
	}
	e.machine = interaction.NewMachine(e, e.view)
	return e
}

// OnNodesChanged registers the listener receiving the complete node
// list after every node mutation
func (e *Editor) OnNodesChanged(fn func([]*entities.Node)) {
	e.onNodesChanged = fn
}

// OnConnectionsChanged registers the listener receiving the complete
// connection list after every connection mutation
func (e *Editor) OnConnectionsChanged(fn func([]*aggregates.Connection)) {
	e.onConnectionsChanged = fn
}

// OnSelectionChanged registers the selection side-channel listener so a
// host panel can show node details
func (e *Editor) OnSelectionChanged(fn func(valueobjects.NodeID)) {
	e.machine.OnSelectionChanged(fn)
}

// OnInteractionChanged registers a redraw trigger for mode transitions
// and live-edge movement
func (e *Editor) OnInteractionChanged(fn func()) {
	e.machine.OnInteractionChanged(fn)
}

// Machine exposes the interaction state machine the host routes events to
func (e *Editor) Machine() *interaction.Machine {
	return e.machine
}

// Viewport exposes the pan/zoom transform
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Nodes returns the current complete node list
func (e *Editor) Nodes() []*entities.Node {
	return e.roadmap.Nodes()
}

// Connections returns the current complete connection list
func (e *Editor) Connections() []*aggregates.Connection {
	return e.roadmap.Connections()
}

// AddNodeAtCenter creates a node of the given kind centered in the
// visible canvas area below the toolbar, with a small random jitter so
// repeated adds never stack exactly on top of each other.
func (e *Editor) AddNodeAtCenter(kind entities.NodeKind, containerWidth, containerHeight float64, metrics geometry.LayoutMetrics) *entities.Node {
	origin := metrics.OriginOffset()
	screenCenter := geometry.Point{
		X: containerWidth / 2,
		Y: metrics.ToolbarHeight + (containerHeight-metrics.ToolbarHeight)/2,
	}

	center := e.view.ScreenToCanvas(screenCenter, origin)
	jitter := e.cfg.PlacementJitter
	position := center.Translate(
		(rand.Float64()*2-1)*jitter,
		(rand.Float64()*2-1)*jitter,
	).ClampNonNegative()

	node := e.roadmap.AddNode(kind, position)
	if node == nil {
		return nil
	}
	e.emitNodes()
	return node
}

// UpdateNode merges partial field changes into a node by id
func (e *Editor) UpdateNode(id valueobjects.NodeID, changes aggregates.NodeChanges) bool {
	if !e.roadmap.UpdateNode(id, changes) {
		return false
	}
	e.emitNodes()
	return true
}

// DeleteNode removes a node, cascading its connections
func (e *Editor) DeleteNode(id valueobjects.NodeID) bool {
	before := len(e.roadmap.Connections())
	if !e.roadmap.DeleteNode(id) {
		return false
	}
	if e.draft != nil && e.draft.NodeID.Equals(id) {
		e.draft = nil
	}
	e.emitNodes()
	if len(e.roadmap.Connections()) != before {
		e.emitConnections()
	}
	return true
}

// DuplicateNode clones a node and returns the copy's id
func (e *Editor) DuplicateNode(id valueobjects.NodeID) (valueobjects.NodeID, bool) {
	clone, ok := e.roadmap.DuplicateNode(id)
	if !ok {
		return valueobjects.NodeID{}, false
	}
	e.emitNodes()
	return clone.ID(), true
}

// TryAddConnection connects two nodes, silently dropping self-loops and
// pairs already connected in either direction
func (e *Editor) TryAddConnection(sourceID, targetID valueobjects.NodeID) bool {
	if _, ok := e.roadmap.TryAddConnection(sourceID, targetID); !ok {
		return false
	}
	e.emitConnections()
	return true
}

// DeleteConnection removes a connection by id
func (e *Editor) DeleteConnection(id valueobjects.ConnectionID) bool {
	if !e.roadmap.DeleteConnection(id) {
		return false
	}
	e.emitConnections()
	return true
}

// ToggleConnectionRequired flips a connection's isRequired flag
func (e *Editor) ToggleConnectionRequired(id valueobjects.ConnectionID) bool {
	if !e.roadmap.ToggleConnectionRequired(id) {
		return false
	}
	e.emitConnections()
	return true
}

// DeleteResource removes a resource from a node
func (e *Editor) DeleteResource(nodeID valueobjects.NodeID, resourceID valueobjects.ResourceID) bool {
	if !e.roadmap.DeleteResource(nodeID, resourceID) {
		return false
	}
	e.emitNodes()
	return true
}

// BeginResourceEdit opens the resource form for one node, replacing any
// draft already open elsewhere in the graph
func (e *Editor) BeginResourceEdit(nodeID valueobjects.NodeID) bool {
	if !e.roadmap.HasNode(nodeID) {
		return false
	}
	e.draft = &ResourceDraft{NodeID: nodeID, Kind: entities.ResourceArticle}
	return true
}

// SetResourceDraft updates the fields of the open draft
func (e *Editor) SetResourceDraft(title, url string, kind entities.ResourceKind, isPremium bool) {
	if e.draft == nil {
		return
	}
	e.draft.Title = title
	e.draft.URL = url
	e.draft.Kind = kind
	e.draft.IsPremium = isPremium
}

// SaveResourceDraft appends the draft to its node's resource list. With
// title or url missing the save is simply not performed and the draft
// stays open.
func (e *Editor) SaveResourceDraft() bool {
	if e.draft == nil {
		return false
	}
	d := e.draft
	if _, ok := e.roadmap.AddResource(d.NodeID, d.Title, d.URL, d.Kind, d.IsPremium); !ok {
		return false
	}
	e.draft = nil
	e.emitNodes()
	return true
}

// ResourceDraftFor returns the open draft, if any
func (e *Editor) ResourceDraftFor() (*ResourceDraft, bool) {
	if e.draft == nil {
		return nil, false
	}
	return e.draft, true
}

// ConnectionPath computes the render geometry for a persisted
// connection. Either endpoint missing yields the empty path; that is a
// normal condition during deletion races, never an error.
func (e *Editor) ConnectionPath(id valueobjects.ConnectionID, metrics geometry.LayoutMetrics) geometry.Path {
	connection, ok := e.roadmap.GetConnection(id)
	if !ok {
		return geometry.Path{}
	}
	source, ok := e.roadmap.GetNode(connection.SourceNodeID)
	if !ok {
		return geometry.Path{}
	}
	target, ok := e.roadmap.GetNode(connection.TargetNodeID)
	if !ok {
		return geometry.Path{}
	}
	return geometry.EdgePath(source.Position(), target.Position(), metrics, e.cfg.ControlPointCap)
}

// LiveConnectionPath computes the temporary edge geometry for an
// in-progress connection draw
func (e *Editor) LiveConnectionPath(metrics geometry.LayoutMetrics) geometry.Path {
	sourceID, ok := e.machine.ConnectionSource()
	if !ok {
		return geometry.Path{}
	}
	pointer, ok := e.machine.LivePointer()
	if !ok {
		return geometry.Path{}
	}
	source, ok := e.roadmap.GetNode(sourceID)
	if !ok {
		return geometry.Path{}
	}
	return geometry.LivePath(source.Position(), pointer, metrics, e.cfg.ControlPointCap)
}

// interaction.Host implementation

// NodePosition looks up a node's canvas position for the machine
func (e *Editor) NodePosition(id valueobjects.NodeID) (valueobjects.Position, bool) {
	node, ok := e.roadmap.GetNode(id)
	if !ok {
		return valueobjects.Position{}, false
	}
	return node.Position(), true
}

// MoveNode repositions a node during a drag and emits the node list
func (e *Editor) MoveNode(id valueobjects.NodeID, position valueobjects.Position) bool {
	if !e.roadmap.MoveNode(id, position) {
		return false
	}
	e.emitNodes()
	return true
}

// Connect attempts a connection for a completed draw gesture
func (e *Editor) Connect(sourceID, targetID valueobjects.NodeID) bool {
	return e.TryAddConnection(sourceID, targetID)
}

// ResourceEditActive reports whether a resource form is open anywhere
func (e *Editor) ResourceEditActive() bool {
	return e.draft != nil
}

// CancelResourceEdit closes the open resource form, if any
func (e *Editor) CancelResourceEdit() bool {
	if e.draft == nil {
		return false
	}
	e.draft = nil
	return true
}

// emitNodes pushes the complete current node list to the host.
// No-op mutations never reach here, so emission is skipped for them.
func (e *Editor) emitNodes() {
	if e.onNodesChanged != nil {
		e.onNodesChanged(e.roadmap.Nodes())
	}
}

func (e *Editor) emitConnections() {
	if e.onConnectionsChanged != nil {
		e.onConnectionsChanged(e.roadmap.Connections())
	}
}
