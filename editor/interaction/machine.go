// Package interaction implements the pointer and keyboard gesture state
// machine of the roadmap editor: node dragging, canvas panning and
// connection drawing. The modes are mutually exclusive by construction,
// a single tagged state instead of independent boolean flags.
//
// The machine owns no DOM or event bus; the host routes its own pointer
// and key events into the exported handlers and supplies hit-test
// results, so any rendering layer can drive it.
package interaction

import (
	"strings"

	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
	"tutoria-backend/editor/viewport"
)

// Mode identifies the active interaction state
type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingNode
	ModePanningCanvas
	ModeDrawingConnection
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeDraggingNode:
		return "dragging-node"
	case ModePanningCanvas:
		return "panning-canvas"
	case ModeDrawingConnection:
		return "drawing-connection"
	default:
		return "idle"
	}
}

// HitKind classifies what sits under the pointer, as reported by the
// host's hit test
type HitKind int

const (
	// HitCanvas is empty canvas area
	HitCanvas HitKind = iota
	// HitNode is a node body
	HitNode
	// HitInputHandle is the connection target handle on a node
	HitInputHandle
	// HitControl is chrome (toolbar, panels) that never starts a gesture
	HitControl
)

// Hit is one hit-test result
type Hit struct {
	Kind   HitKind
	NodeID valueobjects.NodeID
}

// KeyEvent is a keyboard event routed in by the host. EditableFocus is
// true while focus sits inside an editable text control; shortcuts are
// inactive then.
type KeyEvent struct {
	Key           string
	Modifier      bool
	EditableFocus bool
}

// Key names matching the host event source
const (
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
	KeyEscape    = "Escape"
	KeyDuplicate = "d"
)

// Host is the mutation port the machine drives. Every method follows
// the graph's silent no-op semantics for stale identifiers.
type Host interface {
	NodePosition(id valueobjects.NodeID) (valueobjects.Position, bool)
	MoveNode(id valueobjects.NodeID, position valueobjects.Position) bool
	Connect(sourceID, targetID valueobjects.NodeID) bool
	DeleteNode(id valueobjects.NodeID) bool
	DuplicateNode(id valueobjects.NodeID) (valueobjects.NodeID, bool)
	ResourceEditActive() bool
	CancelResourceEdit() bool
}

// Machine is the interaction state machine. All handlers run
// synchronously on the host's UI event goroutine; events are applied in
// delivery order with no coalescing.
type Machine struct {
	host Host
	view *viewport.Viewport

	mode Mode

	// dragging-node payload
	dragNodeID valueobjects.NodeID
	grabDX     float64
	grabDY     float64

	// panning-canvas payload
	panAnchor geometry.Point

	// drawing-connection payload
	connSourceID valueobjects.NodeID
	connPointer  valueobjects.Position

	// selection side channel
	selected valueobjects.NodeID

	onSelectionChanged   func(valueobjects.NodeID)
	onInteractionChanged func()
}

// NewMachine creates an idle machine bound to a host and viewport
func NewMachine(host Host, view *viewport.Viewport) *Machine {
	return &Machine{
		host: host,
		view: view,
	}
}

// OnSelectionChanged registers the selection side-channel listener.
// The zero NodeID means the selection was cleared.
func (m *Machine) OnSelectionChanged(fn func(valueobjects.NodeID)) {
	m.onSelectionChanged = fn
}

// OnInteractionChanged registers a listener fired whenever the visual
// interaction state changes (mode transitions, live edge movement)
func (m *Machine) OnInteractionChanged(fn func()) {
	m.onInteractionChanged = fn
}

// Mode returns the active interaction mode
func (m *Machine) Mode() Mode {
	return m.mode
}

// Selected returns the selected node id, zero when nothing is selected
func (m *Machine) Selected() valueobjects.NodeID {
	return m.selected
}

// ConnectionSource returns the source node of an in-progress connection
// draw, if one is active
func (m *Machine) ConnectionSource() (valueobjects.NodeID, bool) {
	if m.mode != ModeDrawingConnection {
		return valueobjects.NodeID{}, false
	}
	return m.connSourceID, true
}

// LivePointer returns the tracked pointer position, in canvas
// coordinates, of an in-progress connection draw
func (m *Machine) LivePointer() (valueobjects.Position, bool) {
	if m.mode != ModeDrawingConnection {
		return valueobjects.Position{}, false
	}
	return m.connPointer, true
}

// PointerDown begins a gesture. Node drag is checked before canvas pan,
// so pressing on a node body never starts a pan. Pointer-down while a
// gesture is already active is not a defined input and is ignored.
func (m *Machine) PointerDown(hit Hit, screen geometry.Point, primary bool, metrics geometry.LayoutMetrics) {
	if m.mode != ModeIdle || !primary {
		return
	}

	switch hit.Kind {
	case HitNode:
		position, ok := m.host.NodePosition(hit.NodeID)
		if !ok {
			return
		}
		pointer := m.view.ScreenToCanvas(screen, metrics.OriginOffset())
		m.mode = ModeDraggingNode
		m.dragNodeID = hit.NodeID
		m.grabDX = pointer.X() - position.X()
		m.grabDY = pointer.Y() - position.Y()
		m.Select(hit.NodeID)
		m.notifyInteraction()

	case HitCanvas:
		m.mode = ModePanningCanvas
		m.panAnchor = screen
		m.ClearSelection()
		m.notifyInteraction()
	}
}

// StartConnection enters connection drawing from a node's output
// handle. Starting is only defined from idle.
func (m *Machine) StartConnection(sourceID valueobjects.NodeID, screen geometry.Point, metrics geometry.LayoutMetrics) {
	if m.mode != ModeIdle {
		return
	}
	if _, ok := m.host.NodePosition(sourceID); !ok {
		return
	}
	m.mode = ModeDrawingConnection
	m.connSourceID = sourceID
	m.connPointer = m.view.ScreenToCanvas(screen, metrics.OriginOffset())
	m.notifyInteraction()
}

// PointerMove advances the active gesture
func (m *Machine) PointerMove(screen geometry.Point, metrics geometry.LayoutMetrics) {
	switch m.mode {
	case ModeDraggingNode:
		pointer := m.view.ScreenToCanvas(screen, metrics.OriginOffset())
		position := valueobjects.MustPosition(pointer.X()-m.grabDX, pointer.Y()-m.grabDY).ClampNonNegative()
		m.host.MoveNode(m.dragNodeID, position)

	case ModePanningCanvas:
		delta := screen.Sub(m.panAnchor)
		m.view.PanBy(delta.X, delta.Y)
		m.panAnchor = screen
		m.notifyInteraction()

	case ModeDrawingConnection:
		m.connPointer = m.view.ScreenToCanvas(screen, metrics.OriginOffset())
		m.notifyInteraction()
	}
}

// PointerUp ends the active gesture. Releasing a connection draw over a
// node's input handle attempts the connection; anywhere else cancels.
// Any button ends a drag.
func (m *Machine) PointerUp(hit Hit, screen geometry.Point) {
	switch m.mode {
	case ModeDraggingNode, ModePanningCanvas:
		m.toIdle()

	case ModeDrawingConnection:
		if hit.Kind == HitInputHandle && !hit.NodeID.IsZero() {
			m.host.Connect(m.connSourceID, hit.NodeID)
		}
		m.toIdle()
	}
}

// Cancel aborts whatever gesture is active and returns to idle
func (m *Machine) Cancel() {
	if m.mode == ModeIdle {
		return
	}
	m.toIdle()
}

// KeyDown handles the editor shortcuts. Shortcuts are inactive while an
// editable text control has focus.
func (m *Machine) KeyDown(ev KeyEvent) {
	if ev.EditableFocus {
		return
	}

	switch {
	case ev.Key == KeyEscape:
		m.handleEscape()

	case ev.Key == KeyDelete || ev.Key == KeyBackspace:
		m.handleDelete()

	case strings.EqualFold(ev.Key, KeyDuplicate) && ev.Modifier:
		m.handleDuplicate()
	}
}

// Select marks a node as selected and emits the side-channel event
func (m *Machine) Select(id valueobjects.NodeID) {
	if m.selected.Equals(id) {
		return
	}
	m.selected = id
	m.notifySelection()
}

// ClearSelection drops the selection and emits the side-channel event
func (m *Machine) ClearSelection() {
	if m.selected.IsZero() {
		return
	}
	m.selected = valueobjects.NodeID{}
	m.notifySelection()
}

// handleEscape cancels in priority order: connection draw, then
// resource edit, then selection
func (m *Machine) handleEscape() {
	if m.mode == ModeDrawingConnection {
		m.toIdle()
		return
	}
	if m.host.CancelResourceEdit() {
		return
	}
	m.ClearSelection()
}

// handleDelete deletes the selected node. No-op while a resource edit
// is open, or with nothing selected.
func (m *Machine) handleDelete() {
	if m.selected.IsZero() || m.host.ResourceEditActive() {
		return
	}
	deleted := m.selected
	if m.host.DeleteNode(deleted) {
		m.ClearSelection()
	}
}

// handleDuplicate duplicates the selected node and moves the selection
// to the copy
func (m *Machine) handleDuplicate() {
	if m.selected.IsZero() {
		return
	}
	if cloneID, ok := m.host.DuplicateNode(m.selected); ok {
		m.Select(cloneID)
	}
}

func (m *Machine) toIdle() {
	m.mode = ModeIdle
	m.dragNodeID = valueobjects.NodeID{}
	m.grabDX = 0
	m.grabDY = 0
	m.panAnchor = geometry.Point{}
	m.connSourceID = valueobjects.NodeID{}
	m.connPointer = valueobjects.Position{}
	m.notifyInteraction()
}

func (m *Machine) notifySelection() {
	if m.onSelectionChanged != nil {
		m.onSelectionChanged(m.selected)
	}
}

func (m *Machine) notifyInteraction() {
	if m.onInteractionChanged != nil {
		m.onInteractionChanged()
	}
}
