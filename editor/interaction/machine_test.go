package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
	"tutoria-backend/editor/viewport"
)

var metrics = geometry.LayoutMetrics{ToolbarHeight: 56, NodeWidth: 208, NodeHeight: 84}

// fakeHost records mutations so gesture outcomes can be asserted
type fakeHost struct {
	positions map[string]valueobjects.Position

	moved          []valueobjects.Position
	connects       [][2]valueobjects.NodeID
	deleted        []valueobjects.NodeID
	duplicated     []valueobjects.NodeID
	cloneID        valueobjects.NodeID
	resourceEdit   bool
	resourceCancel int
}

func newFakeHost(ids ...valueobjects.NodeID) *fakeHost {
	h := &fakeHost{positions: make(map[string]valueobjects.Position)}
	for i, id := range ids {
		h.positions[id.String()] = valueobjects.MustPosition(float64(i*100), float64(i*100))
	}
	return h
}

func (h *fakeHost) NodePosition(id valueobjects.NodeID) (valueobjects.Position, bool) {
	position, ok := h.positions[id.String()]
	return position, ok
}

func (h *fakeHost) MoveNode(id valueobjects.NodeID, position valueobjects.Position) bool {
	if _, ok := h.positions[id.String()]; !ok {
		return false
	}
	h.positions[id.String()] = position
	h.moved = append(h.moved, position)
	return true
}

func (h *fakeHost) Connect(sourceID, targetID valueobjects.NodeID) bool {
	h.connects = append(h.connects, [2]valueobjects.NodeID{sourceID, targetID})
	return true
}

func (h *fakeHost) DeleteNode(id valueobjects.NodeID) bool {
	if _, ok := h.positions[id.String()]; !ok {
		return false
	}
	delete(h.positions, id.String())
	h.deleted = append(h.deleted, id)
	return true
}

func (h *fakeHost) DuplicateNode(id valueobjects.NodeID) (valueobjects.NodeID, bool) {
	if _, ok := h.positions[id.String()]; !ok {
		return valueobjects.NodeID{}, false
	}
	h.duplicated = append(h.duplicated, id)
	h.cloneID = valueobjects.NewNodeID()
	h.positions[h.cloneID.String()] = valueobjects.MustPosition(1, 1)
	return h.cloneID, true
}

func (h *fakeHost) ResourceEditActive() bool { return h.resourceEdit }

func (h *fakeHost) CancelResourceEdit() bool {
	if !h.resourceEdit {
		return false
	}
	h.resourceEdit = false
	h.resourceCancel++
	return true
}

func newTestMachine(host *fakeHost) *Machine {
	return NewMachine(host, viewport.New(nil))
}

func TestPointerDown_NodeStartsDragAndSelects(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)

	m.PointerDown(Hit{Kind: HitNode, NodeID: nodeID}, geometry.Point{X: 10, Y: 66}, true, metrics)

	assert.Equal(t, ModeDraggingNode, m.Mode())
	assert.True(t, m.Selected().Equals(nodeID))
}

func TestPointerDown_CanvasStartsPanAndClearsSelection(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)
	m.Select(nodeID)

	m.PointerDown(Hit{Kind: HitCanvas}, geometry.Point{X: 400, Y: 300}, true, metrics)

	assert.Equal(t, ModePanningCanvas, m.Mode())
	assert.True(t, m.Selected().IsZero())
}

func TestPointerDown_SecondaryButtonIgnored(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	m := newTestMachine(newFakeHost(nodeID))

	m.PointerDown(Hit{Kind: HitNode, NodeID: nodeID}, geometry.Point{}, false, metrics)
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestGesturesAreMutuallyExclusive(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)

	m.PointerDown(Hit{Kind: HitNode, NodeID: nodeID}, geometry.Point{X: 10, Y: 66}, true, metrics)
	require.Equal(t, ModeDraggingNode, m.Mode())

	// a second pointer-down mid-drag changes nothing
	m.PointerDown(Hit{Kind: HitCanvas}, geometry.Point{X: 500, Y: 500}, true, metrics)
	assert.Equal(t, ModeDraggingNode, m.Mode())

	// starting a connection mid-drag is also not a defined input
	m.StartConnection(nodeID, geometry.Point{X: 10, Y: 66}, metrics)
	assert.Equal(t, ModeDraggingNode, m.Mode())
}

func TestDrag_KeepsGrabOffsetAndClampsAtOrigin(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID) // node at (0, 0)
	m := newTestMachine(host)

	// grab the node 15,10 inside its box (screen origin offset is 0,56)
	m.PointerDown(Hit{Kind: HitNode, NodeID: nodeID}, geometry.Point{X: 15, Y: 66}, true, metrics)
	m.PointerMove(geometry.Point{X: 115, Y: 166}, metrics)

	require.Len(t, host.moved, 1)
	assert.True(t, host.moved[0].Equals(valueobjects.MustPosition(100, 100)))

	// dragging past the top-left corner clamps to zero
	m.PointerMove(geometry.Point{X: 0, Y: 0}, metrics)
	require.Len(t, host.moved, 2)
	assert.True(t, host.moved[1].Equals(valueobjects.MustPosition(0, 0)))

	m.PointerUp(Hit{Kind: HitCanvas}, geometry.Point{})
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestPan_AccumulatesDeltas(t *testing.T) {
	m := newTestMachine(newFakeHost())

	m.PointerDown(Hit{Kind: HitCanvas}, geometry.Point{X: 100, Y: 100}, true, metrics)
	m.PointerMove(geometry.Point{X: 130, Y: 90}, metrics)
	m.PointerMove(geometry.Point{X: 150, Y: 95}, metrics)
	m.PointerUp(Hit{Kind: HitCanvas}, geometry.Point{X: 150, Y: 95})

	// total delta is end minus start, applied incrementally
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestConnectionDraw_ReleaseOnInputHandleConnects(t *testing.T) {
	source := valueobjects.NewNodeID()
	target := valueobjects.NewNodeID()
	host := newFakeHost(source, target)
	m := newTestMachine(host)

	m.StartConnection(source, geometry.Point{X: 104, Y: 140}, metrics)
	require.Equal(t, ModeDrawingConnection, m.Mode())

	m.PointerMove(geometry.Point{X: 200, Y: 220}, metrics)
	pointer, ok := m.LivePointer()
	require.True(t, ok)
	assert.True(t, pointer.Equals(valueobjects.MustPosition(200, 164)))

	m.PointerUp(Hit{Kind: HitInputHandle, NodeID: target}, geometry.Point{X: 200, Y: 220})

	require.Len(t, host.connects, 1)
	assert.True(t, host.connects[0][0].Equals(source))
	assert.True(t, host.connects[0][1].Equals(target))
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestConnectionDraw_ReleaseElsewhereCancels(t *testing.T) {
	source := valueobjects.NewNodeID()
	host := newFakeHost(source)
	m := newTestMachine(host)

	m.StartConnection(source, geometry.Point{}, metrics)
	m.PointerUp(Hit{Kind: HitCanvas}, geometry.Point{X: 400, Y: 400})

	assert.Empty(t, host.connects)
	assert.Equal(t, ModeIdle, m.Mode())
	_, ok := m.ConnectionSource()
	assert.False(t, ok)
}

func TestStartConnection_MissingSourceIgnored(t *testing.T) {
	m := newTestMachine(newFakeHost())
	m.StartConnection(valueobjects.NewNodeID(), geometry.Point{}, metrics)
	assert.Equal(t, ModeIdle, m.Mode())
}

func TestEscape_PriorityOrder(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)

	// 1. an active connection draw is cancelled first
	host.resourceEdit = true
	m.Select(nodeID)
	m.StartConnection(nodeID, geometry.Point{}, metrics)
	m.KeyDown(KeyEvent{Key: KeyEscape})
	assert.Equal(t, ModeIdle, m.Mode())
	assert.True(t, host.resourceEdit, "resource edit untouched while a draw was active")
	assert.True(t, m.Selected().Equals(nodeID))

	// 2. with no draw active, the open resource edit closes next
	m.KeyDown(KeyEvent{Key: KeyEscape})
	assert.False(t, host.resourceEdit)
	assert.True(t, m.Selected().Equals(nodeID), "selection survives the resource-edit escape")

	// 3. finally the selection clears
	m.KeyDown(KeyEvent{Key: KeyEscape})
	assert.True(t, m.Selected().IsZero())
}

func TestDelete_RemovesSelectedNode(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)
	m.Select(nodeID)

	m.KeyDown(KeyEvent{Key: KeyDelete})

	require.Len(t, host.deleted, 1)
	assert.True(t, host.deleted[0].Equals(nodeID))
	assert.True(t, m.Selected().IsZero())
}

func TestDelete_NoOpCases(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)

	// nothing selected
	m.KeyDown(KeyEvent{Key: KeyBackspace})
	assert.Empty(t, host.deleted)

	// resource edit open
	m.Select(nodeID)
	host.resourceEdit = true
	m.KeyDown(KeyEvent{Key: KeyDelete})
	assert.Empty(t, host.deleted)

	// focus inside an editable text control
	host.resourceEdit = false
	m.KeyDown(KeyEvent{Key: KeyDelete, EditableFocus: true})
	assert.Empty(t, host.deleted)
}

func TestDuplicate_SelectsClone(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)
	m.Select(nodeID)

	m.KeyDown(KeyEvent{Key: "D", Modifier: true})

	require.Len(t, host.duplicated, 1)
	assert.True(t, m.Selected().Equals(host.cloneID))
}

func TestDuplicate_RequiresModifier(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)
	m.Select(nodeID)

	m.KeyDown(KeyEvent{Key: "d"})
	assert.Empty(t, host.duplicated)
}

func TestSelectionListener(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	m := newTestMachine(newFakeHost(nodeID))

	var fired []valueobjects.NodeID
	m.OnSelectionChanged(func(id valueobjects.NodeID) { fired = append(fired, id) })

	m.Select(nodeID)
	m.Select(nodeID) // same id, no second event
	m.ClearSelection()
	m.ClearSelection() // already clear, no second event

	require.Len(t, fired, 2)
	assert.True(t, fired[0].Equals(nodeID))
	assert.True(t, fired[1].IsZero())
}

func TestDragEventAfterNodeDeleted(t *testing.T) {
	nodeID := valueobjects.NewNodeID()
	host := newFakeHost(nodeID)
	m := newTestMachine(host)

	m.PointerDown(Hit{Kind: HitNode, NodeID: nodeID}, geometry.Point{X: 10, Y: 66}, true, metrics)
	require.Equal(t, ModeDraggingNode, m.Mode())

	// node removed out from under the drag: move becomes a silent no-op
	delete(host.positions, nodeID.String())
	m.PointerMove(geometry.Point{X: 500, Y: 500}, metrics)
	assert.Empty(t, host.moved)

	m.PointerUp(Hit{Kind: HitCanvas}, geometry.Point{})
	assert.Equal(t, ModeIdle, m.Mode())
}
