package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/domain/core/entities"
	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
	"tutoria-backend/editor/interaction"
)

var _ interaction.Host = (*Editor)(nil)

var metrics = geometry.LayoutMetrics{ToolbarHeight: 56, NodeWidth: 208, NodeHeight: 84}

type listenerSpy struct {
	nodeEmits       int
	lastNodes       []*entities.Node
	connectionEmits int
	lastConnections []*aggregates.Connection
}

func newTestEditor(t *testing.T) (*Editor, *listenerSpy) {
	t.Helper()
	roadmap, err := aggregates.NewRoadmap("owner-1", "Frontend desde cero", nil)
	require.NoError(t, err)

	e := New(roadmap, nil)
	spy := &listenerSpy{}
	e.OnNodesChanged(func(nodes []*entities.Node) {
		spy.nodeEmits++
		spy.lastNodes = nodes
	})
	e.OnConnectionsChanged(func(connections []*aggregates.Connection) {
		spy.connectionEmits++
		spy.lastConnections = connections
	})
	return e, spy
}

func TestAddNodeAtCenter_PlacesInVisibleArea(t *testing.T) {
	e, spy := newTestEditor(t)

	node := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	require.NotNil(t, node)

	// screen center below the toolbar is (500, 428); identity transform
	// maps it to canvas (500, 372), plus at most the placement jitter
	assert.InDelta(t, 500, node.Position().X(), 20)
	assert.InDelta(t, 372, node.Position().Y(), 20)

	assert.Equal(t, 1, spy.nodeEmits)
	require.Len(t, spy.lastNodes, 1)
	assert.True(t, spy.lastNodes[0].ID().Equals(node.ID()))
}

func TestAddNodeAtCenter_AccountsForPanAndZoom(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Viewport().PanBy(-200, -100)
	e.Viewport().SetZoom(0.5)

	node := e.AddNodeAtCenter(entities.KindProject, 1000, 800, metrics)
	require.NotNil(t, node)

	// canvas center = ((500 + 200) / 0.5, (428 - 56 + 100) / 0.5)
	assert.InDelta(t, 1400, node.Position().X(), 40)
	assert.InDelta(t, 944, node.Position().Y(), 40)
}

func TestDeleteNode_EmitsConnectionsOnlyOnCascade(t *testing.T) {
	e, spy := newTestEditor(t)
	a := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	b := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	c := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	require.True(t, e.TryAddConnection(a.ID(), b.ID()))
	spy.connectionEmits = 0

	// c has no connections: deleting it must not emit the connection list
	require.True(t, e.DeleteNode(c.ID()))
	assert.Equal(t, 0, spy.connectionEmits)

	// b is connected: deleting it cascades and emits both lists
	require.True(t, e.DeleteNode(b.ID()))
	assert.Equal(t, 1, spy.connectionEmits)
	assert.Empty(t, spy.lastConnections)

	// deleting a missing node emits nothing
	emits := spy.nodeEmits
	assert.False(t, e.DeleteNode(b.ID()))
	assert.Equal(t, emits, spy.nodeEmits)
}

func TestTryAddConnection_NoEmitOnSilentReject(t *testing.T) {
	e, spy := newTestEditor(t)
	a := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	b := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)

	require.True(t, e.TryAddConnection(a.ID(), b.ID()))
	assert.Equal(t, 1, spy.connectionEmits)

	// duplicate and self-loop leave listeners quiet
	assert.False(t, e.TryAddConnection(b.ID(), a.ID()))
	assert.False(t, e.TryAddConnection(a.ID(), a.ID()))
	assert.Equal(t, 1, spy.connectionEmits)
}

func TestResourceDraftLifecycle(t *testing.T) {
	e, spy := newTestEditor(t)
	node := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	spy.nodeEmits = 0

	require.True(t, e.BeginResourceEdit(node.ID()))
	assert.True(t, e.ResourceEditActive())

	// missing url: the save is simply not performed, the form stays open
	e.SetResourceDraft("Curso de CSS", "", entities.ResourceCourse, false)
	assert.False(t, e.SaveResourceDraft())
	assert.True(t, e.ResourceEditActive())
	assert.Equal(t, 0, spy.nodeEmits)

	e.SetResourceDraft("Curso de CSS", "https://example.com/css", entities.ResourceCourse, true)
	require.True(t, e.SaveResourceDraft())
	assert.False(t, e.ResourceEditActive())
	assert.Equal(t, 1, spy.nodeEmits)

	resources := node.Resources()
	require.Len(t, resources, 1)
	assert.Equal(t, "Curso de CSS", resources[0].Title)
	assert.True(t, resources[0].IsPremium)
}

func TestResourceDraft_SingleAcrossGraph(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	b := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)

	require.True(t, e.BeginResourceEdit(a.ID()))
	e.SetResourceDraft("Borrador", "https://example.com", entities.ResourceArticle, false)

	// opening the form on another node replaces the draft
	require.True(t, e.BeginResourceEdit(b.ID()))
	draft, ok := e.ResourceDraftFor()
	require.True(t, ok)
	assert.True(t, draft.NodeID.Equals(b.ID()))
	assert.Empty(t, draft.Title)
}

func TestDeleteNode_DropsItsOpenDraft(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	b := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)

	require.True(t, e.BeginResourceEdit(a.ID()))
	require.True(t, e.DeleteNode(a.ID()))
	assert.False(t, e.ResourceEditActive())

	// a draft on a surviving node is kept
	require.True(t, e.BeginResourceEdit(b.ID()))
	ghost := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	require.True(t, e.DeleteNode(ghost.ID()))
	assert.True(t, e.ResourceEditActive())
}

func TestConnectionPath_EmptyOnMissingEndpoint(t *testing.T) {
	e, _ := newTestEditor(t)
	a := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	b := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	require.True(t, e.TryAddConnection(a.ID(), b.ID()))
	connection := e.Connections()[0]

	path := e.ConnectionPath(connection.ID, metrics)
	assert.False(t, path.IsZero())
	assert.NotEmpty(t, path.SVG())

	assert.True(t, e.ConnectionPath(valueobjects.NewConnectionID(), metrics).IsZero())
}

func TestLiveConnectionPath_TracksDraw(t *testing.T) {
	e, _ := newTestEditor(t)
	node := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)

	assert.True(t, e.LiveConnectionPath(metrics).IsZero(), "no draw active yet")

	e.Machine().StartConnection(node.ID(), geometry.Point{X: 500, Y: 400}, metrics)
	e.Machine().PointerMove(geometry.Point{X: 620, Y: 500}, metrics)

	path := e.LiveConnectionPath(metrics)
	require.False(t, path.IsZero())
	assert.Equal(t, geometry.Point{X: 620, Y: 444}, path.End)

	e.Machine().Cancel()
	assert.True(t, e.LiveConnectionPath(metrics).IsZero())
}

func TestKeyboardDrivenDuplicateAndDelete(t *testing.T) {
	e, spy := newTestEditor(t)
	node := e.AddNodeAtCenter(entities.KindMilestone, 1000, 800, metrics)
	e.Machine().Select(node.ID())
	spy.nodeEmits = 0

	e.Machine().KeyDown(interaction.KeyEvent{Key: "d", Modifier: true})
	require.Len(t, e.Nodes(), 2)
	assert.Equal(t, 1, spy.nodeEmits)

	clone := e.Nodes()[1]
	assert.True(t, e.Machine().Selected().Equals(clone.ID()), "selection moves to the copy")
	assert.Equal(t, node.Title()+" (copy)", clone.Title())

	e.Machine().KeyDown(interaction.KeyEvent{Key: interaction.KeyDelete})
	assert.Len(t, e.Nodes(), 1)
	assert.True(t, e.Machine().Selected().IsZero())
}

func TestCustomConfigFlowsThrough(t *testing.T) {
	cfg := config.DefaultEditorConfig()
	cfg.MaxNodesPerRoadmap = 1
	roadmap, err := aggregates.NewRoadmap("owner-1", "Mini", cfg)
	require.NoError(t, err)
	e := New(roadmap, cfg)

	first := e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics)
	require.NotNil(t, first)

	// budget exhausted: add returns nil and emits nothing further
	emits := 0
	e.OnNodesChanged(func([]*entities.Node) { emits++ })
	assert.Nil(t, e.AddNodeAtCenter(entities.KindTopic, 1000, 800, metrics))
	_, ok := e.DuplicateNode(first.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, emits)
}
