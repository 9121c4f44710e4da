package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutoria-backend/domain/core/valueobjects"
)

var testMetrics = LayoutMetrics{ToolbarHeight: 56, NodeWidth: 208, NodeHeight: 84}

func TestEdgePath_AnchorsAtNodeBoxEdges(t *testing.T) {
	source := valueobjects.MustPosition(0, 0)
	target := valueobjects.MustPosition(300, 400)

	path := EdgePath(source, target, testMetrics, 80)

	// bottom-center of the source box
	assert.Equal(t, 104.0, path.Start.X)
	assert.Equal(t, 84.0, path.Start.Y)
	// top-center of the target box
	assert.Equal(t, 404.0, path.End.X)
	assert.Equal(t, 400.0, path.End.Y)
}

func TestEdgePath_VerticalSCurve(t *testing.T) {
	source := valueobjects.MustPosition(0, 0)
	target := valueobjects.MustPosition(0, 300)

	path := EdgePath(source, target, testMetrics, 80)

	// |dy| = 300 - 84 = 216, so the offset saturates at the cap
	assert.Equal(t, path.Start.Y+80, path.C1.Y)
	assert.Equal(t, path.End.Y-80, path.C2.Y)
	// control points stay on the endpoint verticals
	assert.Equal(t, path.Start.X, path.C1.X)
	assert.Equal(t, path.End.X, path.C2.X)
}

func TestEdgePath_ShortSpanUsesHalfDelta(t *testing.T) {
	source := valueobjects.MustPosition(0, 0)
	target := valueobjects.MustPosition(200, 124)

	path := EdgePath(source, target, testMetrics, 80)

	// |dy| = 124 - 84 = 40, half of that is below the cap
	assert.Equal(t, path.Start.Y+20, path.C1.Y)
	assert.Equal(t, path.End.Y-20, path.C2.Y)
}

func TestEdgePath_OverlappingNodesDegradesGracefully(t *testing.T) {
	source := valueobjects.MustPosition(0, 0)
	target := valueobjects.MustPosition(0, 84)

	// start and end coincide vertically: offset is zero, curve collapses
	// to a straight segment without blowing up
	path := EdgePath(source, target, testMetrics, 80)
	assert.Equal(t, path.Start, path.C1)
	assert.Equal(t, path.End, path.C2)
}

func TestLivePath_EndsAtPointer(t *testing.T) {
	source := valueobjects.MustPosition(10, 10)
	pointer := valueobjects.MustPosition(480, 30)

	path := LivePath(source, pointer, testMetrics, 80)

	assert.Equal(t, Point{X: 480, Y: 30}, path.End)
	assert.Equal(t, Point{X: 114, Y: 94}, path.Start)
}

func TestPathSVG(t *testing.T) {
	path := Path{
		Start: Point{X: 1, Y: 2},
		C1:    Point{X: 1, Y: 10},
		C2:    Point{X: 20, Y: 22},
		End:   Point{X: 20, Y: 30},
	}
	assert.Equal(t, "M 1 2 C 1 10, 20 22, 20 30", path.SVG())
}

func TestPathSVG_EmptyPath(t *testing.T) {
	assert.True(t, Path{}.IsZero())
	assert.Equal(t, "", Path{}.SVG())
}

func TestLayoutMetricsOriginOffset(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: 56}, testMetrics.OriginOffset())
}
