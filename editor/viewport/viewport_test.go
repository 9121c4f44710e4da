package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
)

func TestSetZoom_Clamps(t *testing.T) {
	v := New(nil)

	assert.Equal(t, 0.25, v.SetZoom(0.1))
	assert.Equal(t, 2.0, v.SetZoom(5))
	assert.Equal(t, 1.5, v.SetZoom(1.5))

	// clamping is idempotent
	assert.Equal(t, 2.0, v.SetZoom(2.0))
	assert.Equal(t, 2.0, v.SetZoom(v.Zoom()))
}

func TestZoomBy_Additive(t *testing.T) {
	v := New(nil)

	assert.Equal(t, 1.1, v.ZoomBy(0.1))
	assert.Equal(t, 0.25, v.ZoomBy(-10))
	assert.Equal(t, 2.0, v.ZoomBy(10))
}

func TestScreenToCanvas_RoundTrip(t *testing.T) {
	v := New(nil)
	v.PanBy(120, -40)
	v.SetZoom(1.5)
	origin := geometry.Point{X: 0, Y: 56}

	screen := geometry.Point{X: 640, Y: 400}
	canvas := v.ScreenToCanvas(screen, origin)
	back := v.CanvasToScreen(canvas, origin)

	assert.InDelta(t, screen.X, back.X, 1e-9)
	assert.InDelta(t, screen.Y, back.Y, 1e-9)
}

func TestScreenToCanvas_IdentityTransform(t *testing.T) {
	v := New(nil)
	origin := geometry.Point{X: 0, Y: 56}

	canvas := v.ScreenToCanvas(geometry.Point{X: 100, Y: 156}, origin)
	assert.True(t, canvas.Equals(valueobjects.MustPosition(100, 100)))
}

func TestCanvasPositionStableAcrossZoom(t *testing.T) {
	// a fixed canvas point maps to different screen points as zoom
	// changes, but converting back always recovers the same canvas point
	v := New(nil)
	origin := geometry.Point{}
	canvas := valueobjects.MustPosition(300, 200)

	for _, zoom := range []float64{0.25, 0.5, 1, 1.7, 2} {
		v.SetZoom(zoom)
		screen := v.CanvasToScreen(canvas, origin)
		recovered := v.ScreenToCanvas(screen, origin)
		assert.True(t, recovered.Equals(canvas), "zoom %v", zoom)
	}
}

func TestReset(t *testing.T) {
	v := New(nil)
	v.PanBy(50, 70)
	v.SetZoom(0.5)

	v.Reset()

	x, y := v.Pan()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, 1.0, v.Zoom())
}
