// Package viewport maps between screen pointer coordinates and canvas
// logical coordinates under the current pan offset and zoom factor.
// Keeping this separate from interaction state lets the geometry be
// tested with plain numeric fixtures, independent of pointer events.
package viewport

import (
	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/valueobjects"
	"tutoria-backend/editor/geometry"
)

// Viewport is the transient pan/zoom transform applied to the canvas.
// It is view state, never persisted with the roadmap.
type Viewport struct {
	panX float64
	panY float64
	zoom float64

	minZoom float64
	maxZoom float64
}

// New creates a viewport at the identity transform
func New(cfg *config.EditorConfig) *Viewport {
	if cfg == nil {
		cfg = config.DefaultEditorConfig()
	}
	return &Viewport{
		zoom:    cfg.DefaultZoom,
		minZoom: cfg.MinZoom,
		maxZoom: cfg.MaxZoom,
	}
}

// Pan returns the current pan offset in screen units
func (v *Viewport) Pan() (x, y float64) {
	return v.panX, v.panY
}

// Zoom returns the current zoom factor
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// ScreenToCanvas converts a screen point to canvas logical coordinates.
// The origin offset accounts for chrome (the toolbar) occupying part of
// the screen container; it is measured by the host at call time because
// its size depends on the active responsive breakpoint.
func (v *Viewport) ScreenToCanvas(screen geometry.Point, origin geometry.Point) valueobjects.Position {
	return valueobjects.MustPosition(
		(screen.X-origin.X-v.panX)/v.zoom,
		(screen.Y-origin.Y-v.panY)/v.zoom,
	)
}

// CanvasToScreen is the inverse of ScreenToCanvas
func (v *Viewport) CanvasToScreen(canvas valueobjects.Position, origin geometry.Point) geometry.Point {
	return geometry.Point{
		X: canvas.X()*v.zoom + v.panX + origin.X,
		Y: canvas.Y()*v.zoom + v.panY + origin.Y,
	}
}

// SetZoom sets the zoom factor, clamped to the configured bounds
func (v *Viewport) SetZoom(requested float64) float64 {
	v.zoom = clamp(requested, v.minZoom, v.maxZoom)
	return v.zoom
}

// ZoomBy adjusts the zoom factor additively, then clamps
func (v *Viewport) ZoomBy(delta float64) float64 {
	return v.SetZoom(v.zoom + delta)
}

// PanBy shifts the pan offset by a screen-space delta
func (v *Viewport) PanBy(dx, dy float64) {
	v.panX += dx
	v.panY += dy
}

// Reset restores the identity transform
func (v *Viewport) Reset() {
	v.panX = 0
	v.panY = 0
	v.zoom = 1
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
