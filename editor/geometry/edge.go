// Package geometry computes the curve geometry for persisted and
// in-progress connections. It is pure math: no lookups, no side effects.
package geometry

import (
	"fmt"
	"math"

	"tutoria-backend/domain/core/valueobjects"
)

// Point is a 2D point. Depending on context it holds screen pixels or
// canvas logical coordinates; the conversion lives in the viewport.
type Point struct {
	X float64
	Y float64
}

// Sub returns the component-wise difference p - other
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns the component-wise sum p + other
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// LayoutMetrics carries the breakpoint-dependent dimensions the host
// measures once per interaction frame: the chrome above the canvas and
// the rendered node box size. Core math never queries the environment.
type LayoutMetrics struct {
	ToolbarHeight float64
	NodeWidth     float64
	NodeHeight    float64
}

// OriginOffset returns the screen offset of the canvas origin inside
// the host container
func (m LayoutMetrics) OriginOffset() Point {
	return Point{X: 0, Y: m.ToolbarHeight}
}

// Path is a cubic bezier curve in canvas logical coordinates
type Path struct {
	Start Point
	C1    Point
	C2    Point
	End   Point
}

// IsZero reports whether the path is the empty path
func (p Path) IsZero() bool {
	return p == Path{}
}

// SVG renders the path as an SVG path datum, or "" for the empty path
func (p Path) SVG() string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf("M %g %g C %g %g, %g %g, %g %g",
		p.Start.X, p.Start.Y, p.C1.X, p.C1.Y, p.C2.X, p.C2.Y, p.End.X, p.End.Y)
}

// EdgePath builds the curve for a persisted connection: from the
// bottom-center of the source node box to the top-center of the target
// node box, as a vertical S-curve that degrades gracefully for
// near-horizontal or overlapping nodes.
func EdgePath(source, target valueobjects.Position, m LayoutMetrics, controlCap float64) Path {
	start := Point{X: source.X() + m.NodeWidth/2, Y: source.Y() + m.NodeHeight}
	end := Point{X: target.X() + m.NodeWidth/2, Y: target.Y()}
	return curveBetween(start, end, controlCap)
}

// LivePath builds the curve for an in-progress connection, ending at
// the live pointer position instead of a target box.
func LivePath(source valueobjects.Position, pointer valueobjects.Position, m LayoutMetrics, controlCap float64) Path {
	start := Point{X: source.X() + m.NodeWidth/2, Y: source.Y() + m.NodeHeight}
	end := Point{X: pointer.X(), Y: pointer.Y()}
	return curveBetween(start, end, controlCap)
}

func curveBetween(start, end Point, controlCap float64) Path {
	offset := math.Min(math.Abs(end.Y-start.Y)*0.5, controlCap)
	return Path{
		Start: start,
		C1:    Point{X: start.X, Y: start.Y + offset},
		C2:    Point{X: end.X, Y: end.Y - offset},
		End:   end,
	}
}
