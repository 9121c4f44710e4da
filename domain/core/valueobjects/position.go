package valueobjects

import (
	"encoding/json"
	"math"
)

// Position is a value object representing node coordinates in canvas
// logical space. Canvas coordinates are independent of the current
// zoom, pan and screen size.
type Position struct {
	x float64
	y float64
}

// NewPosition creates a position, rejecting non-finite coordinates
func NewPosition(x, y float64) (Position, error) {
	if !isFinite(x) || !isFinite(y) {
		return Position{}, ErrInvalidCoordinates
	}
	return Position{x: x, y: y}, nil
}

// MustPosition creates a position from coordinates known to be finite
func MustPosition(x, y float64) Position {
	return Position{x: x, y: y}
}

// X returns the X coordinate
func (p Position) X() float64 {
	return p.x
}

// Y returns the Y coordinate
func (p Position) Y() float64 {
	return p.y
}

// Translate moves the position by the given offsets
func (p Position) Translate(dx, dy float64) Position {
	return Position{x: p.x + dx, y: p.y + dy}
}

// ClampNonNegative snaps negative coordinates to zero
func (p Position) ClampNonNegative() Position {
	return Position{x: math.Max(p.x, 0), y: math.Max(p.y, 0)}
}

// Equals checks if two positions are equal within floating-point tolerance
func (p Position) Equals(other Position) bool {
	const epsilon = 1e-9
	return math.Abs(p.x-other.x) < epsilon && math.Abs(p.y-other.y) < epsilon
}

// DistanceTo calculates the Euclidean distance to another position
func (p Position) DistanceTo(other Position) float64 {
	dx := p.x - other.x
	dy := p.y - other.y
	return math.Sqrt(dx*dx + dy*dy)
}

// MarshalJSON implements json.Marshaler using the {x, y} wire shape
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !isFinite(raw.X) || !isFinite(raw.Y) {
		return ErrInvalidCoordinates
	}
	p.x = raw.X
	p.y = raw.Y
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
