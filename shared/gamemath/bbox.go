package gamemath

// Pos is a point in fractional tile units.
type Pos struct {
	X, Y float64
}

// BoundingBox is an axis-aligned rectangle with velocity, in fractional tile
// units. W and H must be positive. The integrator consumes a snapshot and
// returns a new one; it never mutates the caller's box in place.
type BoundingBox struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Right returns the x coordinate of the right edge.
func (b BoundingBox) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b BoundingBox) Bottom() float64 { return b.Y + b.H }

// Center returns the midpoint.
func (b BoundingBox) Center() Pos { return Pos{X: b.X + b.W/2, Y: b.Y + b.H/2} }

// Overlaps reports whether two boxes intersect.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}
