package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a 2D vector or point in client units. It shares its layout with
// cp.Vector so the arithmetic is chipmunk's.
type Vec2 cp.Vector

// V is a convenience constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromCP converts a chipmunk vector.
func FromCP(v cp.Vector) Vec2 { return Vec2(v) }

// CP returns v as a chipmunk vector.
func (v Vec2) CP() cp.Vector { return cp.Vector(v) }

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2(v.CP().Add(w.CP()))
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2(v.CP().Sub(w.CP()))
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2(v.CP().Mult(s))
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.CP().Dot(w.CP())
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return v.CP().Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	if v == (Vec2{}) {
		return Vec2{}
	}
	return Vec2(v.CP().Normalize())
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2(v.CP().Perp())
}

// RPerp returns v rotated by 90 degrees clockwise.
func (v Vec2) RPerp() Vec2 {
	return Vec2(v.CP().ReversePerp())
}

// XY narrows v for vertex and uniform data.
func (v Vec2) XY() (float32, float32) {
	return float32(v.X), float32(v.Y)
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
