package waveshade

import "math"

// Point is a location in scene space, homogeneous with W=1.
// Translations move it.
type Point struct {
	X, Y, Z, W Real
}

// Vector is a displacement/direction, homogeneous with W=0.
// Translations must not move it.
type Vector struct {
	X, Y, Z, W Real
}

// PointOf promotes a spatial tuple to an affine point (W=1).
func PointOf(b Basis) Point { return Point{b.X, b.Y, b.Z, 1} }

// VectorOf promotes a spatial tuple to a linear vector (W=0).
func VectorOf(b Basis) Vector { return Vector{b.X, b.Y, b.Z, 0} }

// Basis drops the homogeneous coordinate.
func (p Point) Basis() Basis  { return Basis{p.X, p.Y, p.Z} }
func (v Vector) Basis() Basis { return Basis{v.X, v.Y, v.Z} }

// Add lets you translate a Point by a Vector. The result stays affine
// because the vector carries W=0.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z, p.W + v.W}
}

// Sub between two points yields the displacement from q to p (W=0 for
// well-formed inputs).
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W}
}

// Vector functions
func (a Vector) Add(b Vector) Vector { return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vector) Sub(b Vector) Vector { return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (v Vector) Mul(s Real) Vector   { return Vector{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot is spatial-only; the homogeneous coordinate never participates.
func (a Vector) Dot(b Vector) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// LenSq returns the squared spatial length (no sqrt).
func (v Vector) LenSq() Real { return v.Dot(v) }

// Len returns the spatial Euclidean length.
func (v Vector) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// If the vector is (near) zero, it returns the input unchanged.
func (v Vector) Norm() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l, v.Z / l, v.W}
}
