package waveshade

import "math"

// Vec2 is a 2D coordinate: pixel positions, resolutions, UVs.
type Vec2 struct {
	X, Y Real
}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) MulVec(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}
func (v Vec2) Mul(s Real) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Basis is a bare 3-component spatial tuple, carrying no point/vector tag.
// Promote it with PointOf or VectorOf before mixing it into affine math.
type Basis struct {
	X, Y, Z Real
}

func (a Basis) Add(b Basis) Basis { return Basis{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Basis) Sub(b Basis) Basis { return Basis{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Basis) Mul(s Real) Basis  { return Basis{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two spatial tuples.
func (a Basis) Dot(b Basis) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// LenSq returns the squared Euclidean length (no sqrt).
func (v Basis) LenSq() Real { return v.Dot(v) }

// Len returns the Euclidean length of the tuple.
func (v Basis) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the tuple.
// If the tuple is (near) zero, it returns the input unchanged.
func (v Basis) Norm() Basis {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Basis{v.X / l, v.Y / l, v.Z / l}
}
