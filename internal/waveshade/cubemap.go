package waveshade

import "math"

// Cube face indices, major-axis order.
const (
	CubeFacePosX = 0
	CubeFaceNegX = 1
	CubeFacePosY = 2
	CubeFaceNegY = 3
	CubeFacePosZ = 4
	CubeFaceNegZ = 5
)

// DirectionTexture turns a plain 2D texture into a direction-indexed
// lookup: the direction picks a cube face by its dominant axis and the two
// remaining components become the face UV. All six faces read the same
// underlying texture, which is what a single-image environment gives you.
type DirectionTexture struct {
	Tex Texture
}

// FaceOf returns the cube face a direction points at together with the
// face-local coordinates in [0,1]. A zero direction falls back to the +Z
// face center instead of producing NaN.
func FaceOf(d Basis) (face int, u, v Real) {
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	if ax == 0 && ay == 0 && az == 0 {
		return CubeFacePosZ, 0.5, 0.5
	}

	var sc, tc, ma Real
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if d.X >= 0 {
			face, sc, tc = CubeFacePosX, -d.Z, d.Y
		} else {
			face, sc, tc = CubeFaceNegX, d.Z, d.Y
		}
	case ay >= az:
		ma = ay
		if d.Y >= 0 {
			face, sc, tc = CubeFacePosY, d.X, -d.Z
		} else {
			face, sc, tc = CubeFaceNegY, d.X, d.Z
		}
	default:
		ma = az
		if d.Z >= 0 {
			face, sc, tc = CubeFacePosZ, d.X, d.Y
		} else {
			face, sc, tc = CubeFaceNegZ, -d.X, d.Y
		}
	}
	u = (sc/ma + 1) * 0.5
	v = (tc/ma + 1) * 0.5
	return face, u, v
}

// SampleDir resolves the direction to face UVs and samples the wrapped
// texture there.
func (t DirectionTexture) SampleDir(d Basis) Color {
	_, u, v := FaceOf(d)
	return t.Tex.Sample(Vec2{u, v})
}
