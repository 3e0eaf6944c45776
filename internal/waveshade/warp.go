package waveshade

import "math"

// WarpPlane applies the time-coupled horizontal sine warp to a 2D sample
// coordinate: (sin(x) - t, y). As t grows the wave slides continuously.
func WarpPlane(c Vec2, t Real) Vec2 {
	return Vec2{math.Sin(c.X) - t, c.Y}
}

// WarpDirection applies the same sine warp to the X component of a 3D
// lookup direction, Y and Z pass through. Stateless: time enters only via
// the rotation applied before this call.
func WarpDirection(d Basis) Basis {
	return Basis{math.Sin(d.X), d.Y, d.Z}
}
