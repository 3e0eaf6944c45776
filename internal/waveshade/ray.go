package waveshade

// Ray is a camera ray: affine origin plus linear direction. Built fresh per
// pixel, never mutated afterwards.
type Ray struct {
	Origin Point
	Dir    Vector
}

// PerspectiveRay shoots from the eye through the viewing-plane point, so
// rays radiate from a single origin.
func PerspectiveRay(eye, plane Basis) Ray {
	return Ray{
		Origin: PointOf(eye),
		Dir:    VectorOf(plane.Sub(eye)),
	}
}

// OrthographicRay first slides the eye to share the plane point's X,Y and
// then delegates, which makes all rays parallel to the view axis.
func OrthographicRay(eye, plane Basis) Ray {
	shifted := Basis{plane.X, plane.Y, eye.Z}
	return PerspectiveRay(shifted, plane)
}
