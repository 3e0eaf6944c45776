package waveshade

// Viewport holds everything derived from one pixel coordinate: normalized
// device coordinate, UV, aspect ratio and the 3D point on the viewing plane
// at -Focal along the view axis.
//
// Invariants: NDC = UV*2 - 1, Aspect = width/height, Plane.Z = -Focal.
type Viewport struct {
	Pixel  Vec2
	Res    Vec2
	ResInv Vec2
	Aspect Real
	Focal  Real
	UV     Vec2 // [0,1)
	NDC    Vec2 // [-1,+1)
	Size   Vec2 // in-scene viewport extent
	Plane  Basis
}

// BuildViewport maps a pixel coordinate and resolution onto the viewing
// plane. Resolution components must be non-zero and viewportHeight/focal
// positive; a zero resolution propagates NaN/Inf instead of being recovered.
// No half-pixel centering: UV = pixel/res, so NDC at pixel (0,0) is exactly
// (-1,-1).
func BuildViewport(viewportHeight, focal Real, pixel, res Vec2) Viewport {
	inv := Vec2{1 / res.X, 1 / res.Y}
	aspect := res.X * inv.Y
	uv := pixel.MulVec(inv)
	ndc := Vec2{uv.X*2 - 1, uv.Y*2 - 1}
	size := Vec2{aspect, 1}.Mul(viewportHeight)
	return Viewport{
		Pixel:  pixel,
		Res:    res,
		ResInv: inv,
		Aspect: aspect,
		Focal:  focal,
		UV:     uv,
		NDC:    ndc,
		Size:   size,
		Plane: Basis{
			X: ndc.X * size.X * 0.5,
			Y: ndc.Y * size.Y * 0.5,
			Z: -focal,
		},
	}
}
