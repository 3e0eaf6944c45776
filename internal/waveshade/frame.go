package waveshade

import "errors"

// Channel indices into Frame.Channels.
const (
	Chan0 = 0 // first crossfade source, defines the pan texel space
	Chan1 = 1 // direction-indexed (cube) source, final output
	Chan2 = 2 // second crossfade source
)

// Frame carries everything one frame of shading needs: elapsed time, output
// resolution, the three texture channels, the light and the camera numbers.
// It replaces host-supplied globals; per-pixel shading reads it but never
// writes it, so any number of workers can share one Frame.
type Frame struct {
	Time Real
	Res  Vec2

	Channels [3]Texture
	Cube     DirectionTexture // wraps Channels[Chan1]

	Light *PointLight

	Eye            Basis
	ViewportHeight Real
	FocalLength    Real
	Normal         Vector // fixed forward-facing surface normal
}

// NewFrame wires the fixed pipeline setup around the three channels: eye at
// the scene origin, viewport 2.0 high with focal 1.5, a white unit-intensity
// light on the view axis and a forward normal.
func NewFrame(res Vec2, ch0, ch1, ch2 Texture) (*Frame, error) {
	if res.X <= 0 || res.Y <= 0 {
		return nil, errors.New("resolution must be positive")
	}
	if ch0 == nil || ch1 == nil || ch2 == nil {
		return nil, errors.New("all three texture channels are required")
	}
	light, err := NewPointLight(
		Point{0, 0, 0, 1},
		Color{1, 1, 1, 1},
		1,
	)
	if err != nil {
		return nil, err
	}
	f := &Frame{
		Res:            res,
		Channels:       [3]Texture{ch0, ch1, ch2},
		Cube:           DirectionTexture{Tex: ch1},
		Light:          light,
		Eye:            Basis{0, 0, 0},
		ViewportHeight: ViewportHeight,
		FocalLength:    FocalLength,
		Normal:         Vector{0, 0, 1, 0},
	}
	return f, nil
}

// shade runs the whole per-pixel pipeline once and reports both results:
// the lit two-channel composite and the directional sample that the original
// effect lets win.
func (f *Frame) shade(pixel Vec2) (final, composite Color) {
	vp := BuildViewport(f.ViewportHeight, f.FocalLength, pixel, f.Res)
	ray := PerspectiveRay(f.Eye, vp.Plane)

	// 2D sample coordinate: pixel scaled into channel-0 texel space, panned
	// horizontally with time, then wave-warped.
	res0 := f.Channels[Chan0].Resolution()
	coord := Vec2{pixel.X / res0.X, pixel.Y / res0.Y}
	coord.X += f.Time * PanSpeed
	coord = WarpPlane(coord, f.Time)

	a := f.Channels[Chan0].Sample(coord)
	b := f.Channels[Chan2].Sample(coord)
	mixed := Crossfade(a, b, f.Time)

	intensity := DiffuseIntensity(f.Light, f.Normal, PointOf(vp.Plane))
	composite = mixed.Mul(f.Light.Color.MulScalar(intensity))

	dir := RotY(f.Time).MulBasis(ray.Dir.Basis().Norm())
	dir = WarpDirection(dir)
	final = f.Cube.SampleDir(dir)
	return final, composite
}

// Shade returns the final color for one pixel: the rotated, warped
// directional lookup. The lit composite is evaluated on the way, faithful to
// the source effect where this lookup overwrites it.
func (f *Frame) Shade(pixel Vec2) Color {
	final, _ := f.shade(pixel)
	return final
}

// ShadeComposite returns the lit crossfade of channels 0 and 2 for one
// pixel, the intermediate result Shade supersedes. Exposed so an embedding
// can display either output.
func (f *Frame) ShadeComposite(pixel Vec2) Color {
	_, composite := f.shade(pixel)
	return composite
}
