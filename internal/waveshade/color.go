package waveshade

import (
	"fmt"

	css "github.com/mazznoer/csscolorparser"
)

// Color stores RGBA components. Values are unbounded during shading and
// only clamped by the display mapping.
type Color struct {
	R, G, B, A Real
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

// Mul is the component-wise product (tinting).
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (c Color) MulScalar(s Real) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp interpolates linearly from a to b by t (not clamped).
func (a Color) Lerp(b Color, t Real) Color {
	return Color{
		a.R + (b.R-a.R)*t,
		a.G + (b.G-a.G)*t,
		a.B + (b.B-a.B)*t,
		a.A + (b.A-a.A)*t,
	}
}

// clamp01 clamps each channel to [0,1] (useful for display mapping).
func (c Color) clamp01() Color {
	return Color{
		clamp(c.R, 0, 1),
		clamp(c.G, 0, 1),
		clamp(c.B, 0, 1),
		clamp(c.A, 0, 1),
	}
}

// ParseColor accepts any CSS color string ("#ff8800", "rgb(...)", names).
func ParseColor(s string) (Color, error) {
	c, err := css.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return Color{Real(c.R), Real(c.G), Real(c.B), Real(c.A)}, nil
}
