package waveshade

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	// extra decode support beyond the stdlib formats
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is a 2D color source. Sample takes a normalized coordinate
// (u,v in [0,1) covers the image once); out-of-range handling is the
// texture's own policy, the shading pipeline never clamps.
type Texture interface {
	Sample(at Vec2) Color
	Resolution() Vec2
}

// WrapMode decides what Sample does outside [0,1).
type WrapMode int

const (
	WrapClamp WrapMode = iota // clamp-to-edge (default policy)
	WrapRepeat
)

// ImageTexture samples a decoded image with nearest-neighbor lookup,
// bottom-left origin (v=0 is the bottom row).
type ImageTexture struct {
	Width  int
	Height int
	Img    image.Image
	Wrap   WrapMode
}

func NewImageTexture(img image.Image, wrap WrapMode) *ImageTexture {
	b := img.Bounds()
	return &ImageTexture{
		Width:  b.Dx(),
		Height: b.Dy(),
		Img:    img,
		Wrap:   wrap,
	}
}

// LoadImageTexture reads any supported image format from disk.
func LoadImageTexture(path string, wrap WrapMode) (*ImageTexture, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return NewImageTexture(img, wrap), nil
}

func (t *ImageTexture) Resolution() Vec2 {
	return Vec2{Real(t.Width), Real(t.Height)}
}

func (t *ImageTexture) Sample(at Vec2) Color {
	u, v := at.X, at.Y
	switch t.Wrap {
	case WrapRepeat:
		u -= math.Floor(u)
		v -= math.Floor(v)
	default:
		u = clamp(u, 0, 1)
		v = clamp(v, 0, 1)
	}
	x := clamp(int(u*Real(t.Width)), 0, t.Width-1)
	// flip v: image rows grow downward, sample space grows upward
	y := clamp(t.Height-1-int(v*Real(t.Height)), 0, t.Height-1)

	b := t.Img.Bounds()
	r, g, bl, a := t.Img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	const s = 1.0 / 65535.0
	return Color{Real(r) * s, Real(g) * s, Real(bl) * s, Real(a) * s}
}

// SolidTexture is a constant color source (handy for tests and configs
// without image assets). Its nominal resolution is 1×1.
type SolidTexture struct {
	C Color
}

func (t SolidTexture) Sample(Vec2) Color { return t.C }
func (t SolidTexture) Resolution() Vec2  { return Vec2{1, 1} }
