package waveshade

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// Accumulator is the per-frame output target. Shade results are added into
// the flat buffer (4 components per pixel), never overwritten, matching the
// host convention of accumulating into fragColor.
type Accumulator struct {
	W, H int
	Buf  []Real // flat: (y*W + x)*4 + c
}

func NewAccumulator(w, h int) *Accumulator {
	if w <= 0 || h <= 0 {
		panic("accumulator resolution must be positive")
	}
	return &Accumulator{W: w, H: h, Buf: make([]Real, w*h*4)}
}

// Reset zeroes the buffer so the accumulator can be reused across frames.
func (a *Accumulator) Reset() {
	for i := range a.Buf {
		a.Buf[i] = 0
	}
}

func (a *Accumulator) idx(x, y int) int { return (y*a.W + x) * 4 }

// Render shades every pixel of the frame into acc, rows distributed across
// all CPU cores. Pixel computations are independent, the only shared data
// (the Frame) is read-only, so workers need no locks.
func Render(f *Frame, acc *Accumulator) {
	renderWith(f.Shade, acc)
}

// RenderComposite is Render for the lit crossfade output (see
// Frame.ShadeComposite).
func RenderComposite(f *Frame, acc *Accumulator) {
	renderWith(f.ShadeComposite, acc)
}

func renderWith(shade func(Vec2) Color, acc *Accumulator) {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > acc.H {
		workers = acc.H
	}

	var nextRow int64 = -1
	var done int64
	nextPrint := int64(1)
	if acc.H >= 100 {
		nextPrint = int64(acc.H / 100) // ~1%
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				y := int(atomic.AddInt64(&nextRow, 1))
				if y >= acc.H {
					return
				}
				base := acc.idx(0, y)
				for x := 0; x < acc.W; x++ {
					c := shade(Vec2{Real(x), Real(y)})
					o := base + x*4
					acc.Buf[o+0] += c.R
					acc.Buf[o+1] += c.G
					acc.Buf[o+2] += c.B
					acc.Buf[o+3] += c.A
				}
				if rows := atomic.AddInt64(&done, 1); Debug && rows%nextPrint == 0 {
					fmt.Printf("[RENDER] %.2f%%\n", Real(rows)*100/Real(acc.H))
				}
			}
		}()
	}
	wg.Wait()
}

// ToNRGBA maps the accumulated buffer to an 8-bit image: clamp to [0,1],
// optional gamma on the color channels, and a vertical flip so the
// bottom-left shading origin ends up as the image's bottom-left.
func (a *Accumulator) ToNRGBA(gamma Real) *image.NRGBA {
	toByte := func(v Real) uint8 {
		// a single NaN/Inf pixel must not poison the frame
		if !isFinite(v) || v <= 0 {
			return 0
		}
		if v > 1 {
			v = 1
		}
		if gamma != 1 {
			v = math.Pow(v, 1.0/gamma)
		}
		return uint8(math.Round(v * 255))
	}

	img := image.NewNRGBA(image.Rect(0, 0, a.W, a.H))
	for j := 0; j < a.H; j++ {
		y := a.H - 1 - j
		for i := 0; i < a.W; i++ {
			o := a.idx(i, j)
			p := img.PixOffset(i, y)
			img.Pix[p+0] = toByte(a.Buf[o+0])
			img.Pix[p+1] = toByte(a.Buf[o+1])
			img.Pix[p+2] = toByte(a.Buf[o+2])
			alpha := a.Buf[o+3]
			if !isFinite(alpha) {
				alpha = 0
			}
			img.Pix[p+3] = uint8(math.Round(clamp(alpha, 0, 1) * 255))
		}
	}
	return img
}
