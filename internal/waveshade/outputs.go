package waveshade

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// SavePNGSequence writes one PNG per rendered frame as prefix_<idx>.png,
// indices zero-padded to the sequence length.
func SavePNGSequence(frames []*image.NRGBA, prefix string) error {
	width := 1
	if len(frames) > 1 {
		width = int(math.Log10(Real(len(frames)-1))) + 1
	}
	for i, img := range frames {
		path := fmt.Sprintf("%s_%0*d.png", prefix, width, i)
		if err := savePNG(img, path); err != nil {
			return err
		}
		DebugLog("Saved %s", path)
	}
	return nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveAnimatedGIF writes every frame into one looping GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*image.NRGBA, path string, delay int) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}

	step := 1
	if len(frames) >= 100 {
		step = len(frames) / 100
	}
	for i, img := range frames {
		if i%step == 0 {
			fmt.Printf("[GIF] %.2f%%\n", Real(i+1)*100/Real(len(frames)))
		}
		// Quantize to paletted for GIF.
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}

// SaveThumbnail writes a width-bounded preview of one frame (height keeps
// the aspect ratio).
func SaveThumbnail(img image.Image, path string, maxWidth uint) error {
	thumb := resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	return savePNG(thumb, path)
}
