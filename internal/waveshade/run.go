package waveshade

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"
)

// Run renders the whole sequence described by the config file and saves the
// configured outputs. When S3 settings are present in the environment the
// outputs are uploaded afterwards.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.GIFOut == "" && cfg.PNGPrefix == "" {
		return fmt.Errorf("config: need gifOut or pngPrefix")
	}
	frame, err := cfg.BuildFrame()
	if err != nil {
		return err
	}

	acc := NewAccumulator(cfg.Width, cfg.Height)
	frames := make([]*image.NRGBA, 0, cfg.Frames)

	start := time.Now()
	for i := 0; i < cfg.Frames; i++ {
		frame.Time = Real(i) / cfg.FPS
		acc.Reset()
		Render(frame, acc)
		frames = append(frames, acc.ToNRGBA(cfg.Gamma))
		DebugLog("Frame %d/%d done (t=%.3fs)", i+1, cfg.Frames, frame.Time)
	}
	elapsed := time.Since(start)
	DebugLog("Frames: %d, time: %s", cfg.Frames, elapsed)

	var outputs []string
	if cfg.PNGPrefix != "" {
		if err := SavePNGSequence(frames, cfg.PNGPrefix); err != nil {
			return err
		}
		width := 1
		if len(frames) > 1 {
			width = int(math.Log10(Real(len(frames)-1))) + 1
		}
		for i := range frames {
			outputs = append(outputs, fmt.Sprintf("%s_%0*d.png", cfg.PNGPrefix, width, i))
		}
	}
	if cfg.GIFOut != "" {
		delay := int(math.Round(100 / cfg.FPS))
		if delay < 1 {
			delay = 1
		}
		if err := SaveAnimatedGIF(frames, cfg.GIFOut, delay); err != nil {
			return err
		}
		fmt.Println("Saved animated GIF:", cfg.GIFOut)
		outputs = append(outputs, cfg.GIFOut)
	}
	if cfg.ThumbOut != "" {
		if err := SaveThumbnail(frames[0], cfg.ThumbOut, 128); err != nil {
			return err
		}
		outputs = append(outputs, cfg.ThumbOut)
	}

	if upCfg := UploadConfigFromEnv(); upCfg != nil {
		up, err := NewUploader(upCfg)
		if err != nil {
			return err
		}
		for _, path := range outputs {
			if err := up.UploadFile(context.Background(), path); err != nil {
				return err
			}
		}
	}
	return nil
}
