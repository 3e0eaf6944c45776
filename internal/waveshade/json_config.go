package waveshade

import (
	"encoding/json"
	"fmt"
	"os"
)

// ChannelCfg describes one texture source: either an image file or a solid
// CSS color. Exactly one of the two must be set.
type ChannelCfg struct {
	Image string `json:"image,omitempty"`
	Color string `json:"color,omitempty"`
	Wrap  string `json:"wrap,omitempty"` // "clamp" (default) or "repeat"
}

// Build resolves the channel config into a texture.
func (c ChannelCfg) Build() (Texture, error) {
	switch {
	case c.Image != "" && c.Color != "":
		return nil, fmt.Errorf("channel: image and color are mutually exclusive")
	case c.Image != "":
		wrap := WrapClamp
		switch c.Wrap {
		case "", "clamp":
		case "repeat":
			wrap = WrapRepeat
		default:
			return nil, fmt.Errorf("channel: unknown wrap mode %q", c.Wrap)
		}
		return LoadImageTexture(c.Image, wrap)
	case c.Color != "":
		col, err := ParseColor(c.Color)
		if err != nil {
			return nil, err
		}
		return SolidTexture{C: col}, nil
	default:
		return nil, fmt.Errorf("channel: either image or color is required")
	}
}

// LightCfg overrides the fixed default light. Color keys are CSS strings so
// configs can say "white" or "#ffcc00". Intensity below the minimum is
// floored rather than rejected.
type LightCfg struct {
	Center    Basis  `json:"center"`
	Color     string `json:"color,omitempty"`
	Intensity Real   `json:"intensity,omitempty"`
}

func (c LightCfg) Build() (*PointLight, error) {
	col := Color{1, 1, 1, 1}
	if c.Color != "" {
		var err error
		col, err = ParseColor(c.Color)
		if err != nil {
			return nil, err
		}
	}
	intensity := c.Intensity
	if intensity <= 0 {
		intensity = MinLightIntensity
	}
	return NewPointLight(PointOf(c.Center), col, intensity)
}

// CameraCfg overrides the viewport numbers.
type CameraCfg struct {
	ViewportHeight Real `json:"viewportHeight,omitempty"`
	FocalLength    Real `json:"focalLength,omitempty"`
}

type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Frames int  `json:"frames,omitempty"` // defaults to 1
	FPS    Real `json:"fps,omitempty"`    // defaults to 20
	Gamma  Real `json:"gamma,omitempty"`  // defaults to 1

	GIFOut    string `json:"gifOut,omitempty"`
	PNGPrefix string `json:"pngPrefix,omitempty"`
	ThumbOut  string `json:"thumbOut,omitempty"`

	Channels [3]ChannelCfg `json:"channels"`
	Light    *LightCfg     `json:"light,omitempty"`
	Camera   *CameraCfg    `json:"camera,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("config: width/height must be positive")
	}
	if cfg.Frames <= 0 {
		cfg.Frames = DefaultFrames
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = DefaultGamma
	}
	return &cfg, nil
}

// BuildFrame assembles the per-frame context from the config. Time starts
// at zero; the caller advances it between frames.
func (cfg *Config) BuildFrame() (*Frame, error) {
	var texs [3]Texture
	for i, ch := range cfg.Channels {
		t, err := ch.Build()
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		texs[i] = t
	}
	f, err := NewFrame(Vec2{Real(cfg.Width), Real(cfg.Height)}, texs[0], texs[1], texs[2])
	if err != nil {
		return nil, err
	}
	if cfg.Light != nil {
		light, err := cfg.Light.Build()
		if err != nil {
			return nil, err
		}
		f.Light = light
	}
	if cfg.Camera != nil {
		if cfg.Camera.ViewportHeight > 0 {
			f.ViewportHeight = cfg.Camera.ViewportHeight
		}
		if cfg.Camera.FocalLength > 0 {
			f.FocalLength = cfg.Camera.FocalLength
		}
	}
	return f, nil
}
