package waveshade

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"width": 64, "height": 64,
		"gifOut": "out.gif",
		"channels": [
			{"color": "red"},
			{"color": "blue"},
			{"color": "green"}
		]
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Frames != DefaultFrames || cfg.FPS != DefaultFPS || cfg.Gamma != DefaultGamma {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	f, err := cfg.BuildFrame()
	if err != nil {
		t.Fatal(err)
	}
	if f.Res != (Vec2{64, 64}) {
		t.Fatalf("resolution mismatch: %+v", f.Res)
	}
}

func TestLoadConfigRejectsBadResolution(t *testing.T) {
	path := writeConfig(t, `{"width": 0, "height": 64, "gifOut": "x.gif",
		"channels": [{"color":"red"},{"color":"red"},{"color":"red"}]}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestChannelCfgValidation(t *testing.T) {
	if _, err := (ChannelCfg{}).Build(); err == nil {
		t.Fatal("expected error for empty channel")
	}
	if _, err := (ChannelCfg{Image: "a.png", Color: "red"}).Build(); err == nil {
		t.Fatal("expected error for both image and color")
	}
	if _, err := (ChannelCfg{Color: "not-a-color"}).Build(); err == nil {
		t.Fatal("expected error for bad color string")
	}
	if _, err := (ChannelCfg{Image: "a.png", Wrap: "mirror"}).Build(); err == nil {
		t.Fatal("expected error for unknown wrap mode")
	}
	tex, err := (ChannelCfg{Color: "#ff0000"}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if !colorNear(tex.Sample(Vec2{}), Color{1, 0, 0, 1}, 1e-9) {
		t.Fatalf("solid channel color mismatch: %+v", tex.Sample(Vec2{}))
	}
}

func TestLightCfgFloorsIntensity(t *testing.T) {
	light, err := LightCfg{Center: Basis{0, 0, 0}, Intensity: 0}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if light.Intensity != MinLightIntensity {
		t.Fatalf("intensity not floored: %.3g", light.Intensity)
	}
	light, err = LightCfg{Intensity: 2.5, Color: "#808080"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	if light.Intensity != 2.5 {
		t.Fatalf("intensity overridden: %.3g", light.Intensity)
	}
}

func TestCameraCfgOverride(t *testing.T) {
	path := writeConfig(t, `{
		"width": 32, "height": 32, "pngPrefix": "frame",
		"camera": {"viewportHeight": 4, "focalLength": 0.5},
		"channels": [{"color":"red"},{"color":"blue"},{"color":"green"}]
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	f, err := cfg.BuildFrame()
	if err != nil {
		t.Fatal(err)
	}
	if f.ViewportHeight != 4 || f.FocalLength != 0.5 {
		t.Fatalf("camera override lost: %+v", f)
	}
}
