package waveshade

type Real = float64

const (
	// Fixed camera setup used by the pixel pipeline.
	ViewportHeight = 2.0
	FocalLength    = 1.5

	// Horizontal texture pan in channel-0 texel space per second.
	PanSpeed = 0.25

	DefaultGamma  = 1.0
	DefaultFPS    = 20.0
	DefaultFrames = 1

	// Smallest light intensity the config loader accepts before flooring.
	MinLightIntensity = 1e-6
)
