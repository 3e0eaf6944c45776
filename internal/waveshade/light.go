package waveshade

import "errors"

// PointLight illuminates from a single position. Intensity controls the
// attenuation falloff radius rather than raw brightness; it must be > 0.
type PointLight struct {
	Center    Point
	Color     Color
	Intensity Real
}

// NewPointLight clamps the color and validates the falloff control: zero or
// negative intensity would divide by zero inside the attenuation term.
func NewPointLight(center Point, color Color, intensity Real) (*PointLight, error) {
	if intensity <= 0 {
		return nil, errors.New("light intensity must be positive")
	}
	light := &PointLight{
		Center:    center,
		Color:     color.clamp01(),
		Intensity: intensity,
	}
	DebugLog("Created light %+v", light)
	return light, nil
}

// DiffuseIntensity returns the clamped Lambert term scaled by a smooth
// inverse falloff: 1 / (1 + d/I + d²/I²), bounded in (0,1]. The normal is
// assumed unit length.
//
// A surface coincident with the light center keeps the result well-defined:
// Norm of the zero vector stays zero, so the diffuse term clamps to 0 while
// attenuation is 1.
func DiffuseIntensity(light *PointLight, normal Vector, surface Point) Real {
	toSurface := surface.Sub(light.Center)
	dist := toSurface.Len()
	lightDir := light.Center.Sub(surface).Norm()

	diffuse := normal.Dot(lightDir)
	if diffuse < 0 {
		diffuse = 0
	}

	attenuation := 1 / (1 + dist/light.Intensity + dist*dist/(light.Intensity*light.Intensity))
	return diffuse * attenuation
}
