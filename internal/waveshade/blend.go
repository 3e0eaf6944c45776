package waveshade

import "math"

// Crossfade blends two colors with a looping ping-pong driven by time.
// frac(t) is the position inside the current fade, floor(t) selects the
// direction: even cycles fade a→b, odd cycles fade b→a. Period 2, continuous
// everywhere, exactly saturated at integer times.
func Crossfade(a, b Color, t Real) Color {
	pos := t - math.Floor(t)
	if math.Mod(math.Floor(t), 2) == 0 {
		return a.Lerp(b, pos)
	}
	return b.Lerp(a, pos)
}
