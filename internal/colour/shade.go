package colour

import "math"

// Shades is the 50–950 shade scale, lightest first.
var Shades = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// MinLevel and MaxLevel bound the 1–10 level scale. Level 1 is the lightest.
const (
	MinLevel = 1
	MaxLevel = 10
)

// ShadeOf quantizes a lightness in [0,1] onto the 50–950 scale.
// Lightness 1 maps to 50 and lightness 0 maps to 950.
func ShadeOf(lightness float64) int {
	idx := int(math.Round((1 - lightness) * 10))
	idx = max(0, min(idx, len(Shades)-1))
	return Shades[idx]
}

// LevelOf quantizes a lightness in [0,1] onto the 1–10 level scale.
// This scale is independent of ShadeOf.
func LevelOf(lightness float64) int {
	level := int(math.Round((1-lightness)*9)) + 1
	return max(MinLevel, min(level, MaxLevel))
}

// IsShade reports whether n is a value of the 50–950 scale.
func IsShade(n int) bool {
	for _, s := range Shades {
		if s == n {
			return true
		}
	}
	return false
}
