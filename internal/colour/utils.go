package colour

import (
	"fmt"
	"math"
)

// HSL holds a colour in HSL space.
// H is in degrees [0,360), S and L are in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ToHex converts normalised RGB components to an uppercase "#RRGGBB" string.
// Alpha is never part of the hex form.
func ToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", toByte(r), toByte(g), toByte(b))
}

// toByte scales a [0,1] component to the nearest 8-bit value.
func toByte(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// ToHSL converts normalised RGB components to HSL.
// When two channels tie for the maximum, red wins over green and green over blue.
func ToHSL(r, g, b float64) HSL {
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s, L: l}
}
