// Package colour provides the colour model used by the token pipeline:
// normalised RGB samples, hex and HSL conversion, hue-based role
// classification and lightness quantization.
package colour

import (
	"fmt"
)

// Source identifies where in a node a colour sample was found.
type Source string

const (
	// SourceFill is a colour taken from a node's fills.
	SourceFill Source = "fill"

	// SourceStroke is a colour taken from a node's strokes.
	SourceStroke Source = "stroke"

	// SourceText is a colour taken from the fills of a text node.
	SourceText Source = "text"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceFill, SourceStroke, SourceText:
		return true
	}
	return false
}

// Sample is a single solid colour found in a design tree.
// Components are normalised to [0,1]. Hex is derived from R, G and B and is
// the sample's identity for deduplication; alpha and source are metadata.
type Sample struct {
	R         float64 `json:"r"`
	G         float64 `json:"g"`
	B         float64 `json:"b"`
	A         float64 `json:"a"`
	Hex       string  `json:"hex"`
	Source    Source  `json:"source"`
	TokenName string  `json:"tokenName"`
}

// NewSample builds a sample from normalised components and derives its hex.
func NewSample(r, g, b, a float64, source Source) Sample {
	return Sample{
		R:      r,
		G:      g,
		B:      b,
		A:      a,
		Hex:    ToHex(r, g, b),
		Source: source,
	}
}

// HSL returns the sample's hue (degrees), saturation and lightness.
func (s Sample) HSL() HSL {
	return ToHSL(s.R, s.G, s.B)
}

// Role returns the hue bucket the sample belongs to.
func (s Sample) Role() Role {
	return Classify(s.R, s.G, s.B)
}

// WithTokenName returns a copy of the sample carrying the given token name.
func (s Sample) WithTokenName(name string) Sample {
	s.TokenName = name
	return s
}

// String returns a short human-readable form, e.g. "blue-500 #0000FF (fill)".
func (s Sample) String() string {
	if s.TokenName == "" {
		return fmt.Sprintf("%s (%s)", s.Hex, s.Source)
	}
	return fmt.Sprintf("%s %s (%s)", s.TokenName, s.Hex, s.Source)
}
