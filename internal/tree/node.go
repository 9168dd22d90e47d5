// Package tree defines the read-only view of a design document that colour
// extraction works against, and a JSON document model implementing it.
package tree

import "strings"

// TypeText is the node type whose fills are text colours.
const TypeText = "TEXT"

// PaintSolid is the paint type that yields a colour sample.
const PaintSolid = "SOLID"

// Node is a read-only view of a node in a design document.
// The boolean results report whether the node has that property at all.
type Node interface {
	// Type returns the node type, e.g. "FRAME" or "TEXT".
	Type() string

	// Fills returns the node's fill paints.
	Fills() ([]Paint, bool)

	// Strokes returns the node's stroke paints.
	Strokes() ([]Paint, bool)

	// Children returns the node's direct children.
	Children() ([]Node, bool)
}

// RGBA is a normalised colour as stored on a paint.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a,omitempty"`
}

// Paint describes a single fill or stroke.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *RGBA    `json:"color,omitempty"`
}

// IsSolid reports whether the paint is a solid colour.
func (p Paint) IsSolid() bool {
	return strings.EqualFold(p.Type, PaintSolid)
}

// IsVisible reports whether the paint is visible. A missing flag means visible.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// alpha returns the paint opacity, defaulting to 1.
func (p Paint) alpha() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Solid returns a visible solid paint of the given colour.
func Solid(r, g, b float64) Paint {
	return Paint{Type: PaintSolid, Color: &RGBA{R: r, G: g, B: b, A: 1}}
}
