package colour

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 8

// DisableColourOutput turns swatch rendering into plain padding.
var DisableColourOutput = false

// ColourPreview returns a solid terminal swatch for the sample.
// Width specifies how many cells wide the block should be.
func ColourPreview(s Sample, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(s.Hex)).Render(block)
}

// ColourPreviewWithText returns a swatch with text overlaid in black or white,
// whichever reads better on the sample's lightness.
func ColourPreviewWithText(s Sample, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(text) > width {
		text = text[:width]
	}
	if DisableColourOutput {
		return fmt.Sprintf("%-*s", width, text)
	}

	fg := "#FFFFFF"
	if s.HSL().L > 0.5 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// FormatColourWithLabel formats a sample with a swatch, its token name and hex.
func FormatColourWithLabel(s Sample, width int) string {
	label := s.TokenName
	if label == "" {
		label = string(s.Source)
	}
	return fmt.Sprintf("%s  %-24s %s", ColourPreview(s, width), label, s.Hex)
}
