// Package export serialises named colours as JSON token documents and writes
// them to variable stores.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/naming"
)

// Document is the top-level shape of a JSON token file.
type Document struct {
	Colors map[string]any `json:"colors"`
}

// Tokens builds the token document for named samples. Tailwind names are
// grouped by everything before their last hyphen; other patterns are flat.
func Tokens(samples []colour.Sample, pattern naming.Pattern) Document {
	colors := make(map[string]any, len(samples))

	if pattern != naming.PatternTailwind {
		for _, s := range samples {
			colors[s.TokenName] = s.Hex
		}
		return Document{Colors: colors}
	}

	for _, s := range samples {
		idx := strings.LastIndex(s.TokenName, "-")
		if idx < 0 {
			colors[s.TokenName] = s.Hex
			continue
		}
		group, shade := s.TokenName[:idx], s.TokenName[idx+1:]
		shades, ok := colors[group].(map[string]string)
		if !ok {
			shades = make(map[string]string)
			colors[group] = shades
		}
		shades[shade] = s.Hex
	}
	return Document{Colors: colors}
}

// BuildJSON renders the token document as 2-space indented JSON.
func BuildJSON(samples []colour.Sample, pattern naming.Pattern) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(Tokens(samples, pattern)); err != nil {
		return nil, fmt.Errorf("failed to encode tokens: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
