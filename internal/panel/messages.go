// Package panel implements the message protocol between the token tool and
// its host panel: a tagged union of requests and replies exchanged as JSON
// objects, one per line.
package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/naming"
)

// Request and reply type tags.
const (
	TypeExtractColors   = "extract-colors"
	TypeApplyNaming     = "apply-naming"
	TypeExportVariables = "export-variables"
	TypeExportJSON      = "export-json"
	TypeClose           = "close"

	TypeColorsExtracted = "colors-extracted"
	TypeNoSelection     = "no-selection"
	TypeExportDone      = "export-done"
	TypeExportError     = "export-error"
	TypeJSONReady       = "json-ready"
	TypeError           = "error"
)

// ErrUnknownMessage is returned when a message has a missing or unknown type.
var ErrUnknownMessage = errors.New("unknown message type")

// Request is a message from the panel.
type Request interface {
	RequestType() string
}

// ExtractColors asks for the colours of the current selection.
type ExtractColors struct {
	Pattern      naming.Pattern `json:"pattern,omitempty"`
	CustomPrefix string         `json:"customPrefix,omitempty"`
}

// ApplyNaming asks for colours to be renamed with a different pattern.
type ApplyNaming struct {
	Colors       []colour.Sample `json:"colors"`
	Pattern      naming.Pattern  `json:"pattern"`
	CustomPrefix string          `json:"customPrefix,omitempty"`
}

// ExportVariables asks for colours to be written to the variable store.
type ExportVariables struct {
	Colors     []colour.Sample `json:"colors"`
	Pattern    naming.Pattern  `json:"pattern"`
	Collection string          `json:"collection,omitempty"`
}

// ExportJSON asks for colours rendered as a JSON token document.
type ExportJSON struct {
	Colors  []colour.Sample `json:"colors"`
	Pattern naming.Pattern  `json:"pattern"`
}

// Close ends the session.
type Close struct{}

func (ExtractColors) RequestType() string   { return TypeExtractColors }
func (ApplyNaming) RequestType() string     { return TypeApplyNaming }
func (ExportVariables) RequestType() string { return TypeExportVariables }
func (ExportJSON) RequestType() string      { return TypeExportJSON }
func (Close) RequestType() string           { return TypeClose }

// Reply is a message to the panel.
type Reply interface {
	ReplyType() string
}

// ColorsExtracted carries named colours. Source is "extract" or "rename".
type ColorsExtracted struct {
	Colors []colour.Sample `json:"colors"`
	Source string          `json:"source"`
}

// NoSelection reports that nothing was selected.
type NoSelection struct{}

// ExportDone reports a successful export.
type ExportDone struct {
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// ExportError reports a failed export.
type ExportError struct {
	Message string `json:"message"`
}

// JSONReady carries a rendered token document.
type JSONReady struct {
	JSON string `json:"json"`
}

// Error reports a request that could not be handled.
type Error struct {
	Message string `json:"message"`
}

func (ColorsExtracted) ReplyType() string { return TypeColorsExtracted }
func (NoSelection) ReplyType() string     { return TypeNoSelection }
func (ExportDone) ReplyType() string      { return TypeExportDone }
func (ExportError) ReplyType() string     { return TypeExportError }
func (JSONReady) ReplyType() string       { return TypeJSONReady }
func (Error) ReplyType() string           { return TypeError }

// wireColor is the inbound colour form. Components may be omitted when a
// hex value is given.
type wireColor struct {
	R         *float64      `json:"r"`
	G         *float64      `json:"g"`
	B         *float64      `json:"b"`
	A         *float64      `json:"a"`
	Hex       string        `json:"hex"`
	Source    colour.Source `json:"source"`
	TokenName string        `json:"tokenName"`
}

func (w wireColor) sample() (colour.Sample, error) {
	var r, g, b float64
	switch {
	case w.R != nil && w.G != nil && w.B != nil:
		r, g, b = *w.R, *w.G, *w.B
	case w.Hex != "":
		hex := strings.TrimSpace(w.Hex)
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return colour.Sample{}, fmt.Errorf("invalid hex colour %q: %w", w.Hex, err)
		}
		r, g, b = c.R, c.G, c.B
	default:
		return colour.Sample{}, fmt.Errorf("colour needs r, g and b or a hex value")
	}

	a := 1.0
	if w.A != nil {
		a = *w.A
	}
	source := w.Source
	if source == "" {
		source = colour.SourceFill
	}
	if !source.Valid() {
		return colour.Sample{}, fmt.Errorf("invalid colour source %q", w.Source)
	}

	return colour.NewSample(r, g, b, a, source).WithTokenName(w.TokenName), nil
}

func decodeColors(raw []wireColor) ([]colour.Sample, error) {
	samples := make([]colour.Sample, 0, len(raw))
	for i, w := range raw {
		s, err := w.sample()
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// DecodeRequest parses one panel message.
func DecodeRequest(data []byte) (Request, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	var body struct {
		Pattern      string      `json:"pattern"`
		CustomPrefix string      `json:"customPrefix"`
		Collection   string      `json:"collection"`
		Colors       []wireColor `json:"colors"`
	}
	switch envelope.Type {
	case TypeClose:
		return Close{}, nil
	case TypeExtractColors, TypeApplyNaming, TypeExportVariables, TypeExportJSON:
	case "":
		return nil, fmt.Errorf("%w: message has no type", ErrUnknownMessage)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, envelope.Type)
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to parse %s message: %w", envelope.Type, err)
	}
	pattern, err := naming.ParsePattern(body.Pattern)
	if err != nil {
		return nil, err
	}
	colors, err := decodeColors(body.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s message: %w", envelope.Type, err)
	}

	switch envelope.Type {
	case TypeExtractColors:
		return ExtractColors{Pattern: pattern, CustomPrefix: body.CustomPrefix}, nil
	case TypeApplyNaming:
		return ApplyNaming{Colors: colors, Pattern: pattern, CustomPrefix: body.CustomPrefix}, nil
	case TypeExportVariables:
		return ExportVariables{Colors: colors, Pattern: pattern, Collection: body.Collection}, nil
	default:
		return ExportJSON{Colors: colors, Pattern: pattern}, nil
	}
}

// EncodeReply renders a reply as a JSON object with its "type" tag.
func EncodeReply(r Reply) ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s reply: %w", r.ReplyType(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to marshal %s reply: %w", r.ReplyType(), err)
	}
	tag, _ := json.Marshal(r.ReplyType())
	fields["type"] = tag

	return json.Marshal(fields)
}

// DecodeColors parses a JSON array of colours in the panel's wire form.
func DecodeColors(data []byte) ([]colour.Sample, error) {
	var raw []wireColor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}
	return decodeColors(raw)
}

// EncodeColors renders samples in the panel's wire form.
func EncodeColors(samples []colour.Sample) ([]byte, error) {
	if samples == nil {
		samples = []colour.Sample{}
	}
	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal colours: %w", err)
	}
	return data, nil
}
