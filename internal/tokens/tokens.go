// Package tokens runs the colour token pipeline: extraction from a node
// selection, deduplication and naming.
package tokens

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/tokenise/internal/colour"
	"github.com/jmylchreest/tokenise/internal/naming"
	"github.com/jmylchreest/tokenise/internal/tree"
)

// ErrNoSelection is returned when there are no nodes to extract from.
// It is an empty result rather than a failure.
var ErrNoSelection = errors.New("no nodes selected")

// FromNodes extracts the solid colours used in nodes, keeps one sample per
// hex and names them.
func FromNodes(nodes []tree.Node, opts naming.Options) ([]colour.Sample, error) {
	if len(nodes) == 0 {
		return nil, ErrNoSelection
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	unique := colour.Dedupe(tree.Extract(nodes))
	named, err := naming.Apply(unique, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to name colours: %w", err)
	}
	return named, nil
}

// Rename re-applies naming to previously extracted samples. Existing token
// names are discarded and hex values are recomputed from the components.
func Rename(samples []colour.Sample, opts naming.Options) ([]colour.Sample, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	normalised := make([]colour.Sample, len(samples))
	for i, s := range samples {
		source := s.Source
		if !source.Valid() {
			source = colour.SourceFill
		}
		normalised[i] = colour.NewSample(s.R, s.G, s.B, s.A, source)
	}

	named, err := naming.Apply(colour.Dedupe(normalised), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to name colours: %w", err)
	}
	return named, nil
}
