package tree

import "github.com/jmylchreest/tokenise/internal/colour"

// Extract walks nodes depth-first, pre-order, and returns a sample for every
// visible solid paint. For each node its fills come first, then its strokes,
// then its children. Fills of text nodes are reported as text colours.
// Non-solid and hidden paints are skipped. The tree is only read.
func Extract(nodes []Node) []colour.Sample {
	var samples []colour.Sample
	for _, n := range nodes {
		samples = extractNode(n, samples)
	}
	return samples
}

func extractNode(n Node, samples []colour.Sample) []colour.Sample {
	if n == nil {
		return samples
	}

	if fills, ok := n.Fills(); ok {
		source := colour.SourceFill
		if n.Type() == TypeText {
			source = colour.SourceText
		}
		samples = appendPaints(samples, fills, source)
	}

	if strokes, ok := n.Strokes(); ok {
		samples = appendPaints(samples, strokes, colour.SourceStroke)
	}

	if children, ok := n.Children(); ok {
		for _, child := range children {
			samples = extractNode(child, samples)
		}
	}

	return samples
}

func appendPaints(samples []colour.Sample, paints []Paint, source colour.Source) []colour.Sample {
	for _, p := range paints {
		if !p.IsSolid() || !p.IsVisible() || p.Color == nil {
			continue
		}
		samples = append(samples, colour.NewSample(p.Color.R, p.Color.G, p.Color.B, p.alpha(), source))
	}
	return samples
}
