package colour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupe(t *testing.T) {
	blueFill := NewSample(0, 0, 1, 1, SourceFill)
	blueStroke := NewSample(0, 0, 1, 0.5, SourceStroke)
	red := NewSample(1, 0, 0, 1, SourceText)
	green := NewSample(0, 1, 0, 1, SourceFill)

	tests := []struct {
		name  string
		input []Sample
		want  []Sample
	}{
		{
			name:  "empty",
			input: nil,
			want:  []Sample{},
		},
		{
			name:  "keeps first occurrence metadata",
			input: []Sample{blueFill, blueStroke},
			want:  []Sample{blueFill},
		},
		{
			name:  "preserves first-seen order",
			input: []Sample{red, blueFill, red, green, blueStroke},
			want:  []Sample{red, blueFill, green},
		},
		{
			name:  "near values that round to the same byte collapse",
			input: []Sample{NewSample(0.5, 0.5, 0.5, 1, SourceFill), NewSample(0.501, 0.5, 0.5, 1, SourceStroke)},
			want:  []Sample{NewSample(0.5, 0.5, 0.5, 1, SourceFill)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Dedupe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDedupeIdempotent(t *testing.T) {
	input := []Sample{
		NewSample(1, 0, 0, 1, SourceFill),
		NewSample(0, 0, 1, 1, SourceStroke),
		NewSample(1, 0, 0, 1, SourceText),
		NewSample(0.2, 0.4, 0.6, 1, SourceFill),
		NewSample(0, 0, 1, 1, SourceFill),
	}

	once := Dedupe(input)
	twice := Dedupe(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Dedupe() is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestSampleString(t *testing.T) {
	s := NewSample(0, 0, 1, 1, SourceFill)
	if got := s.String(); got != "#0000FF (fill)" {
		t.Errorf("String() = %q, want %q", got, "#0000FF (fill)")
	}
	if got := s.WithTokenName("blue-500").String(); got != "blue-500 #0000FF (fill)" {
		t.Errorf("String() = %q, want %q", got, "blue-500 #0000FF (fill)")
	}
}
