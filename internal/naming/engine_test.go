package naming

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tokenise/internal/colour"
)

func sample(r, g, b float64) colour.Sample {
	return colour.NewSample(r, g, b, 1, colour.SourceFill)
}

var (
	blue   = sample(0, 0, 1)
	white  = sample(1, 1, 1)
	black  = sample(0, 0, 0)
	red    = sample(1, 0, 0)
	pink   = sample(1, 0, 1)
	cyan   = sample(0, 1, 1)
	purple = sample(0.5, 0, 1)
	yellow = sample(1, 1, 0)
	orange = sample(1, 0.5, 0)
	forest = sample(0, 0.4, 0)
	google = sample(26.0/255, 115.0/255, 232.0/255)
)

func TestNamePerPattern(t *testing.T) {
	tests := []struct {
		name    string
		sample  colour.Sample
		pattern Pattern
		prefix  string
		want    string
	}{
		{name: "tailwind blue", sample: blue, pattern: PatternTailwind, want: "blue-500"},
		{name: "tailwind white", sample: white, pattern: PatternTailwind, want: "gray-50"},
		{name: "tailwind black", sample: black, pattern: PatternTailwind, want: "gray-950"},
		{name: "tailwind dark green", sample: forest, pattern: PatternTailwind, want: "green-800"},

		{name: "material shade 500 drops suffix", sample: blue, pattern: PatternMaterial, want: "color-primary"},
		{name: "material google blue", sample: google, pattern: PatternMaterial, want: "color-primary"},
		{name: "material red", sample: red, pattern: PatternMaterial, want: "color-error"},
		{name: "material pink", sample: pink, pattern: PatternMaterial, want: "color-secondary"},
		{name: "material cyan", sample: cyan, pattern: PatternMaterial, want: "color-secondary"},
		{name: "material purple", sample: purple, pattern: PatternMaterial, want: "color-tertiary"},
		{name: "material yellow", sample: yellow, pattern: PatternMaterial, want: "color-warning"},
		{name: "material orange", sample: orange, pattern: PatternMaterial, want: "color-warning"},
		{name: "material white", sample: white, pattern: PatternMaterial, want: "color-surface-50"},
		{name: "material dark green", sample: forest, pattern: PatternMaterial, want: "color-success-800"},

		{name: "antd blue", sample: blue, pattern: PatternAntd, want: "primary-6"},
		{name: "antd purple", sample: purple, pattern: PatternAntd, want: "primary-6"},
		{name: "antd pink", sample: pink, pattern: PatternAntd, want: "error-6"},
		{name: "antd cyan", sample: cyan, pattern: PatternAntd, want: "info-6"},
		{name: "antd white", sample: white, pattern: PatternAntd, want: "neutral-1"},
		{name: "antd black", sample: black, pattern: PatternAntd, want: "neutral-10"},
		{name: "antd dark green", sample: forest, pattern: PatternAntd, want: "success-8"},

		{name: "wcag blue", sample: blue, pattern: PatternWCAG, want: "color-info"},
		{name: "wcag purple", sample: purple, pattern: PatternWCAG, want: "color-info"},
		{name: "wcag pink", sample: pink, pattern: PatternWCAG, want: "color-error"},
		{name: "wcag orange", sample: orange, pattern: PatternWCAG, want: "color-warning"},
		{name: "wcag light gray", sample: white, pattern: PatternWCAG, want: "color-neutral-light"},
		{name: "wcag dark gray", sample: black, pattern: PatternWCAG, want: "color-neutral-dark"},

		{name: "custom prefix", sample: blue, pattern: PatternCustom, prefix: "brand", want: "brand-blue-500"},
		{name: "custom prefix trimmed", sample: red, pattern: PatternCustom, prefix: "  acme ", want: "acme-red-500"},
		{name: "custom empty prefix", sample: blue, pattern: PatternCustom, prefix: "", want: "color-blue-500"},
		{name: "custom whitespace prefix", sample: blue, pattern: PatternCustom, prefix: " \t ", want: "color-blue-500"},

		{name: "empty pattern defaults to material", sample: blue, pattern: "", want: "color-primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.sample, Options{Pattern: tt.pattern, CustomPrefix: tt.prefix})
			if err != nil {
				t.Fatalf("Name() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Name() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestApplyCollisionSuffixes(t *testing.T) {
	blues := []colour.Sample{
		blue,
		sample(10.0/255, 10.0/255, 245.0/255),
		sample(16.0/255, 16.0/255, 239.0/255),
	}

	named, err := Apply(blues, Options{Pattern: PatternTailwind})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := []string{"blue-500", "blue-500-1", "blue-500-2"}
	if diff := cmp.Diff(want, tokenNames(named)); diff != "" {
		t.Errorf("Apply() names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPreservesOrderAndInput(t *testing.T) {
	input := []colour.Sample{red, blue, white, red}
	original := append([]colour.Sample(nil), input...)

	named, err := Apply(input, Options{Pattern: PatternTailwind})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if diff := cmp.Diff(original, input); diff != "" {
		t.Errorf("Apply() mutated its input (-want +got):\n%s", diff)
	}
	for i := range input {
		if named[i].Hex != input[i].Hex {
			t.Errorf("named[%d].Hex = %s, want %s", i, named[i].Hex, input[i].Hex)
		}
	}
	want := []string{"red-500", "blue-500", "gray-50", "red-500-1"}
	if diff := cmp.Diff(want, tokenNames(named)); diff != "" {
		t.Errorf("Apply() names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDeterministic(t *testing.T) {
	input := []colour.Sample{blue, google, cyan, pink, white, black, forest, orange}
	for _, p := range ValidPatterns() {
		first, err := Apply(input, Options{Pattern: p, CustomPrefix: "brand"})
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", p, err)
		}
		second, err := Apply(input, Options{Pattern: p, CustomPrefix: "brand"})
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", p, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Apply(%s) not deterministic (-first +second):\n%s", p, diff)
		}
	}
}

func TestApplyNamesNonEmpty(t *testing.T) {
	input := []colour.Sample{blue, white, black, red, pink, cyan, purple, yellow, orange, forest}
	for _, p := range ValidPatterns() {
		named, err := Apply(input, Options{Pattern: p})
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", p, err)
		}
		for _, s := range named {
			if s.TokenName == "" {
				t.Errorf("Apply(%s) left %s unnamed", p, s.Hex)
			}
		}
	}
}

func TestApplyTailwindShadesOnScale(t *testing.T) {
	// One colour per role and lightness band so no names collide.
	var input []colour.Sample
	for _, l := range []float64{0.97, 0.85, 0.5, 0.2} {
		input = append(input,
			sample(l, l*0.2, l*0.2),
			sample(l*0.2, l, l*0.2),
			sample(l*0.2, l*0.2, l),
		)
	}

	named, err := Apply(input, Options{Pattern: PatternTailwind})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	for _, s := range named {
		idx := strings.LastIndex(s.TokenName, "-")
		shade, err := strconv.Atoi(s.TokenName[idx+1:])
		if err != nil {
			t.Fatalf("token %q has a non-numeric shade: %v", s.TokenName, err)
		}
		if !colour.IsShade(shade) {
			t.Errorf("token %q has shade %d off the 50-950 scale", s.TokenName, shade)
		}
	}
}

func TestApplyUnknownPattern(t *testing.T) {
	_, err := Apply([]colour.Sample{blue}, Options{Pattern: "bootstrap"})
	if !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Apply() error = %v, want ErrUnknownPattern", err)
	}
	if _, err := Name(blue, Options{Pattern: "bootstrap"}); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Name() error = %v, want ErrUnknownPattern", err)
	}
}

func TestApplyEmpty(t *testing.T) {
	named, err := Apply(nil, Options{Pattern: PatternWCAG})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(named) != 0 {
		t.Errorf("Apply(nil) returned %d samples, want 0", len(named))
	}
}

func tokenNames(samples []colour.Sample) []string {
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.TokenName
	}
	return names
}
