package naming

import (
	"fmt"

	"github.com/jmylchreest/tokenise/internal/colour"
)

// materialLabels maps roles to Material Design colour roles.
var materialLabels = map[colour.Role]string{
	colour.RoleRed:    "error",
	colour.RoleOrange: "warning",
	colour.RoleYellow: "warning",
	colour.RoleGreen:  "success",
	colour.RoleCyan:   "secondary",
	colour.RoleBlue:   "primary",
	colour.RolePurple: "tertiary",
	colour.RolePink:   "secondary",
	colour.RoleGray:   "surface",
}

// antdLabels maps roles to Ant Design functional colours.
var antdLabels = map[colour.Role]string{
	colour.RoleRed:    "error",
	colour.RoleOrange: "warning",
	colour.RoleYellow: "warning",
	colour.RoleGreen:  "success",
	colour.RoleCyan:   "info",
	colour.RoleBlue:   "primary",
	colour.RolePurple: "primary",
	colour.RolePink:   "error",
	colour.RoleGray:   "neutral",
}

// wcagLabels maps roles to intent labels. Gray is split by lightness in wcagName.
var wcagLabels = map[colour.Role]string{
	colour.RoleRed:    "error",
	colour.RoleOrange: "warning",
	colour.RoleYellow: "warning",
	colour.RoleGreen:  "success",
	colour.RoleCyan:   "info",
	colour.RoleBlue:   "info",
	colour.RolePurple: "info",
	colour.RolePink:   "error",
}

// traits are the per-colour inputs every pattern draws from.
type traits struct {
	role      colour.Role
	shade     int
	level     int
	lightness float64
}

func traitsOf(s colour.Sample) traits {
	hsl := s.HSL()
	return traits{
		role:      colour.ClassifyHSL(hsl),
		shade:     colour.ShadeOf(hsl.L),
		level:     colour.LevelOf(hsl.L),
		lightness: hsl.L,
	}
}

// Apply returns a copy of samples, in the same order, with TokenName set
// according to opts. Repeated candidate names get a "-N" suffix in input
// order. The input slice is not modified.
func Apply(samples []colour.Sample, opts Options) ([]colour.Sample, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	reg := newRegistry()
	named := make([]colour.Sample, len(samples))
	for i, s := range samples {
		candidate := candidateName(traitsOf(s), opts)
		named[i] = s.WithTokenName(reg.claim(candidate))
	}
	return named, nil
}

// Name returns the uncollided candidate name for a single sample.
func Name(s colour.Sample, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	return candidateName(traitsOf(s), opts.withDefaults()), nil
}

// candidateName builds the raw name for one colour. opts must be validated.
func candidateName(t traits, opts Options) string {
	switch opts.Pattern {
	case PatternMaterial:
		label := materialLabels[t.role]
		if t.shade == 500 {
			return "color-" + label
		}
		return fmt.Sprintf("color-%s-%d", label, t.shade)
	case PatternTailwind:
		return fmt.Sprintf("%s-%d", t.role, t.shade)
	case PatternAntd:
		return fmt.Sprintf("%s-%d", antdLabels[t.role], t.level)
	case PatternWCAG:
		return "color-" + wcagName(t)
	case PatternCustom:
		return fmt.Sprintf("%s-%s-%d", opts.CustomPrefix, t.role, t.shade)
	}
	panic(fmt.Sprintf("naming: unvalidated pattern %q", opts.Pattern))
}

func wcagName(t traits) string {
	if t.role == colour.RoleGray {
		if t.lightness > 0.5 {
			return "neutral-light"
		}
		return "neutral-dark"
	}
	return wcagLabels[t.role]
}
