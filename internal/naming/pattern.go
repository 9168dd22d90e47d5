// Package naming assigns design-token names to colour samples using one of
// several naming conventions.
package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPattern is returned for a naming pattern that is not recognised.
var ErrUnknownPattern = errors.New("unknown naming pattern")

// Pattern selects a naming convention.
type Pattern string

const (
	// PatternMaterial names colours after Material Design semantic roles.
	PatternMaterial Pattern = "material"

	// PatternTailwind names colours <role>-<shade>.
	PatternTailwind Pattern = "tailwind"

	// PatternAntd names colours after Ant Design semantic roles with a 1-10 level.
	PatternAntd Pattern = "antd"

	// PatternWCAG names colours by accessibility-oriented intent.
	PatternWCAG Pattern = "wcag"

	// PatternCustom names colours <prefix>-<role>-<shade>.
	PatternCustom Pattern = "custom"
)

// DefaultPattern is used when no pattern is given.
const DefaultPattern = PatternMaterial

// DefaultCustomPrefix replaces an empty custom prefix.
const DefaultCustomPrefix = "color"

// ValidPatterns returns every supported pattern.
func ValidPatterns() []Pattern {
	return []Pattern{PatternMaterial, PatternTailwind, PatternAntd, PatternWCAG, PatternCustom}
}

// Valid reports whether p is a supported pattern.
func (p Pattern) Valid() bool {
	for _, v := range ValidPatterns() {
		if p == v {
			return true
		}
	}
	return false
}

// String returns the pattern name.
func (p Pattern) String() string {
	return string(p)
}

// ParsePattern converts a pattern name, case-insensitively. An empty name
// yields DefaultPattern.
func ParsePattern(name string) (Pattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultPattern, nil
	}
	p := Pattern(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPattern, name, patternList())
	}
	return p, nil
}

func patternList() string {
	names := make([]string, 0, len(ValidPatterns()))
	for _, p := range ValidPatterns() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Options configures a naming pass.
type Options struct {
	// Pattern selects the naming convention. Empty means DefaultPattern.
	Pattern Pattern

	// CustomPrefix is only used by PatternCustom. Blank means DefaultCustomPrefix.
	CustomPrefix string
}

// Validate checks that the options name a supported pattern.
func (o Options) Validate() error {
	p := o.Pattern
	if p == "" {
		p = DefaultPattern
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPattern, string(o.Pattern), patternList())
	}
	return nil
}

// withDefaults fills in the default pattern and custom prefix.
func (o Options) withDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	o.CustomPrefix = strings.TrimSpace(o.CustomPrefix)
	if o.CustomPrefix == "" {
		o.CustomPrefix = DefaultCustomPrefix
	}
	return o
}
