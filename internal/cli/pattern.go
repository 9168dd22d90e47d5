package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tokenise/internal/naming"
)

// patternValue is a pflag.Value that only accepts known naming patterns.
type patternValue naming.Pattern

func (p *patternValue) String() string {
	return string(*p)
}

func (p *patternValue) Set(s string) error {
	parsed, err := naming.ParsePattern(s)
	if err != nil {
		return err
	}
	*p = patternValue(parsed)
	return nil
}

func (p *patternValue) Type() string {
	return "pattern"
}

// Pattern returns the parsed pattern.
func (p *patternValue) Pattern() naming.Pattern {
	return naming.Pattern(*p)
}

func patternList() string {
	names := make([]string, 0, len(naming.ValidPatterns()))
	for _, p := range naming.ValidPatterns() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

var _ pflag.Value = (*patternValue)(nil)
