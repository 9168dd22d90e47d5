// Package config holds tokenise settings resolved from defaults and the
// environment. Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/tokenise/internal/export"
	"github.com/jmylchreest/tokenise/internal/naming"
)

// Environment variables read by WithEnv.
const (
	EnvPattern    = "TOKENISE_PATTERN"
	EnvPrefix     = "TOKENISE_PREFIX"
	EnvCollection = "TOKENISE_COLLECTION"
	EnvCacheDir   = "TOKENISE_CACHE_DIR"
	EnvStore      = "TOKENISE_STORE"
	EnvFigmaToken = "FIGMA_TOKEN"
)

// Config is the resolved tokenise configuration.
type Config struct {
	// Pattern is the naming pattern.
	Pattern naming.Pattern

	// CustomPrefix is the prefix for the custom pattern.
	CustomPrefix string

	// Collection is the variable collection colours are exported into.
	Collection string

	// Store selects the variable store: "memory", "file:<path>" or "plugin:<path>".
	Store string

	// FigmaToken authenticates Figma REST requests.
	FigmaToken string

	// CacheDir holds cached remote documents. Empty means the user cache dir.
	CacheDir string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pattern:    naming.DefaultPattern,
		Collection: export.DefaultCollection,
		Store:      "memory",
	}
}

// WithEnv returns a copy of c overridden by any set environment variables.
// An invalid TOKENISE_PATTERN is kept as given and reported by Validate.
func (c Config) WithEnv() Config {
	if v, ok := lookup(EnvPattern); ok {
		if p, err := naming.ParsePattern(v); err == nil {
			c.Pattern = p
		} else {
			c.Pattern = naming.Pattern(v)
		}
	}
	if v, ok := lookup(EnvPrefix); ok {
		c.CustomPrefix = v
	}
	if v, ok := lookup(EnvCollection); ok {
		c.Collection = v
	}
	if v, ok := lookup(EnvStore); ok {
		c.Store = v
	}
	if v, ok := lookup(EnvCacheDir); ok {
		c.CacheDir = v
	}
	if v, ok := lookup(EnvFigmaToken); ok {
		c.FigmaToken = v
	}
	return c
}

// lookup returns a non-blank environment variable.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// NamingOptions returns the naming options for c.
func (c Config) NamingOptions() naming.Options {
	return naming.Options{Pattern: c.Pattern, CustomPrefix: c.CustomPrefix}
}

// StoreKind splits Store into its kind and argument.
func (c Config) StoreKind() (kind, arg string) {
	kind, arg, _ = strings.Cut(c.Store, ":")
	return kind, arg
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.NamingOptions().Validate(); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	if strings.TrimSpace(c.Collection) == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	switch kind, arg := c.StoreKind(); kind {
	case "memory":
	case "file", "plugin":
		if arg == "" {
			return fmt.Errorf("store %q needs a path (%s:<path>)", kind, kind)
		}
	default:
		return fmt.Errorf("unknown store %q (valid: memory, file:<path>, plugin:<path>)", c.Store)
	}

	return nil
}
