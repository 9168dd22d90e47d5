package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tokenise/internal/naming"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if c.Pattern != naming.PatternMaterial || c.Collection != "Color Tokens" || c.Store != "memory" {
		t.Errorf("Default() = %+v", c)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv(EnvPattern, " Tailwind ")
	t.Setenv(EnvPrefix, "brand")
	t.Setenv(EnvCollection, "Brand")
	t.Setenv(EnvStore, "file:/tmp/vars.json")
	t.Setenv(EnvCacheDir, "/tmp/cache")
	t.Setenv(EnvFigmaToken, "figd_secret")

	want := Config{
		Pattern:      naming.PatternTailwind,
		CustomPrefix: "brand",
		Collection:   "Brand",
		Store:        "file:/tmp/vars.json",
		FigmaToken:   "figd_secret",
		CacheDir:     "/tmp/cache",
	}
	if diff := cmp.Diff(want, Default().WithEnv()); diff != "" {
		t.Errorf("WithEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithEnvBlankIgnored(t *testing.T) {
	t.Setenv(EnvCollection, "   ")
	if got := Default().WithEnv().Collection; got != "Color Tokens" {
		t.Errorf("Collection = %q, want default", got)
	}
}

func TestWithEnvInvalidPattern(t *testing.T) {
	t.Setenv(EnvPattern, "bootstrap")
	err := Default().WithEnv().Validate()
	if !errors.Is(err, naming.ErrUnknownPattern) {
		t.Errorf("Validate() error = %v, want ErrUnknownPattern", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		contains string
	}{
		{name: "file store", modify: func(c *Config) { c.Store = "file:vars.json" }},
		{name: "plugin store", modify: func(c *Config) { c.Store = "plugin:/usr/bin/tokenise-store-file" }},
		{name: "empty collection", modify: func(c *Config) { c.Collection = " " }, contains: "collection"},
		{name: "file without path", modify: func(c *Config) { c.Store = "file:" }, contains: "needs a path"},
		{name: "unknown store", modify: func(c *Config) { c.Store = "redis:6379" }, contains: "unknown store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			err := c.Validate()
			if tt.contains == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.contains)
			}
		})
	}
}
