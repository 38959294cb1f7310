package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfig_WritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	// A second call must not clobber user edits.
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://example.com\n  page_size: 10\n"), 0o644))
	again, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	require.Equal(t, path, again)

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.API.BaseURL)
	require.Equal(t, 10, cfg.API.PageSize)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Default()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "" }},
		{name: "relative base url", mutate: func(c *Config) { c.API.BaseURL = "api.linkedin.com/v2" }},
		{name: "zero page size", mutate: func(c *Config) { c.API.PageSize = 0 }},
		{name: "zero max pages", mutate: func(c *Config) { c.API.MaxPages = 0 }},
		{name: "zero timeout", mutate: func(c *Config) { c.API.TimeoutSeconds = 0 }},
		{name: "zero rate", mutate: func(c *Config) { c.API.RequestsPerSec = 0 }},
		{name: "zero burst", mutate: func(c *Config) { c.API.Burst = 0 }},
		{name: "zero attempts", mutate: func(c *Config) { c.Retry.Attempts = 0 }},
		{name: "negative base delay", mutate: func(c *Config) { c.Retry.BaseDelayMS = -1 }},
		{name: "no rules", mutate: func(c *Config) { c.Filters.TitleRules = nil }},
		{name: "rule without keywords", mutate: func(c *Config) {
			c.Filters.TitleRules = []Rule{{Tag: "empty", Any: []string{" "}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.Error(t, Validate(cfg))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
