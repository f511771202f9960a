package retrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/retrie/meta"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.MatchSubstrings)
	assert.Equal(t, `\b`, config.WordBoundary)
	assert.Equal(t, FlagIgnoreCase|FlagUnicode, config.Flags)
	assert.Equal(t, meta.UseAuto, config.Strategy)
	assert.NotNil(t, config.Logger)
	assert.NoError(t, config.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string // empty: valid
	}{
		{"unknown flags", func(c *Config) { c.Flags = 1 << 7 }, "Flags"},
		{"unknown strategy", func(c *Config) { c.Strategy = meta.Strategy(9) }, "Strategy"},
		{"negative threshold", func(c *Config) { c.AhoCorasickThreshold = -3 }, "AhoCorasickThreshold"},
		{"bad delimiter", func(c *Config) { c.WordBoundary = "(" }, "WordBoundary"},
		{"custom delimiter", func(c *Config) { c.WordBoundary = `[\s,]` }, ""},
		{"re2 unicode boundary", func(c *Config) { c.Strategy = meta.UseRE2 }, "Flags"},
		{"re2 ascii boundary", func(c *Config) {
			c.Strategy = meta.UseRE2
			c.Flags = FlagIgnoreCase
		}, ""},
		{"re2 custom delimiter", func(c *Config) {
			c.Strategy = meta.UseRE2
			c.Flags = FlagNone
			c.WordBoundary = " "
		}, "WordBoundary"},
		{"re2 substrings", func(c *Config) {
			c.Strategy = meta.UseRE2
			c.MatchSubstrings = true
		}, ""},
		{"aho-corasick ignoring case", func(c *Config) {
			c.Strategy = meta.UseAhoCorasick
			c.MatchSubstrings = true
		}, "Strategy"},
		{"aho-corasick word boundary", func(c *Config) {
			c.Strategy = meta.UseAhoCorasick
			c.Flags = FlagNone
		}, "WordBoundary"},
		{"aho-corasick custom delimiter", func(c *Config) {
			c.Strategy = meta.UseAhoCorasick
			c.Flags = FlagNone
			c.WordBoundary = " "
		}, "WordBoundary"},
		{"aho-corasick substrings", func(c *Config) {
			c.Strategy = meta.UseAhoCorasick
			c.Flags = FlagNone
			c.MatchSubstrings = true
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)

			// Constructors report the same error up front.
			_, err = NewBlacklist([]string{"abc"}, config)
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestZeroConfigLogger(t *testing.T) {
	// A hand-built Config without Logger must not panic.
	config := Config{WordBoundary: WordBoundary}
	bl, err := NewBlacklist([]string{"abc"}, config)
	require.NoError(t, err)
	assert.True(t, bl.IsBlacklisted("an abc"))
	assert.False(t, bl.IsBlacklisted("an ABC"))
}
