// Package meta compiles finalized trie expressions with a host matching engine.
//
// A Pattern couples the expression (the trie fragment wrapped in boundary
// assertions) with the literal set it was built from. Compile selects a
// Strategy and returns a Matcher; callers never see which engine runs:
//   - regexp2 (backtracking, lookaround, Unicode \b)
//   - regexp (RE2 syntax, linear time)
//   - Aho-Corasick (literal engine bypass for large plain literal sets)
//
// An empty literal set compiles to a Matcher that never matches, regardless of
// the expression: an empty fragment would otherwise match the empty string.
package meta

import (
	"go.uber.org/zap"
)

// Config controls engine selection.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.IgnoreCase = true
//	m, err := meta.Compile(p, config)
type Config struct {
	// Strategy forces an engine. Default: UseAuto.
	Strategy Strategy

	// IgnoreCase enables case-insensitive matching.
	// Default: false
	IgnoreCase bool

	// AhoCorasickThreshold is the minimum number of literals for UseAuto to
	// pick the Aho-Corasick engine. Below it the backtracking engine is fast
	// enough and avoids building an automaton.
	// Default: 32
	AhoCorasickThreshold int

	// Logger receives debug events about compilation. Default: nop.
	Logger *zap.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:             UseAuto,
		AhoCorasickThreshold: 32,
		Logger:               zap.NewNop(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Strategy.Valid() {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy",
		}
	}
	if c.AhoCorasickThreshold < 0 {
		return &ConfigError{
			Field:   "AhoCorasickThreshold",
			Message: "must not be negative",
		}
	}
	if c.Strategy == UseAhoCorasick && c.IgnoreCase {
		return &ConfigError{
			Field:   "Strategy",
			Message: "UseAhoCorasick cannot ignore case",
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "retrie: invalid config: " + e.Field + ": " + e.Message
}
