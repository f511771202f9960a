package retrie

import (
	"go.uber.org/zap"

	"github.com/coregx/retrie/meta"
	"github.com/coregx/retrie/trie"
)

// Flags modify how the compiled pattern matches.
type Flags uint

const (
	// FlagIgnoreCase matches literals case-insensitively. The tree itself
	// stays case-sensitive; folding is done by the engine.
	FlagIgnoreCase Flags = 1 << iota

	// FlagUnicode requests Unicode-aware word boundaries. The backtracking
	// engine is always Unicode-aware; with UseRE2, whose \b is ASCII-only,
	// this flag is rejected together with the default boundary.
	FlagUnicode

	// FlagNone disables every flag: case-sensitive matching.
	FlagNone Flags = 0

	// DefaultFlags is case-insensitive, Unicode-aware matching.
	DefaultFlags = FlagIgnoreCase | FlagUnicode

	allFlags = FlagIgnoreCase | FlagUnicode
)

// WordBoundary is the default boundary: a word edge.
const WordBoundary = meta.WordBoundary

// ConfigError represents an invalid configuration parameter.
type ConfigError = meta.ConfigError

// Config controls how literals are anchored, flagged and matched.
//
// Example:
//
//	config := retrie.DefaultConfig()
//	config.WordBoundary = retrie.QuoteBoundary(" ")
//	bl, err := retrie.NewBlacklist([]string{"abc"}, config)
type Config struct {
	// MatchSubstrings lets literals match anywhere, ignoring WordBoundary.
	// Default: false
	MatchSubstrings bool

	// WordBoundary is the pattern token literals must be flanked by.
	// `\b` is emitted as is; any other token becomes a lookbehind and a
	// lookahead assertion. Empty disables anchoring.
	// Default: `\b`
	WordBoundary string

	// Flags are forwarded to the matching engine.
	// Default: DefaultFlags
	Flags Flags

	// Strategy forces a matching engine. Default: meta.UseAuto.
	Strategy meta.Strategy

	// AhoCorasickThreshold is the literal count from which meta.UseAuto
	// searches plain case-sensitive substrings with Aho-Corasick.
	// Default: 32
	AhoCorasickThreshold int

	// Logger receives debug events. Default: nop.
	Logger *zap.Logger
}

// DefaultConfig returns whole-word, case-insensitive matching.
func DefaultConfig() Config {
	mc := meta.DefaultConfig()
	return Config{
		WordBoundary:         WordBoundary,
		Flags:                DefaultFlags,
		Strategy:             mc.Strategy,
		AhoCorasickThreshold: mc.AhoCorasickThreshold,
		Logger:               mc.Logger,
	}
}

// QuoteBoundary turns a literal delimiter into a boundary token.
func QuoteBoundary(delim string) string {
	return trie.Escape(delim)
}

// Validate checks if the configuration is valid.
//
// Rejected combinations:
//   - unknown flag bits or strategy, negative AhoCorasickThreshold
//   - a custom boundary that does not parse, or with UseRE2/UseAhoCorasick
//   - the `\b` boundary with UseAhoCorasick, or with UseRE2 and FlagUnicode
//   - FlagIgnoreCase with UseAhoCorasick
func (c Config) Validate() error {
	if c.Flags&^allFlags != 0 {
		return &ConfigError{Field: "Flags", Message: "unknown flag bits"}
	}
	if err := c.metaConfig().Validate(); err != nil {
		return err
	}

	b := c.boundary()
	switch {
	case b == "":
	case b == WordBoundary:
		if c.Strategy == meta.UseAhoCorasick {
			return &ConfigError{Field: "WordBoundary", Message: "UseAhoCorasick cannot match word boundaries"}
		}
		if c.Strategy == meta.UseRE2 && c.Flags&FlagUnicode != 0 {
			return &ConfigError{Field: "Flags", Message: "UseRE2 word boundaries are ASCII-only; clear FlagUnicode"}
		}
	default:
		if c.Strategy == meta.UseRE2 || c.Strategy == meta.UseAhoCorasick {
			return &ConfigError{Field: "WordBoundary", Message: c.Strategy.String() + " cannot express custom delimiters"}
		}
		if err := meta.CheckBoundary(b); err != nil {
			return &ConfigError{Field: "WordBoundary", Message: err.Error()}
		}
	}
	return nil
}

// boundary returns the token actually used for anchoring.
func (c Config) boundary() string {
	if c.MatchSubstrings {
		return ""
	}
	return c.WordBoundary
}

func (c Config) metaConfig() meta.Config {
	return meta.Config{
		Strategy:             c.Strategy,
		IgnoreCase:           c.Flags&FlagIgnoreCase != 0,
		AhoCorasickThreshold: c.AhoCorasickThreshold,
		Logger:               c.logger(),
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
