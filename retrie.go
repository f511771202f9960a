// Package retrie compiles sets of literal strings into compact regular
// expressions and uses them to check, filter and rewrite text.
//
// A plain union of N literals grows linearly and makes the engine try every
// alternative at every position. retrie inserts the literals into a prefix
// tree first and serializes the tree, so shared prefixes are matched once and
// single-character alternatives collapse into classes:
//
//	abc|abs|foo  →  (?:ab[cs]|foo)
//
// The expression matches the same strings as the union.
//
// Three helpers cover the common uses:
//
//	bl, _ := retrie.NewBlacklist([]string{"abc", "foo", "abs"}, retrie.DefaultConfig())
//	bl.IsBlacklisted("a foobar")                    // false: foo is not a whole word
//	bl.FilterSlice([]string{"good", "abc", "foobar"}) // [good foobar]
//	bl.CleanseText("good abc foobar")               // "good  foobar"
//
//	wl, _ := retrie.NewWhitelist([]string{"abc", "foo", "abs"}, retrie.DefaultConfig())
//	wl.CleanseText("bad abc foobar")                // "abc"
//
//	r, _ := retrie.NewReplacer(map[string]string{"abc": "new1", "foo": "new2", "abs": "new3"}, retrie.DefaultConfig())
//	r.Replace("ABS ...foo... foobar")               // "new3 ...new2... foobar"
//
// Matching is delegated to a host engine chosen by package meta: regexp2 by
// default (lookaround and Unicode-aware \b and case folding), the standard
// library on request, or Aho-Corasick for large case-sensitive substring sets.
//
// Configuration errors are reported by the constructors. An empty literal set
// is valid and never matches.
package retrie

import (
	"github.com/coregx/retrie/literal"
	"github.com/coregx/retrie/meta"
	"github.com/coregx/retrie/trie"
)

// Retrie couples a prefix tree with the configuration used to finalize and
// compile its pattern. It does not cache the compiled matcher; Checklist does.
type Retrie struct {
	trie   *trie.Trie
	config Config
}

// New creates an empty Retrie. Returns a *ConfigError if config is invalid.
func New(config Config) (*Retrie, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Retrie{trie: trie.New(), config: config}, nil
}

// Trie returns the underlying prefix tree.
func (r *Retrie) Trie() *trie.Trie {
	return r.trie
}

// Config returns the configuration r was created with.
func (r *Retrie) Config() Config {
	return r.config
}

// Add inserts literals and returns r for chaining.
func (r *Retrie) Add(literals ...string) *Retrie {
	r.trie.Add(literals...)
	return r
}

// Pattern returns the unanchored, unflagged fragment of the current tree.
func (r *Retrie) Pattern() string {
	return r.trie.Pattern()
}

// Expression returns the fragment wrapped in the configured boundary, as
// handed to the engine.
func (r *Retrie) Expression() string {
	return wrap(r.trie.Pattern(), r.config.boundary())
}

// Compile builds a matcher for the current tree.
func (r *Retrie) Compile() (meta.Matcher, error) {
	return r.compile(r.config)
}

// CompileWith builds a matcher using boundary and flags instead of the
// configured ones. MatchSubstrings is ignored: pass an empty boundary instead.
//
// Example:
//
//	m, err := r.CompileWith("", retrie.FlagNone) // case-sensitive substrings
func (r *Retrie) CompileWith(boundary string, flags Flags) (meta.Matcher, error) {
	config := r.config
	config.MatchSubstrings = false
	config.WordBoundary = boundary
	config.Flags = flags
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return r.compile(config)
}

func (r *Retrie) compile(config Config) (meta.Matcher, error) {
	b := config.boundary()
	p := meta.Pattern{
		Expr:     wrap(r.trie.Pattern(), b),
		Literals: literal.FromStrings(r.trie.Literals()...),
		Bounded:  b != "",
	}
	return meta.Compile(p, config.metaConfig())
}

// wrap anchors fragment with boundary. `\b` is an assertion already; other
// tokens would consume the delimiter, so they go into lookaround.
func wrap(fragment, boundary string) string {
	switch boundary {
	case "":
		return fragment
	case WordBoundary:
		return boundary + fragment + boundary
	default:
		return "(?<=" + boundary + ")" + fragment + "(?=" + boundary + ")"
	}
}
