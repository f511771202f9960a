package retrie

import (
	"iter"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/coregx/retrie/meta"
)

// Checklist tests text against a set of literals.
//
// The matcher is compiled on first use and kept until the literal set changes.
// A Checklist is safe for concurrent use, including Add.
type Checklist struct {
	mu       sync.Mutex
	retrie   *Retrie
	compiled meta.Matcher
}

// NewChecklist creates a Checklist for keys. Returns a *ConfigError if config
// is invalid; an empty keys slice is valid and never matches.
func NewChecklist(keys []string, config Config) (*Checklist, error) {
	r, err := New(config)
	if err != nil {
		return nil, err
	}
	r.Add(keys...)
	return &Checklist{retrie: r}, nil
}

// Compiled returns the memoized matcher, compiling it if needed.
//
// The expression is valid by construction and the configuration was validated
// up front, so a compile failure is a defect and panics.
func (c *Checklist) Compiled() meta.Matcher {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.compiled != nil {
		return c.compiled
	}

	m, err := c.retrie.Compile()
	if err != nil {
		panic(errors.Wrap(err, "retrie: internal error"))
	}
	c.retrie.config.logger().Debug("compiled checklist",
		zap.Int("literals", c.retrie.trie.Len()),
		zap.Stringer("strategy", m.Strategy()),
		zap.String("expr", m.String()))
	c.compiled = m
	return m
}

// Add inserts more keys and drops the memoized matcher.
func (c *Checklist) Add(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retrie.Add(keys...)
	c.compiled = nil
}

// Pattern returns the unanchored fragment for the current keys.
func (c *Checklist) Pattern() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retrie.Pattern()
}

// Len returns the number of distinct keys.
func (c *Checklist) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retrie.trie.Len()
}

// Config returns the configuration the Checklist was created with.
func (c *Checklist) Config() Config {
	return c.retrie.config
}

// IsListed reports whether any key matches in text.
func (c *Checklist) IsListed(text string) bool {
	return c.Compiled().MatchString(text)
}

// NotListed reports whether no key matches in text.
func (c *Checklist) NotListed(text string) bool {
	return !c.IsListed(text)
}

// filterSeq yields the items of seq for which keep returns true. It is as
// restartable as seq.
func filterSeq(seq iter.Seq[string], keep func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range seq {
			if keep(s) && !yield(s) {
				return
			}
		}
	}
}

// replaceMatches rewrites at most n matches of m in text (all if n < 0) in a
// single left-to-right pass. Replacement output is never searched again.
func replaceMatches(m meta.Matcher, text string, n int, repl func(string) string) string {
	locs := m.FindAllStringIndex(text, n)
	if len(locs) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, loc := range locs {
		sb.WriteString(text[last:loc[0]])
		sb.WriteString(repl(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}
