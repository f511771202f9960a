package retrie

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/coregx/retrie/literal"
	"github.com/coregx/retrie/meta"
)

// ErrAmbiguousMapping is returned when FlagIgnoreCase is set and two keys of a
// replacement mapping differ only in case.
var ErrAmbiguousMapping = literal.ErrAmbiguousKeys

// Replacer substitutes every occurrence of its keys with the mapped values in a
// single pass.
//
// With FlagIgnoreCase the match is looked up by its case folding, so "ABS"
// is replaced by the value of "abs". A match with no mapped value is copied
// through unchanged.
type Replacer struct {
	*Checklist

	mu      sync.RWMutex
	source  map[string]string
	mapping *literal.FoldMap[string]
}

// NewReplacer creates a Replacer for mapping. Returns a *ConfigError for an
// invalid config and an error wrapping ErrAmbiguousMapping for keys that
// collide under case folding.
func NewReplacer(mapping map[string]string, config Config) (*Replacer, error) {
	c, err := NewChecklist(slices.Collect(maps.Keys(mapping)), config)
	if err != nil {
		return nil, err
	}
	fm, err := literal.NewFoldMap(mapping, config.Flags&FlagIgnoreCase != 0)
	if err != nil {
		return nil, err
	}
	return &Replacer{Checklist: c, source: maps.Clone(mapping), mapping: fm}, nil
}

// Add merges more replacements into r. Existing keys get the new values.
func (r *Replacer) Add(mapping map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := maps.Clone(r.source)
	if merged == nil {
		merged = make(map[string]string, len(mapping))
	}
	maps.Copy(merged, mapping)
	fm, err := literal.NewFoldMap(merged, r.mapping.Folded())
	if err != nil {
		return err
	}
	r.source, r.mapping = merged, fm
	r.Checklist.Add(slices.Collect(maps.Keys(mapping))...)
	return nil
}

// Replace substitutes every match in text.
func (r *Replacer) Replace(text string) string {
	return r.ReplaceN(text, -1)
}

// ReplaceN substitutes at most n matches in text, all of them if n < 0.
// Replacement values are not searched again.
func (r *Replacer) ReplaceN(text string, n int) string {
	m, mapping := r.snapshot()
	return replaceMatches(m, text, n, func(match string) string {
		if v, ok := mapping.Lookup(match); ok {
			return v
		}
		r.Config().logger().Debug("no replacement for match", zap.String("match", match))
		return match
	})
}

// snapshot returns a matcher and the mapping for the same set of keys.
func (r *Replacer) snapshot() (meta.Matcher, *literal.FoldMap[string]) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Compiled(), r.mapping
}
