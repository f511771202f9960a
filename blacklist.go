package retrie

import (
	"iter"
	"slices"
)

// Blacklist drops or strips text matching any of its literals.
type Blacklist struct {
	*Checklist
}

// NewBlacklist creates a Blacklist for keys.
func NewBlacklist(keys []string, config Config) (*Blacklist, error) {
	c, err := NewChecklist(keys, config)
	if err != nil {
		return nil, err
	}
	return &Blacklist{Checklist: c}, nil
}

// IsBlacklisted reports whether any key matches in text.
func (b *Blacklist) IsBlacklisted(text string) bool {
	return b.IsListed(text)
}

// Filter yields, in order, the items in which no key matches.
func (b *Blacklist) Filter(items iter.Seq[string]) iter.Seq[string] {
	return filterSeq(items, b.NotListed)
}

// FilterSlice returns the items in which no key matches.
func (b *Blacklist) FilterSlice(items []string) []string {
	return slices.Collect(b.Filter(slices.Values(items)))
}

// CleanseText removes every match from text. Surrounding separators are left
// as they are.
func (b *Blacklist) CleanseText(text string) string {
	return replaceMatches(b.Compiled(), text, -1, func(string) string { return "" })
}
