package retrie

import (
	"iter"
	"slices"
	"strings"
)

// Whitelist keeps only text matching its literals.
type Whitelist struct {
	*Checklist
}

// NewWhitelist creates a Whitelist for keys.
func NewWhitelist(keys []string, config Config) (*Whitelist, error) {
	c, err := NewChecklist(keys, config)
	if err != nil {
		return nil, err
	}
	return &Whitelist{Checklist: c}, nil
}

// IsWhitelisted reports whether any key matches in text.
func (w *Whitelist) IsWhitelisted(text string) bool {
	return w.IsListed(text)
}

// Filter yields, in order, the items in which a key matches.
func (w *Whitelist) Filter(items iter.Seq[string]) iter.Seq[string] {
	return filterSeq(items, w.IsListed)
}

// FilterSlice returns the items in which a key matches.
func (w *Whitelist) FilterSlice(items []string) []string {
	return slices.Collect(w.Filter(slices.Values(items)))
}

// CleanseText returns the matches in text concatenated, without separators.
func (w *Whitelist) CleanseText(text string) string {
	var sb strings.Builder
	for _, loc := range w.Compiled().FindAllStringIndex(text, -1) {
		sb.WriteString(text[loc[0]:loc[1]])
	}
	return sb.String()
}
