package literal

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// ErrAmbiguousKeys is returned when two keys of a mapping become equal after
// case folding.
var ErrAmbiguousKeys = errors.New("ambiguous mapping: keys collide after case folding")

// Fold returns the full Unicode case folding of s.
//
// A new Caser is created per call because Casers keep state and must not be
// shared between goroutines.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// FoldMap maps literals to values, optionally ignoring case.
type FoldMap[V any] struct {
	m    map[string]V
	fold bool
}

// NewFoldMap copies src. When fold is true keys are stored case folded and two
// keys folding to the same string yield ErrAmbiguousKeys.
func NewFoldMap[V any](src map[string]V, fold bool) (*FoldMap[V], error) {
	m := make(map[string]V, len(src))
	if !fold {
		for k, v := range src {
			m[k] = v
		}
		return &FoldMap[V]{m: m}, nil
	}

	// Sorted so the reported collision does not depend on map order.
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	origin := make(map[string]string, len(src))
	for _, k := range keys {
		fk := Fold(k)
		if prev, ok := origin[fk]; ok {
			return nil, errors.Wrapf(ErrAmbiguousKeys, "%q and %q", prev, k)
		}
		origin[fk] = k
		m[fk] = src[k]
	}
	return &FoldMap[V]{m: m, fold: true}, nil
}

// Lookup returns the value stored for key, folding key first if the map
// ignores case.
func (f *FoldMap[V]) Lookup(key string) (V, bool) {
	if f.fold {
		key = Fold(key)
	}
	v, ok := f.m[key]
	return v, ok
}

// Len returns the number of entries.
func (f *FoldMap[V]) Len() int {
	return len(f.m)
}

// Folded reports whether lookups ignore case.
func (f *FoldMap[V]) Folded() bool {
	return f.fold
}
