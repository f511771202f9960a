// Package literal provides the literal sets handed to matching engines.
//
// A Seq is an ordered set of literal byte sequences. SortByPriority puts the
// longest literal first, the order in which the trie pattern prefers
// alternatives that start at the same position.
//
// FoldMap provides case-insensitive lookup of replacement values keyed by
// literal.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a literal byte sequence to be matched as a whole.
type Literal struct {
	Bytes []byte
}

// NewLiteral creates a Literal from b. b is not copied.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation: literal{bytes}.
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq is an ordered sequence of literals.
//
// Example:
//
//	seq := literal.FromStrings("abs", "absolute", "foo")
//	seq.SortByPriority()
//	fmt.Println(seq.Get(0)) // literal{absolute}
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// FromStrings creates a sequence holding one literal per string.
func FromStrings(ss ...string) *Seq {
	lits := make([]Literal, len(ss))
	for i, s := range ss {
		lits[i] = NewLiteral([]byte(s))
	}
	return NewSeq(lits...)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// HasEmpty reports whether the sequence contains the empty literal.
// Multi-literal searchers cannot represent it.
func (s *Seq) HasEmpty() bool {
	if s == nil {
		return false
	}
	for _, lit := range s.literals {
		if len(lit.Bytes) == 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		cloned[i] = Literal{Bytes: b}
	}
	return &Seq{literals: cloned}
}

// Dedup sorts the sequence bytewise and removes duplicate literals.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return bytes.Compare(s.literals[i].Bytes, s.literals[j].Bytes) < 0
	})

	kept := s.literals[:1]
	for _, lit := range s.literals[1:] {
		if !bytes.Equal(lit.Bytes, kept[len(kept)-1].Bytes) {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}

// SortByPriority orders the sequence longest first, breaking ties bytewise.
//
// When a literal is a prefix of another, the longer one comes first, so a
// leftmost-first searcher prefers it.
func (s *Seq) SortByPriority() {
	if s.Len() < 2 {
		return
	}
	sort.SliceStable(s.literals, func(i, j int) bool {
		a, b := s.literals[i].Bytes, s.literals[j].Bytes
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return bytes.Compare(a, b) < 0
	})
}

// LongestCommonPrefix returns the longest common prefix of all literals.
// Returns an empty slice for an empty sequence.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.literals[0].Bytes
	for i := 1; i < len(s.literals); i++ {
		prefix = commonPrefix(prefix, s.literals[i].Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}

	result := make([]byte, len(prefix))
	copy(result, prefix)
	return result
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:minLen]
}
