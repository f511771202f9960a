package meta

// Matcher is a compiled pattern. Implementations are safe for concurrent use.
//
// Offsets are byte offsets into the searched string, whatever the engine
// counts internally.
type Matcher interface {
	// MatchString reports whether s contains a match.
	MatchString(s string) bool

	// FindAllStringIndex returns the successive non-overlapping matches in
	// s as [start, end) pairs. If n >= 0 at most n matches are returned.
	FindAllStringIndex(s string, n int) [][]int

	// String returns the expression the matcher was compiled from.
	String() string

	// Strategy returns the engine in use.
	Strategy() Strategy
}

// neverMatcher stands in for an empty literal set.
type neverMatcher struct {
	expr     string
	strategy Strategy
}

func (neverMatcher) MatchString(string) bool                { return false }
func (neverMatcher) FindAllStringIndex(string, int) [][]int { return nil }
func (m neverMatcher) String() string                       { return m.expr }
func (m neverMatcher) Strategy() Strategy                   { return m.strategy }
