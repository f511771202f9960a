package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"

	"github.com/coregx/retrie/literal"
)

// ahoCorasickMatcher answers containment with an Aho-Corasick automaton over
// the literals.
//
// The automaton reports the first match whose end it reaches, which is not
// always the leftmost-longest span the expression selects ("bc" inside
// "abcd"). Spans are therefore found by the expression on the RE2 engine,
// which is exact here: the pattern is unbounded and case-sensitive.
type ahoCorasickMatcher struct {
	auto  *ahocorasick.Automaton
	spans *re2Matcher
}

func compileAhoCorasick(expr string, lits *literal.Seq) (*ahoCorasickMatcher, error) {
	ordered := lits.Clone()
	ordered.Dedup()

	builder := ahocorasick.NewBuilder()
	for i := 0; i < ordered.Len(); i++ {
		builder.AddPattern(ordered.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "aho-corasick")
	}
	spans, err := compileRE2(expr, false)
	if err != nil {
		return nil, err
	}
	return &ahoCorasickMatcher{auto: auto, spans: spans}, nil
}

func (m *ahoCorasickMatcher) MatchString(s string) bool {
	return m.auto.IsMatch([]byte(s))
}

func (m *ahoCorasickMatcher) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 || !m.MatchString(s) {
		return nil
	}
	return m.spans.FindAllStringIndex(s, n)
}

func (m *ahoCorasickMatcher) String() string     { return m.spans.expr }
func (m *ahoCorasickMatcher) Strategy() Strategy { return UseAhoCorasick }
