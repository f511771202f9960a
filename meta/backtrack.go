package meta

import (
	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"github.com/coregx/retrie/internal/conv"
)

// backtrackMatcher runs the expression on regexp2. regexp2 reports rune
// indices; they are converted to byte offsets before leaving this file.
type backtrackMatcher struct {
	re   *regexp2.Regexp
	expr string
}

func compileBacktrack(expr string, ignoreCase bool) (*backtrackMatcher, error) {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, errors.Wrap(err, "regexp2")
	}
	return &backtrackMatcher{re: re, expr: expr}, nil
}

// MatchString reports whether s contains a match.
// regexp2 only fails on match timeouts, which are never configured here, so
// an error is a defect and panics.
func (m *backtrackMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	if err != nil {
		panic(errors.Wrap(err, "retrie: regexp2 match"))
	}
	return ok
}

func (m *backtrackMatcher) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	var offsets []int
	if !conv.IsASCII(s) {
		offsets = conv.RuneOffsets(s)
	}

	var out [][]int
	match, err := m.re.FindStringMatch(s)
	for err == nil && match != nil {
		start, end := conv.ByteSpan(offsets, match.Index, match.Length)
		out = append(out, []int{start, end})
		if n > 0 && len(out) == n {
			break
		}
		match, err = m.re.FindNextMatch(match)
	}
	if err != nil {
		panic(errors.Wrap(err, "retrie: regexp2 find"))
	}
	return out
}

func (m *backtrackMatcher) String() string     { return m.expr }
func (m *backtrackMatcher) Strategy() Strategy { return UseBacktrack }
