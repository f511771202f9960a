package meta

import (
	"regexp"

	"github.com/pkg/errors"
)

// re2Matcher runs the expression on the standard library engine.
type re2Matcher struct {
	re   *regexp.Regexp
	expr string
}

func compileRE2(expr string, ignoreCase bool) (*re2Matcher, error) {
	src := expr
	if ignoreCase {
		src = "(?i)" + expr
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, errors.Wrap(err, "regexp")
	}
	return &re2Matcher{re: re, expr: expr}, nil
}

func (m *re2Matcher) MatchString(s string) bool {
	return m.re.MatchString(s)
}

func (m *re2Matcher) FindAllStringIndex(s string, n int) [][]int {
	return m.re.FindAllStringIndex(s, n)
}

func (m *re2Matcher) String() string     { return m.expr }
func (m *re2Matcher) Strategy() Strategy { return UseRE2 }
