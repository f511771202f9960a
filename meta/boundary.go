package meta

import (
	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// WordBoundary is the default boundary token, a word edge assertion.
const WordBoundary = `\b`

// CheckBoundary reports whether token can be used as a custom delimiter in
// lookbehind and lookahead assertions. Only the backtracking engine supports
// lookaround, so it is the one asked.
func CheckBoundary(token string) error {
	if token == "" || token == WordBoundary {
		return nil
	}
	if _, err := regexp2.Compile("(?<="+token+")(?="+token+")", regexp2.None); err != nil {
		return errors.Wrapf(err, "boundary %q", token)
	}
	return nil
}
