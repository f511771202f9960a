package meta

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/coregx/retrie/literal"
)

// Pattern is a finalized expression together with the literals it matches.
type Pattern struct {
	// Expr is the expression handed to regex engines.
	Expr string

	// Literals is the literal set Expr was built from.
	Literals *literal.Seq

	// Bounded reports whether Expr carries boundary assertions around the
	// literal alternation. Literal engines cannot honour them.
	Bounded bool
}

// Compile builds a Matcher for p.
//
// Steps:
//  1. Validate config
//  2. Short-circuit empty literal sets to a never-matching Matcher
//  3. Select strategy
//  4. Build the engine for that strategy
//
// Returns an error if:
//   - Configuration is invalid
//   - The chosen engine rejects the expression (a defect in the caller)
//   - UseAhoCorasick is forced for a pattern it cannot represent
//
// Example:
//
//	p := meta.Pattern{Expr: `\b(?:ab[cs]|foo)\b`, Literals: literal.FromStrings("abc", "abs", "foo"), Bounded: true}
//	m, err := meta.Compile(p, meta.DefaultConfig())
func Compile(p Pattern, config Config) (Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log := config.logger()

	strategy := SelectStrategy(p, config)
	if p.Literals.IsEmpty() {
		log.Debug("empty literal set, matcher never matches",
			zap.Stringer("strategy", strategy))
		return neverMatcher{expr: p.Expr, strategy: strategy}, nil
	}

	var (
		m   Matcher
		err error
	)
	switch strategy {
	case UseBacktrack:
		m, err = compileBacktrack(p.Expr, config.IgnoreCase)
	case UseRE2:
		m, err = compileRE2(p.Expr, config.IgnoreCase)
	case UseAhoCorasick:
		if !ahoCorasickSafe(p, config) {
			err = errors.New("pattern has boundaries or an empty literal")
			break
		}
		m, err = compileAhoCorasick(p.Expr, p.Literals)
	default:
		err = errors.Errorf("unexpected strategy %d", strategy)
	}
	if err != nil {
		return nil, &CompileError{Pattern: p.Expr, Strategy: strategy, Err: err}
	}

	log.Debug("compiled matcher",
		zap.Stringer("strategy", strategy),
		zap.Int("literals", p.Literals.Len()),
		zap.Int("expr_len", len(p.Expr)),
		zap.ByteString("common_prefix", p.Literals.LongestCommonPrefix()))
	return m, nil
}

// CompileError represents a failure to build a Matcher.
type CompileError struct {
	Pattern  string
	Strategy Strategy
	Err      error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return "retrie: compile " + e.Strategy.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
