package meta

// Strategy names the host engine a pattern is compiled with.
//
// The meta package chooses between:
//   - UseBacktrack: regexp2, a backtracking engine with lookaround and
//     Unicode-aware \b and case folding
//   - UseRE2: the standard library regexp package (linear time, ASCII \b,
//     no lookaround)
//   - UseAhoCorasick: a multi-literal automaton, for large case-sensitive sets
//     searched as plain substrings
type Strategy int

const (
	// UseAuto lets SelectStrategy decide.
	UseAuto Strategy = iota

	// UseBacktrack compiles the expression with regexp2.
	// Selected for:
	//   - Custom delimiters (needs lookbehind/lookahead)
	//   - Case-insensitive matching
	//   - Any set below the Aho-Corasick threshold
	UseBacktrack

	// UseRE2 compiles the expression with the standard library.
	// Only used when requested explicitly: its \b is ASCII-only and it
	// cannot express custom delimiters.
	UseRE2

	// UseAhoCorasick bypasses the expression and searches the literals
	// directly. Selected for:
	//   - Substring matching (no boundary assertions)
	//   - Case-sensitive matching
	//   - At least Config.AhoCorasickThreshold literals, none empty
	//
	// Literals are added longest first so the leftmost-first automaton
	// reports the same spans as the trie expression.
	UseAhoCorasick
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseAuto:
		return "UseAuto"
	case UseBacktrack:
		return "UseBacktrack"
	case UseRE2:
		return "UseRE2"
	case UseAhoCorasick:
		return "UseAhoCorasick"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s >= UseAuto && s <= UseAhoCorasick
}

// SelectStrategy picks the engine for p under config.
//
// An explicit config.Strategy always wins. Otherwise Aho-Corasick is chosen
// when it provably finds the same spans as the expression: no boundaries, no
// case folding, no empty literal, and enough literals to pay for the
// automaton. Everything else uses the backtracking engine.
func SelectStrategy(p Pattern, config Config) Strategy {
	if config.Strategy != UseAuto {
		return config.Strategy
	}
	if ahoCorasickSafe(p, config) && p.Literals.Len() >= config.AhoCorasickThreshold {
		return UseAhoCorasick
	}
	return UseBacktrack
}

func ahoCorasickSafe(p Pattern, config Config) bool {
	return !p.Bounded && !config.IgnoreCase && !p.Literals.HasEmpty()
}
