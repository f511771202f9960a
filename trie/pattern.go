package trie

import (
	"sort"
	"strings"
)

// frame is the state of one node during serialization.
type frame struct {
	n    *node
	lead string // escaped characters leading to n, empty for the root

	edges   []edge
	next    int
	deeper  []string // char + subpattern of each branching child
	current []string // escaped characters of bare-leaf children
}

// Pattern serializes the tree into a non-capturing regular expression fragment.
//
// The output depends only on the set of literals, never on insertion order, and
// an empty tree yields the empty string. Alternatives are ordered by their
// fragment text. Traversal uses an explicit stack, so literal length is bounded
// by memory rather than by goroutine stack depth.
//
// Example:
//
//	trie.New("abc", "abs", "foo").Pattern()  // (?:ab[cs]|foo)
//	trie.New("ab", "abx", "aby").Pattern()   // ab[xy]?
//	trie.New("fo", "foe", "foo").Pattern()   // fo[eo]?
func (t *Trie) Pattern() string {
	stack := []*frame{{n: t.root, edges: t.root.edges()}}
	for {
		top := stack[len(stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if e.node.size() == 0 {
				top.current = append(top.current, escapeRune(e.char))
				continue
			}
			stack = append(stack, descend(e))
			continue
		}

		result := top.assemble()
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return result
		}
		parent := stack[len(stack)-1]
		parent.deeper = append(parent.deeper, top.lead+result)
	}
}

// descend opens a frame for the branching child e. Runs of non-terminal nodes
// with a single branching child contribute nothing but their character, so
// they are folded into the lead instead of getting frames of their own.
func descend(e edge) *frame {
	var lead strings.Builder
	lead.WriteString(escapeRune(e.char))
	n := e.node
	for !n.terminal && n.size() == 1 {
		only := n.edges()[0]
		if only.node.size() == 0 {
			break
		}
		lead.WriteString(escapeRune(only.char))
		n = only.node
	}
	return &frame{n: n, lead: lead.String(), edges: n.edges()}
}

// assemble joins the contributions of a fully visited node.
func (f *frame) assemble() string {
	if len(f.edges) == 0 {
		return ""
	}

	alts := f.deeper
	switch len(f.current) {
	case 0:
	case 1:
		alts = append(alts, f.current[0])
	default:
		// current is already in code point order: edges are sorted.
		alts = append(alts, "["+strings.Join(f.current, "")+"]")
	}

	var result string
	// A lone class or character is a single atom; so is a group.
	atomic := len(f.deeper) == 0
	if len(alts) == 1 {
		result = alts[0]
	} else {
		sort.Strings(alts)
		result = "(?:" + strings.Join(alts, "|") + ")"
		atomic = true
	}

	if !f.n.terminal {
		return result
	}
	if atomic {
		return result + "?"
	}
	return "(?:" + result + ")?"
}
