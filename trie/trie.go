// Package trie builds a prefix tree of literal strings and serializes it into a
// compact regular expression fragment.
//
// The fragment matches exactly the set of inserted literals, but shares common
// prefixes and merges single-character alternatives into character classes, so
// it is both shorter and faster to evaluate than a plain union:
//
//	t := trie.New("abc", "foo", "abs")
//	fmt.Println(t.Pattern()) // (?:ab[cs]|foo)
//
//	t.Add("absolute")
//	fmt.Println(t.Pattern()) // (?:ab(?:c|s(?:olute)?)|foo)
//
// The fragment is not anchored and carries no flags; wrapping it with
// boundaries and compiling it is left to the caller (see package retrie).
//
// A Trie is not safe for concurrent mutation. Pattern, Literals, Contains and
// Equal only read the tree and may run concurrently with each other.
package trie

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// node is one character position shared by every literal with the same prefix.
// children is nil for leaves and ordered by code point otherwise.
type node struct {
	children *treemap.Map
	terminal bool
}

func (n *node) size() int {
	if n.children == nil {
		return 0
	}
	return n.children.Size()
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	v, ok := n.children.Get(r)
	if !ok {
		return nil
	}
	return v.(*node)
}

func (n *node) childOrNew(r rune) *node {
	if c := n.child(r); c != nil {
		return c
	}
	if n.children == nil {
		n.children = treemap.NewWith(utils.RuneComparator)
	}
	c := &node{}
	n.children.Put(r, c)
	return c
}

// edges returns the children of n in lexicographic order.
func (n *node) edges() []edge {
	if n.children == nil {
		return nil
	}
	out := make([]edge, 0, n.children.Size())
	it := n.children.Iterator()
	for it.Next() {
		out = append(out, edge{char: it.Key().(rune), node: it.Value().(*node)})
	}
	return out
}

type edge struct {
	char rune
	node *node
}

// Trie accumulates literal strings. The zero value is not usable; call New.
type Trie struct {
	root  *node
	count int
}

// New creates a Trie holding the given literals.
func New(literals ...string) *Trie {
	t := &Trie{root: &node{}}
	return t.Add(literals...)
}

// Add inserts literals into the tree and returns t for chaining.
//
// Inserting a literal that is already present is a no-op. The empty literal is
// accepted and marks the root terminal, so the resulting pattern also matches
// the empty string.
func (t *Trie) Add(literals ...string) *Trie {
	for _, lit := range literals {
		n := t.root
		for _, r := range lit {
			n = n.childOrNew(r)
		}
		if !n.terminal {
			n.terminal = true
			t.count++
		}
	}
	return t
}

// Len returns the number of distinct literals in the tree.
func (t *Trie) Len() int {
	return t.count
}

// IsEmpty reports whether no literal has been inserted.
func (t *Trie) IsEmpty() bool {
	return t.count == 0
}

// Contains reports whether literal was inserted. Prefixes of inserted literals
// are not members unless inserted themselves.
func (t *Trie) Contains(literal string) bool {
	n := t.root
	for _, r := range literal {
		if n = n.child(r); n == nil {
			return false
		}
	}
	return n.terminal
}

// Literals returns every inserted literal in lexicographic order.
func (t *Trie) Literals() []string {
	type item struct {
		n     *node
		depth int // length of the parent's path
		char  rune
	}

	out := make([]string, 0, t.count)
	var path []rune
	stack := []item{{n: t.root, depth: -1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth >= 0 {
			path = append(path[:top.depth], top.char)
		}
		if top.n.terminal {
			out = append(out, string(path))
		}
		edges := top.n.edges()
		// Push in reverse so the smallest character is visited first.
		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, item{n: edges[i].node, depth: len(path), char: edges[i].char})
		}
	}
	return out
}

// Merge adds every literal of other into t and returns t. other is not
// modified and shares no nodes with t afterwards.
func (t *Trie) Merge(other *Trie) *Trie {
	if other == nil {
		return t
	}
	type pair struct{ dst, src *node }

	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.terminal && !p.dst.terminal {
			p.dst.terminal = true
			t.count++
		}
		for _, e := range p.src.edges() {
			stack = append(stack, pair{p.dst.childOrNew(e.char), e.node})
		}
	}
	return t
}

// Union returns a new Trie holding the literals of both a and b.
func Union(a, b *Trie) *Trie {
	return New().Merge(a).Merge(b)
}

// Equal reports whether t and other hold the same set of literals.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.count != other.count {
		return false
	}
	type pair struct{ a, b *node }

	stack := []pair{{t.root, other.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a.terminal != p.b.terminal || p.a.size() != p.b.size() {
			return false
		}
		for _, e := range p.a.edges() {
			c := p.b.child(e.char)
			if c == nil {
				return false
			}
			stack = append(stack, pair{e.node, c})
		}
	}
	return true
}
