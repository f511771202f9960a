package trie_test

import (
	"fmt"

	"github.com/coregx/retrie/trie"
)

func ExampleTrie_Pattern() {
	t := trie.New("abc", "foo", "abs")
	fmt.Println(t.Pattern())

	t.Add("absolute")
	fmt.Println(t.Pattern())

	t.Add("abx")
	fmt.Println(t.Pattern())

	t.Add("abxy")
	fmt.Println(t.Pattern())
	// Output:
	// (?:ab[cs]|foo)
	// (?:ab(?:c|s(?:olute)?)|foo)
	// (?:ab(?:[cx]|s(?:olute)?)|foo)
	// (?:ab(?:c|s(?:olute)?|xy?)|foo)
}

func ExampleUnion() {
	u := trie.Union(trie.New("abc"), trie.New("foo"))
	fmt.Println(u.Literals(), u.Equal(trie.New("foo", "abc")))
	// Output: [abc foo] true
}
