// Package triedot builds prefix trees over word lists and renders them as
// Graphviz DOT graphs. This is the flat convenience surface; pkg/trie holds
// the data structure and the serializer.
package triedot

import (
	"io"

	"github.com/mkamoto/triedot/pkg/trie"
)

// Build folds words into a fresh trie, in order. Words are inserted exactly
// as given; normalization (case folding and friends) is the caller's job and
// must happen before this point for prefix sharing to see through spelling
// differences.
func Build(words []string) *trie.Trie {
	t := trie.NewTrie()
	for _, w := range words {
		t.Insert(trie.FromString(w))
	}
	return t
}

// WriteDot renders t to w as a DOT digraph.
func WriteDot(w io.Writer, t *trie.Trie, opts ...trie.DotOption) error {
	return trie.NewDotWriter(w, opts...).Write(t)
}
