// ## Overview
// Package trie implements a prefix tree over words and its serialization to
// Graphviz DOT. Words are decomposed into node chains (one node per rune,
// closed by an end-of-word sentinel) and folded into a forest keyed by
// leading symbol; nodes sharing a symbol at the same position are unified by
// Merge. The forest is built once from a finite word set and serialized once;
// there is no lookup, deletion, or incremental re-serialization.
//
// ## Example usage:
//
//	t := trie.NewTrie()
//	t.Insert(trie.FromString("WIN"))
//	t.Insert(trie.FromString("WON"))
//
//	if err := trie.NewDotWriter(os.Stdout).Write(t); err != nil {
//		// ...
//	}
package trie
