package trie

// Trie is a forest of root nodes, one per distinct leading symbol seen across
// all inserted words. It is write-only: grown by Insert, consumed wholesale
// by serialization. There is no lookup and no deletion.
type Trie struct {
	roots []*Node
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{}
}

// Insert merges a node into the forest. A root with the same symbol is merged
// with the node in place; otherwise the node becomes a new root. All path
// sharing below the root happens transitively inside Merge, so this is the
// trie's only mutating entry point.
//
// Insert consumes the node; the caller must not use it afterwards.
func (t *Trie) Insert(n *Node) {
	if found := childBySym(t.roots, n.sym); found != nil {
		Merge(found, n)
		return
	}
	t.roots = append(t.roots, n)
}

// Roots returns the forest's root nodes in first-insertion order.
// The returned slice is owned by the trie and must not be mutated.
func (t *Trie) Roots() []*Node {
	return t.roots
}

// Len returns the number of roots.
func (t *Trie) Len() int {
	return len(t.roots)
}
