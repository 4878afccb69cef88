package trie

// Merge unifies two nodes known to carry the same symbol and returns the
// survivor. Children are unified per symbol: where both operands have a child
// with the same symbol the two are merged recursively, otherwise the child is
// carried over as is. Sentinel children are dropped; a merged node marks no
// word end itself.
//
// Merge consumes both operands. It splices b's subtrees into a rather than
// rebuilding, so a is the survivor and b's shell must not be used afterwards.
// The result is the same multiset of symbol paths whichever way a sequence of
// merges is grouped or ordered.
//
// Calling Merge on nodes with differing symbols is a programming error and
// panics; the caller is responsible for matching symbols first.
func Merge(a, b *Node) *Node {
	if a.sym != b.sym {
		panic("[BUG] Merge: operands must carry the same symbol")
	}

	a.children = dropTerminals(a.children)

	for _, bc := range dropTerminals(b.children) {
		if ac := childBySym(a.children, bc.sym); ac != nil {
			Merge(ac, bc)
		} else {
			a.children = append(a.children, bc)
		}
	}
	b.children = nil

	return a
}

// childBySym returns the child carrying sym, or nil. Children hold at most
// one node per symbol, so the first hit is the only one.
func childBySym(children []*Node, sym rune) *Node {
	for _, c := range children {
		if c.sym == sym {
			return c
		}
	}
	return nil
}

func dropTerminals(children []*Node) []*Node {
	kept := children[:0]
	for _, c := range children {
		if !c.IsTerminal() {
			kept = append(kept, c)
		}
	}
	return kept
}
