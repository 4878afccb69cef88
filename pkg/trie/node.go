package trie

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// terminal is the symbol of the end-of-word sentinel. Inserted words never
// contain it, so it can double as the "no symbol" value.
const terminal rune = 0

// handleSeq hands out node identifiers. Handles are stamped once, at
// construction, and never change afterwards, so an identifier stays stable
// for as long as the node lives.
var handleSeq atomic.Uint64

// Node is one character position along one or more inserted words.
// A node owns its children exclusively; the structure is always a tree.
type Node struct {
	handle   uint64
	sym      rune
	children []*Node
}

// NewNode creates a childless node carrying the given symbol.
func NewNode(sym rune) *Node {
	return &Node{handle: handleSeq.Add(1), sym: sym}
}

// NewTerminal creates an end-of-word sentinel node.
func NewTerminal() *Node {
	return NewNode(terminal)
}

// FromString decomposes a word into a linear chain: one node per rune, in
// order, each holding the next as its only child, closed by a sentinel.
// The empty string maps to a bare sentinel. Built back to front so that
// arbitrarily long words never touch the call stack.
//
// The word must not contain NUL, which is reserved for the sentinel; callers
// feeding external input strip it first (the CLI normalizer does).
func FromString(s string) *Node {
	node := NewTerminal()
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		parent := NewNode(runes[i])
		parent.children = []*Node{node}
		node = parent
	}
	return node
}

// Sym returns the symbol this node carries.
func (n *Node) Sym() rune {
	return n.sym
}

// IsTerminal reports whether the node is an end-of-word sentinel.
func (n *Node) IsTerminal() bool {
	return n.sym == terminal
}

// Children returns the node's children in insertion/merge order.
// The returned slice is owned by the node and must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// ID returns the printable identifier used as the node's name in DOT output.
// Two calls on the same node always return the same string, and two live
// nodes never share one.
func (n *Node) ID() string {
	return fmt.Sprintf("node_%d", n.handle)
}

// Fingerprint returns a structural hash of the subtree: the FNV-1a digest of
// its preorder (symbol, child count) sequence. Equal shapes hash equal;
// distinct shapes collide only at the hash function's rate, so this is a
// shape-equivalence check, not an identity.
func (n *Node) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [utf8.UTFMax + binary.MaxVarintLen64]byte

	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		w := utf8.EncodeRune(buf[:], cur.sym)
		w += binary.PutUvarint(buf[w:], uint64(len(cur.children)))
		h.Write(buf[:w])

		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return h.Sum64()
}

// String renders the node and its direct children for debugging,
// e.g. `[W]: [I] [O]`. Sentinels render as [$].
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s]:", symLabel(n.sym)))
	for _, c := range n.children {
		sb.WriteString(fmt.Sprintf(" [%s]", symLabel(c.sym)))
	}
	return sb.String()
}

func symLabel(sym rune) string {
	if sym == terminal {
		return "$"
	}
	return string(sym)
}
