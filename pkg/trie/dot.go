package trie

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// Rankdir selects the layout direction of the emitted graph. Cosmetic only.
type Rankdir string

const (
	RankdirLR Rankdir = "LR"
	RankdirUB Rankdir = "UB"
)

// TerminalPolicy decides what a traversal does when it meets an end-of-word
// sentinel among a node's children.
type TerminalPolicy int

const (
	// SkipTerminals skips the sentinel child and keeps iterating its
	// siblings. This is the default.
	SkipTerminals TerminalPolicy = iota
	// StopAtTerminal abandons the rest of the sibling loop at the first
	// sentinel. Subtrees ordered after the sentinel are silently dropped;
	// only useful to reproduce output of older renderers that behaved
	// this way.
	StopAtTerminal
)

// DotOption configures a DotWriter.
type DotOption func(*DotWriter) *DotWriter

// WithRankdir sets the graph layout direction.
func WithRankdir(dir Rankdir) DotOption {
	return func(dw *DotWriter) *DotWriter {
		dw.rankdir = dir
		return dw
	}
}

// WithTerminalPolicy sets how traversal treats sentinel children.
func WithTerminalPolicy(policy TerminalPolicy) DotOption {
	return func(dw *DotWriter) *DotWriter {
		dw.policy = policy
		return dw
	}
}

// DotWriter serializes a trie as a Graphviz DOT digraph. Node and edge lines
// are interleaved depth-first, children in stored order. Sentinels are never
// declared or linked; their end-of-word meaning has no visual form.
type DotWriter struct {
	w       io.Writer
	rankdir Rankdir
	policy  TerminalPolicy
}

// NewDotWriter creates a writer targeting w with LR layout and sentinel
// skipping, unless overridden by options.
func NewDotWriter(w io.Writer, opts ...DotOption) *DotWriter {
	dw := &DotWriter{w: w, rankdir: RankdirLR, policy: SkipTerminals}
	for _, opt := range opts {
		dw = opt(dw)
	}
	return dw
}

// Write emits the whole forest. An empty trie produces just the header and
// footer. Write does not consume the trie and may be called again, but a
// one-shot full serialization at end of input is the intended use.
func (dw *DotWriter) Write(t *Trie) error {
	if _, err := fmt.Fprintf(dw.w, "digraph {\nrankdir=%s;\n", dw.rankdir); err != nil {
		return err
	}
	for _, root := range t.roots {
		if root.IsTerminal() {
			continue
		}
		if err := dw.writeNode(root); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(dw.w, "}")
	return err
}

// dotItem is a pending traversal step: declare node, preceded by the edge
// from parent when there is one.
type dotItem struct {
	parent *Node
	node   *Node
}

// writeNode emits one root's subtree depth-first. An explicit stack stands in
// for recursion so that chains as deep as the longest inserted word cannot
// blow the call stack.
func (dw *DotWriter) writeNode(root *Node) error {
	stack := []dotItem{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.parent != nil {
			if _, err := fmt.Fprintf(dw.w, "%s -> %s;\n", it.parent.ID(), it.node.ID()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(dw.w, "%s [label=\"%s\",shape=plain];\n", it.node.ID(), string(it.node.sym)); err != nil {
			return err
		}

		kept := dw.realChildren(it.node)
		for i := len(kept) - 1; i >= 0; i-- {
			stack = append(stack, dotItem{parent: it.node, node: kept[i]})
		}
	}
	return nil
}

// realChildren applies the terminal policy to a node's child list.
func (dw *DotWriter) realChildren(n *Node) []*Node {
	kept := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.IsTerminal() {
			if dw.policy == StopAtTerminal {
				break
			}
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// Graph exports the forest as an emicklei/dot graph, for callers that want to
// restyle or post-process the graph instead of consuming the canonical text
// form. Same traversal, same identifiers, same labels as Write.
func Graph(t *Trie, opts ...DotOption) *dot.Graph {
	dw := NewDotWriter(io.Discard, opts...)
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", string(dw.rankdir))

	for _, root := range t.roots {
		if root.IsTerminal() {
			continue
		}
		stack := []dotItem{{node: root}}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			gn := g.Node(it.node.ID()).Label(string(it.node.sym)).Attr("shape", "plain")
			if it.parent != nil {
				g.Edge(g.Node(it.parent.ID()), gn)
			}

			kept := dw.realChildren(it.node)
			for i := len(kept) - 1; i >= 0; i-- {
				stack = append(stack, dotItem{parent: it.node, node: kept[i]})
			}
		}
	}
	return g
}
