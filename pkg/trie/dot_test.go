package trie

import (
	"bytes"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	nodeLine = regexp.MustCompile(`^(node_\d+) \[label="(.*)",shape=plain\];$`)
	edgeLine = regexp.MustCompile(`^(node_\d+) -> (node_\d+);$`)
)

// parseDot splits a DOT document into its label map and its edge list,
// expressed as label pairs, so assertions survive the run-to-run variation
// of node handles.
func parseDot(t *testing.T, out string) (labels map[string]string, edges []string) {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "digraph {", lines[0], "output should open with the digraph header")
	assert.Equal(t, "}", lines[len(lines)-1], "output should close with the footer")

	labels = map[string]string{}
	var rawEdges [][2]string
	for _, line := range lines[2 : len(lines)-1] {
		if m := nodeLine.FindStringSubmatch(line); m != nil {
			labels[m[1]] = m[2]
			continue
		}
		if m := edgeLine.FindStringSubmatch(line); m != nil {
			rawEdges = append(rawEdges, [2]string{m[1], m[2]})
			continue
		}
		t.Fatalf("unexpected line in DOT output: %q", line)
	}
	for _, e := range rawEdges {
		edges = append(edges, labels[e[0]]+"->"+labels[e[1]])
	}
	sort.Strings(edges)
	return labels, edges
}

// TestWriteDotEndToEnd verifies the win/won scenario: four distinct nodes
// plus a second N, four edges, no sentinel declared or linked.
func TestWriteDotEndToEnd(t *testing.T) {
	tr := NewTrie()
	tr.Insert(FromString("WIN"))
	tr.Insert(FromString("WON"))

	var buf bytes.Buffer
	assert.NoError(t, NewDotWriter(&buf).Write(tr))

	labels, edges := parseDot(t, buf.String())

	declared := []string{}
	for _, label := range labels {
		declared = append(declared, label)
	}
	sort.Strings(declared)
	assert.Equal(t, []string{"I", "N", "N", "O", "W"}, declared,
		"expected W, I, O and two distinct N declarations")
	assert.Equal(t, []string{"I->N", "O->N", "W->I", "W->O"}, edges)
	assert.Equal(t, "rankdir=LR;", strings.Split(buf.String(), "\n")[1])
}

// TestWriteDotEmptyTrie verifies zero inserted words produce only the header
// and footer.
func TestWriteDotEmptyTrie(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewDotWriter(&buf).Write(NewTrie()))
	assert.Equal(t, "digraph {\nrankdir=LR;\n}\n", buf.String())
}

// TestWriteDotSkipsEmptyWordRoot verifies the empty word leaves no trace in
// the output.
func TestWriteDotSkipsEmptyWordRoot(t *testing.T) {
	tr := NewTrie()
	tr.Insert(FromString(""))

	var buf bytes.Buffer
	assert.NoError(t, NewDotWriter(&buf).Write(tr))
	assert.Equal(t, "digraph {\nrankdir=LR;\n}\n", buf.String())
}

// TestWriteDotRankdir verifies the layout direction option lands in the
// header line.
func TestWriteDotRankdir(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, NewDotWriter(&buf, WithRankdir(RankdirUB)).Write(NewTrie()))
	assert.Equal(t, "digraph {\nrankdir=UB;\n}\n", buf.String())
}

// TestTerminalPolicies pins down the two sentinel policies on a node whose
// sentinel is ordered before a real sibling: skipping keeps the sibling,
// stopping drops it.
func TestTerminalPolicies(t *testing.T) {
	build := func() *Trie {
		a := NewNode('A')
		b := NewNode('B')
		a.children = []*Node{NewTerminal(), b}
		tr := NewTrie()
		tr.Insert(a)
		return tr
	}

	var skip bytes.Buffer
	assert.NoError(t, NewDotWriter(&skip, WithTerminalPolicy(SkipTerminals)).Write(build()))
	labels, edges := parseDot(t, skip.String())
	assert.Len(t, labels, 2, "skipping the sentinel should keep the B sibling")
	assert.Equal(t, []string{"A->B"}, edges)

	var stop bytes.Buffer
	assert.NoError(t, NewDotWriter(&stop, WithTerminalPolicy(StopAtTerminal)).Write(build()))
	labels, edges = parseDot(t, stop.String())
	assert.Len(t, labels, 1, "stopping at the sentinel should drop the B sibling")
	assert.Empty(t, edges)
}

// TestGraphExport verifies the emicklei/dot export carries the same nodes and
// edges as the canonical text form.
func TestGraphExport(t *testing.T) {
	tr := NewTrie()
	tr.Insert(FromString("WIN"))
	tr.Insert(FromString("WON"))

	g := Graph(tr, WithRankdir(RankdirUB))
	out := g.String()

	assert.Contains(t, out, `rankdir="UB"`)
	for _, label := range []string{`label="W"`, `label="I"`, `label="O"`, `label="N"`} {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 4, strings.Count(out, "->"), "the export should carry four edges")
}
