package cli

import (
	"github.com/mkamoto/triedot/pkg/trie"
)

// Context carries the shared trie into command Run methods.
type Context struct {
	Trie *trie.Trie
}

// CLI is the root of the command tree, parsed by kong in cmd/triedot.
var CLI struct {
	Graph GraphCmd `cmd:"" default:"withargs" help:"Build a prefix tree from words and print it as a Graphviz DOT graph"`
}
