package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mkamoto/triedot/pkg/cli"
	"github.com/mkamoto/triedot/pkg/trie"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(&cli.Context{Trie: trie.NewTrie()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
