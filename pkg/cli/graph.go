package cli

import (
	"fmt"
	"os"

	"github.com/mkamoto/triedot/pkg/trie"
)

// GraphCmd reads words (one per line), folds them into the trie and prints
// the DOT graph. Reading is strictly ahead of rendering: every word is fully
// merged before the next is read, and the graph is emitted once at end of
// input. A read error aborts the whole run without partial output.
type GraphCmd struct {
	Files        []string `arg:"" optional:"" type:"existingfile" help:"Input files with one word per line (stdin when omitted)"`
	Rankdir      string   `help:"Graph layout direction" enum:"LR,UB" default:"LR"`
	Case         string   `help:"Case fold applied to every word before insertion" enum:"upper,lower,none" default:"upper"`
	StripAccents bool     `help:"Strip combining accents before insertion"`
	Terminals    string   `help:"End-of-word sentinel handling while rendering" enum:"skip,stop" default:"skip"`
	Output       string   `help:"Write the graph to a file instead of stdout" type:"path"`
}

// Run executes the graph command.
func (cmd *GraphCmd) Run(ctx *Context) error {
	normalize := NewNormalizer(cmd.Case, cmd.StripAccents)

	insert := func(word string) error {
		ctx.Trie.Insert(trie.FromString(word))
		return nil
	}

	if len(cmd.Files) == 0 {
		if err := eachWord(os.Stdin, normalize, insert); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	for _, file := range cmd.Files {
		if err := insertFromFile(file, normalize, insert); err != nil {
			return err
		}
	}

	out := os.Stdout
	if cmd.Output != "" {
		file, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	opts := []trie.DotOption{trie.WithRankdir(trie.Rankdir(cmd.Rankdir))}
	if cmd.Terminals == "stop" {
		opts = append(opts, trie.WithTerminalPolicy(trie.StopAtTerminal))
	}
	return trie.NewDotWriter(out, opts...).Write(ctx.Trie)
}

func insertFromFile(path string, normalize Normalizer, fn func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := eachWord(file, normalize, fn); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
