package cli

import (
	"bufio"
	"io"
	"strings"
)

// eachWord reads r line by line, trims surrounding whitespace, normalizes and
// hands each word to fn. Blank lines still yield the empty word; the trie
// represents it without fuss and it never renders, so filtering here would
// buy nothing. Lines are read without a length cap, any finite word is fair
// input. Read errors (and errors from fn) abort the loop.
func eachWord(r io.Reader, normalize Normalizer, fn func(word string) error) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			word := strings.TrimSpace(line)
			if normalize != nil {
				word = normalize(word)
			}
			if fnErr := fn(word); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
