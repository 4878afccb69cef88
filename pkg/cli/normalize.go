package cli

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer rewrites a word before it enters the trie.
type Normalizer func(string) string

// NewNormalizer builds the pre-insertion normalizer. casing is one of
// "upper", "lower" or "none". Case folding happens outside the trie, but its
// effect is load-bearing: it is what lets differently-cased spellings of the
// same word share a path. NUL runes are always stripped; the trie reserves
// NUL for its end-of-word sentinel and cannot represent it as a symbol.
func NewNormalizer(casing string, stripAccents bool) Normalizer {
	return func(word string) string {
		word = strings.ReplaceAll(word, "\x00", "")
		if stripAccents {
			transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
			if stripped, _, err := transform.String(transformer, word); err == nil {
				word = stripped
			}
		}
		switch casing {
		case "upper":
			word = strings.ToUpper(word)
		case "lower":
			word = strings.ToLower(word)
		}
		return word
	}
}
