package nlp

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Normalize lowercases a token and reduces it to its Porter2 stem.
// It is idempotent, which the longform trie relies on: tokens inserted
// at build time and tokens looked up at search time go through the same
// function and meet at the same edge labels.
func Normalize(token string) string {
	return porter2.Stem(strings.ToLower(token))
}

// NormalizeAll applies Normalize to every token.
func NormalizeAll(tokens []string) []string {
	normalized := make([]string, len(tokens))
	for i, t := range tokens {
		normalized[i] = Normalize(t)
	}
	return normalized
}
