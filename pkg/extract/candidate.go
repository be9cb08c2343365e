package extract

import (
	"github.com/acrolab/acrolex/pkg/nlp"
)

// Candidate holds the searchable word tokens of a fragment together with
// a map from word-token count to the exact surface text spanning the last
// that-many word tokens. The map is needed because detokenization is not
// an exact inverse of tokenization: once the trie reports how many tokens
// matched, the caller recovers the literal substring, not a reconstruction.
type Candidate struct {
	Tokens  []string
	surface map[int]string
}

// TextFor returns the original fragment substring covering the last n word
// tokens.
func (c Candidate) TextFor(n int) (string, bool) {
	s, ok := c.surface[n]
	return s, ok
}

// ExtractCandidate tokenizes a fragment and builds the count-to-surface map.
// Punctuation tokens are excluded from the candidate sequence but interior
// punctuation still appears in the recovered surface text.
func ExtractCandidate(fragment string) Candidate {
	tokens := nlp.Tokenize(fragment)
	var words []nlp.Token
	for _, t := range tokens {
		if t.Word {
			words = append(words, t)
		}
	}
	cand := Candidate{
		Tokens:  make([]string, len(words)),
		surface: make(map[int]string, len(words)),
	}
	if len(words) == 0 {
		return cand
	}
	end := words[len(words)-1].End
	for i, w := range words {
		cand.Tokens[i] = w.Text
		// i-th word from the start is the (len-i)-th from the end.
		cand.surface[len(words)-i] = fragment[w.Start:end]
	}
	return cand
}
