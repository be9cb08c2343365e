// Package nlp provides the light text processing used by the recognizers:
// word tokenization with byte offsets, best-effort detokenization, and
// the stem+lowercase normalization applied before trie lookups.
package nlp

import (
	"strings"
	"unicode"
)

// Token is a single tokenizer output. Start and End are byte offsets into
// the input string, so s[t.Start:t.End] == t.Text always holds.
type Token struct {
	Text  string
	Start int
	End   int
	Word  bool
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits text into word and punctuation tokens. Word tokens are
// maximal runs of letters, digits and underscores; every other non-space
// rune becomes a single punctuation token. Whitespace is dropped.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i, Word: true})
			start = -1
		}
		if !unicode.IsSpace(r) {
			end := i + len(string(r))
			tokens = append(tokens, Token{Text: text[i:end], Start: i, End: end})
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text), Word: true})
	}
	return tokens
}

// WordTexts returns the texts of the word tokens only, in order.
func WordTexts(tokens []Token) []string {
	var words []string
	for _, t := range tokens {
		if t.Word {
			words = append(words, t.Text)
		}
	}
	return words
}

// Punctuation that attaches to the preceding token when detokenizing.
const closingPunct = ".,;:!?%)]}'"

// Punctuation that attaches to the following token.
const openingPunct = "([{"

// Detokenize reassembles tokens into text. It is a best-effort inverse of
// Tokenize, not an exact one: original whitespace runs are collapsed and
// punctuation spacing follows English conventions.
func Detokenize(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && !strings.Contains(closingPunct, t.Text) &&
			!strings.Contains(openingPunct, tokens[i-1].Text) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
