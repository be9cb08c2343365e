package recognize

import (
	"strings"

	"github.com/acrolab/acrolex/pkg/extract"
	"github.com/acrolab/acrolex/pkg/nlp"
)

// StripDefiningPatterns removes each recognized longform together with
// its defining pattern, leaving a bare shortform mention. Fragments whose
// search yields no match are left untouched. The output has whitespace
// runs collapsed to single spaces and is trimmed, so stripping an already
// stripped text changes nothing.
func (e *engine) StripDefiningPatterns(text string) string {
	var b strings.Builder
	last := 0
	// Fragments are bounded only by defining-pattern positions here, not
	// by the recognition window.
	for _, frag := range extract.Fragments(text, e.shortform) {
		tokens := nlp.Tokenize(frag.Text)
		m, ok := e.searcher.search(nlp.WordTexts(tokens))
		if !ok {
			continue
		}
		// The search ignores punctuation, so walk the full token list
		// backward counting only word tokens until the longform's words
		// are covered. The iteration cap keeps pathological token
		// streams from looping forever; hitting it degrades to a
		// partial strip.
		numWords := len(strings.Fields(m.longform))
		counted, iters := 0, 0
		j := len(tokens) - 1
		for counted < numWords && j >= 0 {
			if tokens[j].Word {
				counted++
			}
			j--
			iters++
			if iters > e.window {
				break
			}
		}
		b.WriteString(text[last:frag.Start])
		b.WriteString(nlp.Detokenize(tokens[:j+1]))
		last = frag.End
	}
	b.WriteString(text[last:])

	// Collapse any remaining parenthesized shortform into a bare,
	// space-padded mention, then normalize whitespace.
	stripped := extract.DefiningPattern(e.shortform).
		ReplaceAllString(b.String(), " "+e.shortform+" ")
	return strings.Join(strings.Fields(stripped), " ")
}
