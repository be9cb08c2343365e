// Package recognize finds the longform expansion of a shortform by
// locating defining patterns ("longform (SHORTFORM)") in free text.
//
// Two recognizers implement the same contract: ExactRecognizer matches
// against a fixed grounding dictionary through a reverse-order token
// trie, and OneShotRecognizer scores candidate boundaries with the
// alignment capability for texts where no dictionary exists. Both also
// strip defining patterns from text, which is used to produce training
// corpora free of the patterns the labels were derived from.
//
// All recognizer state is immutable after construction, so a single
// recognizer may serve concurrent Recognize and StripDefiningPatterns
// calls without locking.
package recognize

import (
	"fmt"

	"github.com/acrolab/acrolex/pkg/dictionary"
	"github.com/acrolab/acrolex/pkg/extract"
	"github.com/acrolab/acrolex/pkg/nlp"
)

// DefaultWindow is the character lookback used when extracting fragments
// if the caller does not set one. It should match the window the
// dictionary's longforms were mined with.
const DefaultWindow = 100

// Result is one recognized expansion at one defining-pattern occurrence.
type Result struct {
	// Longform is the dictionary surface form (ExactRecognizer) or the
	// raw token span (OneShotRecognizer).
	Longform string
	// LongformText is the literal substring of the input that produced
	// the match; it can differ from Longform in casing and punctuation.
	LongformText string
	// Grounding is the canonical identifier, set by ExactRecognizer.
	Grounding string
	// Score is the alignment score, set by OneShotRecognizer.
	Score float64
}

// Recognizer is the contract shared by the exact and one-shot variants.
type Recognizer interface {
	// Shortform returns the abbreviation this recognizer is bound to.
	Shortform() string
	// Recognize returns one Result per defining-pattern occurrence that
	// yields a match. Occurrences with no match contribute nothing.
	Recognize(text string) []Result
	// StripDefiningPatterns removes recognized longforms and collapses
	// the parenthesized shortform into a bare mention.
	StripDefiningPatterns(text string) string
}

// match is the internal search outcome shared by both variants.
type match struct {
	longform  string
	tokens    int
	grounding string
	score     float64
}

type searcher interface {
	search(tokens []string) (match, bool)
}

// engine runs the shared fragment pipeline. The concrete recognizer
// plugs in as the searcher.
type engine struct {
	shortform string
	window    int
	searcher  searcher
}

func (e *engine) Shortform() string { return e.shortform }

func (e *engine) Recognize(text string) []Result {
	var results []Result
	for _, frag := range extract.FragmentsWindow(text, e.shortform, e.window) {
		if frag.Text == "" {
			continue
		}
		cand := extract.ExtractCandidate(frag.Text)
		m, ok := e.searcher.search(cand.Tokens)
		if !ok {
			continue
		}
		surface, ok := cand.TextFor(m.tokens)
		if !ok {
			continue
		}
		results = append(results, Result{
			Longform:     m.longform,
			LongformText: surface,
			Grounding:    m.grounding,
			Score:        m.score,
		})
	}
	return results
}

// ExactRecognizer matches longforms drawn verbatim (after normalization)
// from a grounding dictionary.
type ExactRecognizer struct {
	engine
	trie       *LongformTrie
	groundings dictionary.GroundingMap
}

// NewExactRecognizer builds a recognizer for one shortform over the given
// grounding map. A window of 0 selects DefaultWindow. The map is copied;
// later caller mutations do not affect the recognizer.
func NewExactRecognizer(shortform string, groundings dictionary.GroundingMap, window int) (*ExactRecognizer, error) {
	if shortform == "" {
		return nil, fmt.Errorf("recognize: empty shortform")
	}
	if err := groundings.Validate(); err != nil {
		return nil, err
	}
	if window <= 0 {
		window = DefaultWindow
	}
	longforms := make([]string, 0, len(groundings))
	for longform := range groundings {
		longforms = append(longforms, longform)
	}
	r := &ExactRecognizer{
		trie:       NewLongformTrie(longforms, nlp.Normalize),
		groundings: groundings.Clone(),
	}
	r.engine = engine{shortform: shortform, window: window, searcher: r}
	return r, nil
}

// FromDictionary builds an ExactRecognizer from a loaded dictionary.
func FromDictionary(dict *dictionary.Dictionary, window int) (*ExactRecognizer, error) {
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return NewExactRecognizer(dict.Shortform, dict.Entries, window)
}

func (r *ExactRecognizer) search(tokens []string) (match, bool) {
	longform, n, ok := r.trie.Search(tokens)
	if !ok {
		return match{}, false
	}
	grounding, ok := r.groundings[longform]
	if !ok {
		// The trie was built from the grounding map's keys, so a hit
		// without a grounding means construction is broken.
		panic(fmt.Sprintf("recognize: longform %q has no grounding, trie and grounding map diverged", longform))
	}
	return match{longform: longform, tokens: n, grounding: grounding}, true
}
