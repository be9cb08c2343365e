// Package score exposes the alignment-scoring capability used by the
// one-shot recognizer. The capability is optional: it is resolved once at
// process start, and when the module is built without it (the "noalign"
// build tag) construction reports ErrUnavailable instead of failing the
// whole program. Exact dictionary recognition never depends on it.
package score

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by NewScorer when the alignment scorer was
// not compiled into this binary.
var ErrUnavailable = errors.New("score: alignment scorer unavailable")

// Scorer scores candidate longform boundaries for one shortform.
type Scorer interface {
	// ExpandingScore returns one score per suffix boundary of tokens:
	// index k holds the score of treating the last k tokens as the
	// longform, for k = 0..len(tokens). Index 0 is the empty candidate.
	ExpandingScore(tokens []string) []float64
}

// Params tunes the scorer. The zero value selects defaults.
type Params struct {
	// LenPenalty is subtracted from a candidate's score for every token
	// beyond the length of the shortform. Default 0.05.
	LenPenalty float64
}

func (p Params) withDefaults() Params {
	if p.LenPenalty <= 0 {
		p.LenPenalty = 0.05
	}
	return p
}

// newScorer is set by the build-tagged implementation file. Nil means the
// capability is absent from this binary.
var newScorer func(shortform string, params Params) Scorer

// Available reports whether the alignment scorer capability is present.
func Available() bool {
	return newScorer != nil
}

// NewScorer builds a scorer bound to one shortform. It returns
// ErrUnavailable when the capability is absent and an error for an empty
// shortform.
func NewScorer(shortform string, params Params) (Scorer, error) {
	if newScorer == nil {
		return nil, ErrUnavailable
	}
	if shortform == "" {
		return nil, fmt.Errorf("score: empty shortform")
	}
	return newScorer(shortform, params.withDefaults()), nil
}
