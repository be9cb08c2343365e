package recognize

import (
	"fmt"
	"strings"

	"github.com/acrolab/acrolex/pkg/nlp"
	"github.com/acrolab/acrolex/pkg/score"
)

// OneShotRecognizer identifies longform boundaries with alignment
// scoring instead of a dictionary, for use on a single document where no
// grounding map exists. Results carry the raw score in place of a
// grounding.
type OneShotRecognizer struct {
	engine
	scorer score.Scorer
}

// NewOneShotRecognizer builds a fuzzy recognizer for one shortform. A
// window of 0 selects DefaultWindow. When the alignment capability is
// absent the returned error wraps score.ErrUnavailable so callers can
// detect it and skip fuzzy recognition.
func NewOneShotRecognizer(shortform string, window int, params score.Params) (*OneShotRecognizer, error) {
	scorer, err := score.NewScorer(shortform, params)
	if err != nil {
		return nil, fmt.Errorf("recognize: one-shot recognizer for %q: %w", shortform, err)
	}
	if window <= 0 {
		window = DefaultWindow
	}
	r := &OneShotRecognizer{scorer: scorer}
	r.engine = engine{shortform: shortform, window: window, searcher: r}
	return r, nil
}

func (r *OneShotRecognizer) search(tokens []string) (match, bool) {
	if len(tokens) == 0 {
		return match{}, false
	}
	scores := r.scorer.ExpandingScore(nlp.NormalizeAll(tokens))
	// Ties break toward the lowest boundary index: the first maximum in
	// scan order wins.
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	if best == 0 {
		return match{}, false
	}
	longform := strings.Join(tokens[len(tokens)-best:], " ")
	return match{longform: longform, tokens: best, score: scores[best]}, true
}
