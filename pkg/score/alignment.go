//go:build !noalign

package score

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

func init() {
	newScorer = func(shortform string, params Params) Scorer {
		return &alignmentScorer{
			shortform: strings.ToLower(shortform),
			params:    params,
		}
	}
}

// alignmentScorer scores a candidate suffix by how well the initial
// characters of its tokens line up with the shortform, using Jaro-Winkler
// similarity. Longer candidates than the shortform can justify are
// penalized per extra token so that expanding the boundary past the true
// longform lowers the score.
type alignmentScorer struct {
	shortform string
	params    Params
}

func (s *alignmentScorer) ExpandingScore(tokens []string) []float64 {
	scores := make([]float64, len(tokens)+1)
	for k := 1; k <= len(tokens); k++ {
		scores[k] = s.scoreSuffix(tokens[len(tokens)-k:])
	}
	return scores
}

func (s *alignmentScorer) scoreSuffix(tokens []string) float64 {
	var initials strings.Builder
	for _, t := range tokens {
		if t == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(t)
		initials.WriteRune(r)
	}
	if initials.Len() == 0 {
		return 0
	}
	sim, err := edlib.StringsSimilarity(s.shortform, initials.String(), edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	score := float64(sim)
	if extra := len(tokens) - utf8.RuneCountInString(s.shortform); extra > 0 {
		score -= s.params.LenPenalty * float64(extra)
	}
	return score
}
