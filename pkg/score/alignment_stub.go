//go:build noalign

package score

// Built with the noalign tag the scorer factory stays nil and NewScorer
// reports ErrUnavailable. Recognizers that do not need alignment scoring
// are unaffected.
