package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acrolab/acrolex/pkg/dictionary"
)

func newTestRecognizer(t *testing.T, groundings dictionary.GroundingMap) *ExactRecognizer {
	t.Helper()
	rec, err := NewExactRecognizer("SC", groundings, 0)
	require.NoError(t, err)
	return rec
}

func TestStripParentheticalCollapse(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"Stem Cell": "G1"})
	got := rec.StripDefiningPatterns("Stem Cell (SC) differentiation")
	assert.Equal(t, "SC differentiation", got)
}

func TestStripKeepsSurroundingText(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"stem cell": "G1"})
	got := rec.StripDefiningPatterns("We cultured stem cells (SC) for a week.")
	assert.Equal(t, "We cultured SC for a week.", got)
}

func TestStripMultipleOccurrences(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{
		"stem cell":   "G1",
		"bone marrow": "G2",
	})
	got := rec.StripDefiningPatterns("stem cells (SC) and bone marrow (SC) were compared")
	assert.Equal(t, "SC and SC were compared", got)
}

func TestStripUnmatchedFragmentUntouched(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"stem cell": "G1"})
	// No recognizable longform before the pattern: the preceding text
	// stays, only the parenthetical collapses.
	got := rec.StripDefiningPatterns("The control group (SC) was larger.")
	assert.Equal(t, "The control group SC was larger.", got)
}

func TestStripIdempotent(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{
		"stem cell":   "G1",
		"bone marrow": "G2",
	})
	texts := []string{
		"Stem Cell (SC) differentiation",
		"We cultured stem cells (SC) and bone marrow (SC) together.",
		"The control group (SC) was larger.",
	}
	for _, text := range texts {
		once := rec.StripDefiningPatterns(text)
		assert.Equal(t, once, rec.StripDefiningPatterns(once), "input %q", text)
	}
}

func TestStripNoPattern(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"stem cell": "G1"})
	got := rec.StripDefiningPatterns("nothing to do here")
	assert.Equal(t, "nothing to do here", got)
}

func TestStripNormalizesWhitespace(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"stem cell": "G1"})
	got := rec.StripDefiningPatterns("we  saw   stem cells ( SC )  divide")
	assert.Equal(t, "we saw SC divide", got)
}

func TestStripIgnoresWindowForExtraction(t *testing.T) {
	// Stripping is bounded by pattern positions, not by the recognition
	// window, so a tiny window still finds the longform right before the
	// pattern.
	rec, err := NewExactRecognizer("SC", dictionary.GroundingMap{"stem cell": "G1"}, 5)
	require.NoError(t, err)
	got := rec.StripDefiningPatterns("stem cells (SC) divide")
	assert.Equal(t, "SC divide", got)
}

func TestStripInterveningPunctuation(t *testing.T) {
	rec := newTestRecognizer(t, dictionary.GroundingMap{"stem cell": "G1"})
	// Punctuation between the longform and the pattern is dropped along
	// with the longform tokens.
	got := rec.StripDefiningPatterns("they derived stem cells, (SC) in vitro")
	assert.Equal(t, "they derived SC in vitro", got)
}
