package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acrolab/acrolex/pkg/score"
)

func TestNewOneShotRecognizer(t *testing.T) {
	if !score.Available() {
		t.Skip("alignment scorer not compiled in")
	}
	rec, err := NewOneShotRecognizer("IPSC", 0, score.Params{})
	require.NoError(t, err)
	assert.Equal(t, "IPSC", rec.Shortform())
}

func TestOneShotRecognize(t *testing.T) {
	if !score.Available() {
		t.Skip("alignment scorer not compiled in")
	}
	rec, err := NewOneShotRecognizer("IPSC", 0, score.Params{})
	require.NoError(t, err)

	results := rec.Recognize("We used induced pluripotent stem cells (IPSC) lines.")
	require.Len(t, results, 1)
	assert.Equal(t, "induced pluripotent stem cells", results[0].Longform)
	assert.Equal(t, "induced pluripotent stem cells", results[0].LongformText)
	assert.Empty(t, results[0].Grounding)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
}

func TestOneShotNoPattern(t *testing.T) {
	if !score.Available() {
		t.Skip("alignment scorer not compiled in")
	}
	rec, err := NewOneShotRecognizer("IPSC", 0, score.Params{})
	require.NoError(t, err)
	assert.Empty(t, rec.Recognize("no pattern in this sentence"))
}

func TestOneShotStrip(t *testing.T) {
	if !score.Available() {
		t.Skip("alignment scorer not compiled in")
	}
	rec, err := NewOneShotRecognizer("IPSC", 0, score.Params{})
	require.NoError(t, err)

	got := rec.StripDefiningPatterns("We used induced pluripotent stem cells (IPSC) lines.")
	assert.Equal(t, "We used IPSC lines.", got)
}
