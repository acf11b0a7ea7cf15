package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wgomg/wikifactcheck/internal/scorer"
)

func TestNormalizeVariants(t *testing.T) {
	raw := scorer.RawScoreMap{
		"Test":     0.9,
		"article,": 0.8,
		"word's":   0.7,
	}

	normalized := Normalize(raw)

	assert.InDelta(t, 0.9, normalized["test"], 1e-9)
	assert.InDelta(t, 0.8, normalized["article"], 1e-9)
	assert.InDelta(t, 0.7, normalized["word"], 1e-9)

	// Raw spellings survive too.
	assert.InDelta(t, 0.8, normalized["article,"], 1e-9)
	assert.InDelta(t, 0.7, normalized["word's"], 1e-9)
}

func TestNormalizeMaxWinsOnCollision(t *testing.T) {
	raw := scorer.RawScoreMap{
		"Word":  0.3,
		"word,": 0.9,
	}

	normalized := Normalize(raw)

	assert.InDelta(t, 0.9, normalized["word"], 1e-9)
}

func TestNormalizePossessiveKeepsMax(t *testing.T) {
	raw := scorer.RawScoreMap{
		"germany":   0.4,
		"Germany's": 0.9,
	}

	normalized := Normalize(raw)

	assert.InDelta(t, 0.9, normalized["germany"], 1e-9)
	assert.InDelta(t, 0.9, normalized["germany's"], 1e-9)
}

func TestNormalizeParenthesized(t *testing.T) {
	normalized := Normalize(scorer.RawScoreMap{"(USA)": 0.6})

	assert.InDelta(t, 0.6, normalized["usa"], 1e-9)
	assert.InDelta(t, 0.6, normalized["(usa)"], 1e-9)
}

func TestNormalizeAllPunctuationKeyKeepsOnlyRawForm(t *testing.T) {
	normalized := Normalize(scorer.RawScoreMap{"!!!": 0.5})

	assert.InDelta(t, 0.5, normalized["!!!"], 1e-9)
	assert.Len(t, normalized, 1, "stripping to empty must not add a key")
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(scorer.RawScoreMap{}))
}
