package analysis

import (
	"strings"

	"github.com/wgomg/wikifactcheck/internal/scorer"
)

// NormalizedScoreMap maps canonicalized word keys to support probabilities.
type NormalizedScoreMap map[string]float64

// punctCutset is stripped from word edges when matching scorer output back
// to article words glued to punctuation.
const punctCutset = `.,;:?!()[]{}"'`

// Normalize expands raw scorer output into a lexically robust mapping: every
// entry is keyed by its lowercase form, plus a punctuation-stripped variant
// and a possessive-stripped variant when those differ. Variants that collide
// keep the highest probability.
func Normalize(raw scorer.RawScoreMap) NormalizedScoreMap {
	normalized := make(NormalizedScoreMap, len(raw))

	insert := func(key string, prob float64) {
		if existing, ok := normalized[key]; !ok || prob > existing {
			normalized[key] = prob
		}
	}

	for word, prob := range raw {
		lower := strings.ToLower(word)
		insert(lower, prob)

		stripped := strings.Trim(lower, punctCutset)
		if stripped != "" && stripped != lower {
			insert(stripped, prob)
		}

		if base, ok := strings.CutSuffix(lower, "'s"); ok {
			insert(base, prob)
		}
	}

	return normalized
}
