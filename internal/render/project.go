package render

import (
	"strings"

	"github.com/wgomg/wikifactcheck/internal/analysis"
	"github.com/wgomg/wikifactcheck/internal/text"
)

type Tier int

const (
	TierLow Tier = iota
	TierPartial
	TierHigh
)

// AnnotatedToken pairs a token with the probability resolved for this
// particular occurrence of it. Scored is false for non-word tokens and for
// words whose score list ran out.
type AnnotatedToken struct {
	text.Token
	Prob   float64
	Scored bool
}

// Project walks tokens in order and resolves the Nth occurrence of each
// lowercase word to the Nth entry of its score list. Occurrence counting
// restarts on every call, so it only lines up when the token stream covers
// the same whole article the scores were built from.
func Project(tokens []text.Token, scores analysis.WordScores) []AnnotatedToken {
	annotated := make([]AnnotatedToken, 0, len(tokens))
	occurrences := map[string]int{}

	for _, tok := range tokens {
		if tok.Class != text.ClassWord {
			annotated = append(annotated, AnnotatedToken{Token: tok})
			continue
		}

		lower := strings.ToLower(tok.Text)
		idx := occurrences[lower]
		occurrences[lower] = idx + 1

		probs, ok := scores[lower]
		if !ok || idx >= len(probs) {
			annotated = append(annotated, AnnotatedToken{Token: tok})
			continue
		}

		annotated = append(annotated, AnnotatedToken{Token: tok, Prob: probs[idx], Scored: true})
	}

	return annotated
}

// ResolveTier maps an annotated word to its support tier. Unscored words
// render as lowest confidence.
func ResolveTier(tok AnnotatedToken, high, partial float64) Tier {
	if !tok.Scored {
		return TierLow
	}

	switch {
	case tok.Prob > high:
		return TierHigh
	case tok.Prob > partial:
		return TierPartial
	default:
		return TierLow
	}
}
