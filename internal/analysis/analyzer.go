package analysis

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/wgomg/wikifactcheck/internal/article"
	"github.com/wgomg/wikifactcheck/internal/scorer"
	"github.com/wgomg/wikifactcheck/internal/text"
)

// Scorer rates how well each word of a block is supported by a source.
// Implementations report failure as an empty map, never an error.
type Scorer interface {
	Score(ctx context.Context, block, source string) scorer.RawScoreMap
}

// WordScores maps a lowercase word to one probability per occurrence of that
// word, in article order. The Nth entry belongs to the Nth occurrence across
// the whole article, regardless of which block it appeared in.
type WordScores map[string][]float64

// Result holds a WordScores per source name.
type Result map[string]WordScores

type Analyzer struct {
	scorer Scorer
	logger *zap.SugaredLogger
	warned map[string]struct{}
}

func NewAnalyzer(s Scorer, logger *zap.SugaredLogger) *Analyzer {
	return &Analyzer{
		scorer: s,
		logger: logger,
		warned: make(map[string]struct{}),
	}
}

// Analyze scores every block against every source. Blocks form the outer
// loop so all sources see blocks in the same order, which is what keeps each
// source's per-word occurrence lists aligned with the article.
func (a *Analyzer) Analyze(ctx context.Context, blocks []string, sources []article.Source) Result {
	result := make(Result, len(sources))
	for _, src := range sources {
		result[src.Name] = WordScores{}
	}

	for i, block := range blocks {
		a.logger.Infof("Processing block %d/%d...", i+1, len(blocks))

		words := text.Words(block)

		for _, src := range sources {
			a.logger.Infof("Checking against source: %s", src.Name)

			raw := a.scorer.Score(ctx, block, src.Text)
			normalized := Normalize(raw)

			a.apply(normalized, words, result[src.Name])
		}
	}

	return result
}

// apply appends one probability per word of the block, in block order, to
// the source's score lists. A word the scorer did not cover scores 0.0 and
// is warned about once per run.
func (a *Analyzer) apply(normalized NormalizedScoreMap, words []string, scores WordScores) {
	for _, word := range words {
		lower := strings.ToLower(word)

		prob, found := normalized[lower]
		if !found {
			stripped := strings.Trim(lower, punctCutset)
			prob, found = normalized[stripped]
		}

		if !found {
			if _, seen := a.warned[lower]; !seen {
				a.warned[lower] = struct{}{}
				a.logger.Warnf("No probability found for word '%s'", word)
			}
			prob = 0.0
		}

		scores[lower] = append(scores[lower], prob)
	}
}

// Combine merges all sources' score lists per word by concatenation, in
// sorted source-name order so a run is reproducible.
func Combine(result Result) WordScores {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	combined := WordScores{}
	for _, name := range names {
		for word, probs := range result[name] {
			combined[word] = append(combined[word], probs...)
		}
	}

	return combined
}
