package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wgomg/wikifactcheck/internal/article"
	"github.com/wgomg/wikifactcheck/internal/scorer"
	"github.com/wgomg/wikifactcheck/internal/utils"
)

// scorerFunc adapts a function to the Scorer interface.
type scorerFunc func(ctx context.Context, block, source string) scorer.RawScoreMap

func (f scorerFunc) Score(ctx context.Context, block, source string) scorer.RawScoreMap {
	return f(ctx, block, source)
}

func oneSource(text string) []article.Source {
	return []article.Source{{Name: "source1.txt", Text: text}}
}

func TestAnalyzeOccurrenceOrderAcrossBlocks(t *testing.T) {
	blocks := []string{"This is a test.", "Another test here."}

	byBlock := map[string]scorer.RawScoreMap{
		blocks[0]: {"this": 1.0, "is": 1.0, "a": 1.0, "test": 0.9},
		blocks[1]: {"another": 1.0, "test": 0.2, "here": 1.0},
	}

	fake := scorerFunc(func(_ context.Context, block, _ string) scorer.RawScoreMap {
		return byBlock[block]
	})

	analyzer := NewAnalyzer(fake, utils.NewDiscardLogger())
	result := analyzer.Analyze(context.Background(), blocks, oneSource("src"))

	require.Contains(t, result, "source1.txt")
	assert.Equal(t, []float64{0.9, 0.2}, result["source1.txt"]["test"],
		"the Nth list entry must correspond to the Nth occurrence in block order")
}

func TestAnalyzeLexicalVariantsStillMatch(t *testing.T) {
	// The scorer echoes words with case and punctuation attached; the
	// normalized variants have to match the clean block words anyway.
	fake := scorerFunc(func(_ context.Context, _, _ string) scorer.RawScoreMap {
		return scorer.RawScoreMap{"First": 1.0, "sentence.": 0.8}
	})

	analyzer := NewAnalyzer(fake, utils.NewDiscardLogger())
	result := analyzer.Analyze(context.Background(), []string{"First sentence."}, oneSource("src"))

	assert.Equal(t, []float64{1.0}, result["source1.txt"]["first"])
	assert.Equal(t, []float64{0.8}, result["source1.txt"]["sentence"])
}

func TestAnalyzeUnmatchedWordSentinelAndSingleWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core).Sugar()

	fake := scorerFunc(func(_ context.Context, _, _ string) scorer.RawScoreMap {
		return scorer.RawScoreMap{"known": 0.9}
	})

	blocks := []string{"known mystery.", "mystery again mystery."}

	analyzer := NewAnalyzer(fake, logger)
	result := analyzer.Analyze(context.Background(), blocks, oneSource("src"))

	scores := result["source1.txt"]
	assert.Equal(t, []float64{0.9}, scores["known"])
	assert.Equal(t, []float64{0.0, 0.0, 0.0}, scores["mystery"],
		"every unmatched occurrence gets a 0.0 sentinel")
	assert.Equal(t, []float64{0.0}, scores["again"])

	var mysteryWarnings int
	for _, entry := range logs.All() {
		if entry.Message == "No probability found for word 'mystery'" {
			mysteryWarnings++
		}
	}
	assert.Equal(t, 1, mysteryWarnings, "warn once per distinct word per run")
}

func TestAnalyzeGatewayFailureContributesSentinels(t *testing.T) {
	// Empty map is the gateway's failure signal; the run must still complete
	// with full-length score lists.
	fake := scorerFunc(func(_ context.Context, _, _ string) scorer.RawScoreMap {
		return scorer.RawScoreMap{}
	})

	analyzer := NewAnalyzer(fake, utils.NewDiscardLogger())
	result := analyzer.Analyze(context.Background(), []string{"one two one."}, oneSource("src"))

	scores := result["source1.txt"]
	assert.Equal(t, []float64{0.0, 0.0}, scores["one"])
	assert.Equal(t, []float64{0.0}, scores["two"])
}

func TestAnalyzePerSourceAccumulators(t *testing.T) {
	fake := scorerFunc(func(_ context.Context, _, source string) scorer.RawScoreMap {
		if source == "good" {
			return scorer.RawScoreMap{"fact": 1.0}
		}
		return scorer.RawScoreMap{"fact": 0.1}
	})

	sources := []article.Source{
		{Name: "source1.txt", Text: "good"},
		{Name: "source2.txt", Text: "bad"},
	}

	analyzer := NewAnalyzer(fake, utils.NewDiscardLogger())
	result := analyzer.Analyze(context.Background(), []string{"fact."}, sources)

	assert.Equal(t, []float64{1.0}, result["source1.txt"]["fact"])
	assert.Equal(t, []float64{0.1}, result["source2.txt"]["fact"])
}

func TestCombineConcatenatesInSortedSourceOrder(t *testing.T) {
	result := Result{
		"source2.txt": {"test": {0.2}, "only2": {0.5}},
		"source1.txt": {"test": {0.9}},
	}

	combined := Combine(result)

	assert.Equal(t, []float64{0.9, 0.2}, combined["test"])
	assert.Equal(t, []float64{0.5}, combined["only2"])
}
