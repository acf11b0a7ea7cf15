package scorer

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/wgomg/wikifactcheck/internal/utils"
)

// ParsePayload extracts the word probability mapping from a model response.
// The response is ideally a bare JSON object, but models sometimes wrap it in
// code fences or surrounding prose; both are tolerated. Individual entries
// that are not numbers in [0,1] are dropped with a warning. Anything
// unrecoverable yields an empty map, never an error.
func ParsePayload(raw string, logger *zap.SugaredLogger) RawScoreMap {
	payload := utils.CleanCodeBlock(raw)

	if !gjson.Valid(payload) {
		payload = extractObject(payload)
		if payload == "" || !gjson.Valid(payload) {
			logger.Errorf("failed to parse scorer response: %s", utils.Truncate(raw, 100))
			return RawScoreMap{}
		}
	}

	probs := gjson.Get(payload, "probabilities")
	if !probs.IsObject() {
		logger.Warnf("scorer response has no probabilities object: %s", utils.Truncate(raw, 100))
		return RawScoreMap{}
	}

	scores := RawScoreMap{}
	probs.ForEach(func(key, value gjson.Result) bool {
		prob, ok := entryValue(value)
		if !ok {
			logger.Warnf("invalid probability for word %q: %s", key.String(), value.Raw)
			return true
		}

		scores[key.String()] = prob
		return true
	})

	return scores
}

func entryValue(value gjson.Result) (float64, bool) {
	var prob float64

	switch value.Type {
	case gjson.Number:
		prob = value.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.Str), 64)
		if err != nil {
			return 0, false
		}
		prob = parsed
	default:
		return 0, false
	}

	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return 0, false
	}

	return prob, true
}

// extractObject returns the widest brace-delimited span of s, the fallback
// for models that preface their JSON with prose.
func extractObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start < 0 || end <= start {
		return ""
	}

	return s[start : end+1]
}
