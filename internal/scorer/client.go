package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wgomg/wikifactcheck/internal/config"
)

const systemPrompt = "You are an expert fact-checker for Wikipedia articles."

const jsonStructure = `{
    "probabilities": {
        "word1": 0.9,
        "word2": 0.5,
        "word3": 0.0,
        ...
    }
}`

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	delay      time.Duration
	httpClient *http.Client
	logger     *zap.SugaredLogger
	cache      *responseCache
}

func NewClient(cfg *config.Config, logger *zap.SugaredLogger) (*Client, error) {
	if cfg.Scorer.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.Scorer.BaseURL, "/"),
		apiKey:  cfg.Scorer.APIKey,
		model:   cfg.Scorer.Model,
		delay:   time.Duration(cfg.Scorer.DelayMs) * time.Millisecond,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Scorer.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
		cache:  newResponseCache(),
	}, nil
}

// Score asks the model how well each word of block is supported by source.
// It never fails: transport errors, bad status codes and unparseable bodies
// all degrade to an empty map so a single bad call cannot abort a run.
func (c *Client) Score(ctx context.Context, block, source string) RawScoreMap {
	key := cacheKey(c.model, block, source)
	if cached, ok := c.cache.get(key); ok {
		c.logger.Debugf("scorer cache hit (size=%d, hit rate=%.2f)", c.cache.Size(), c.cache.HitRate())
		return cached
	}

	content, err := c.query(ctx, block, source)
	// Rate-limit delay applies to failed calls too.
	defer c.pause()

	if err != nil {
		c.logger.Errorf("querying scorer: %v", err)
		return RawScoreMap{}
	}

	scores := ParsePayload(content, c.logger)
	if len(scores) > 0 {
		c.cache.put(key, scores)
	}

	return scores
}

func (c *Client) query(ctx context.Context, block, source string) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(block, source)},
		},
		ResponseFormat: ResponseFormat{Type: "json_object"},
		Temperature:    0.0,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.handleAPIError(resp)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debugf("scorer usage - prompt_tokens: %d, completion_tokens: %d, total_tokens: %d",
		chatResp.Usage.PromptTokens,
		chatResp.Usage.CompletionTokens,
		chatResp.Usage.TotalTokens)

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from scorer")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func buildPrompt(block, source string) string {
	return fmt.Sprintf(`You are an expert Wikipedia article reviewer tasked with fact-checking. Compare the article text below against the provided source and verify its accuracy.

For EACH WORD in the article text, assign a probability (0.0 to 1.0) that indicates how well it's supported by the source:
- 1.0: Word is directly supported by information in the source
- 0.7-0.9: Word is supported but with some minor context differences
- 0.4-0.6: Word has partial support or is ambiguous
- 0.1-0.3: Word has minimal support or is tangentially related
- 0.0: Word contradicts the source or has no support

IMPORTANT: When analyzing words, ignore punctuation. For example:
- For "Germany's" provide a probability for "Germany" (without apostrophe-s)
- For "(USA)" provide a probability for "USA" (without parentheses)
- For "Killer's" provide a probability for "Killer" (without apostrophe-s)

Analyze EVERY SINGLE WORD, including articles (the, a, an), prepositions, and conjunctions.

Return ONLY a valid JSON object with this structure:
%s

========= ARTICLE TEXT =========
%s
========= SOURCE TEXT =========
%s`, jsonStructure, block, source)
}

func (c *Client) pause() {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
