package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env      Environment
	LogLevel string
}

type ScorerConfig struct {
	APIKey             string
	BaseURL            string
	Model              string
	DelayMs            int
	HttpTimeoutSeconds int
}

type AnalysisConfig struct {
	BlockTarget int
}

type RenderConfig struct {
	HighThreshold    float64
	PartialThreshold float64
}

type Config struct {
	App      AppConfig
	Scorer   ScorerConfig
	Analysis AnalysisConfig
	Render   RenderConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	return &Config{
		App: AppConfig{
			Env:      env,
			LogLevel: getLogLevel(env),
		},
		Scorer: ScorerConfig{
			APIKey:             getEnv("OPENAI_API_KEY", ""),
			BaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:              getEnv("WFC_MODEL", "gpt-4.1-nano"),
			DelayMs:            getEnvInt("WFC_API_DELAY_MS", 500),
			HttpTimeoutSeconds: getEnvInt("WFC_HTTP_TIMEOUT_SECONDS", 60),
		},
		Analysis: AnalysisConfig{
			BlockTarget: getEnvInt("WFC_BLOCK_TARGET", 100),
		},
		Render: RenderConfig{
			HighThreshold:    getEnvFloat("WFC_HIGH_THRESHOLD", 0.7),
			PartialThreshold: getEnvFloat("WFC_PARTIAL_THRESHOLD", 0.35),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Scorer.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Analysis.BlockTarget < 1 {
		return fmt.Errorf("WFC_BLOCK_TARGET must be at least 1")
	}
	if c.Render.PartialThreshold >= c.Render.HighThreshold {
		return fmt.Errorf(
			"WFC_PARTIAL_THRESHOLD (%.2f) must be below WFC_HIGH_THRESHOLD (%.2f)",
			c.Render.PartialThreshold,
			c.Render.HighThreshold,
		)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
