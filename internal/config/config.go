// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// API keys. OpenAI is required; the rest unlock optional sources and
	// the Gemini translation fallback.
	OpenAIAPIKey   string
	GeminiAPIKey   string
	NewsAPIKey     string
	GNewsAPIKey    string
	NewsDataAPIKey string
	GuardianAPIKey string
	RSS2JSONAPIKey string

	// Data files
	CorpusPath           string
	TranslationCachePath string
	FeedsConfigPath      string

	// AI request budgets per run (0 = unlimited)
	MaxOpenAIRequests int
	MaxGeminiRequests int
	MaxAIRequests     int

	// Pipeline settings
	ArticleMaxAge  time.Duration
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		CorpusPath:           getEnvOrDefault("CORPUS_PATH", "data/news.json"),
		TranslationCachePath: getEnvOrDefault("TRANSLATION_CACHE_PATH", "data/translation_cache.json"),
		FeedsConfigPath:      getEnvOrDefault("FEEDS_CONFIG_PATH", "configs/feeds.yaml"),
		MaxOpenAIRequests:    getEnvIntOrDefault("MAX_OPENAI_REQUESTS", 500),
		MaxGeminiRequests:    getEnvIntOrDefault("MAX_GEMINI_REQUESTS", 100),
		MaxAIRequests:        getEnvIntOrDefault("MAX_AI_REQUESTS", 600),
		ArticleMaxAge:        time.Duration(getEnvIntOrDefault("ARTICLE_MAX_AGE_DAYS", 183)) * 24 * time.Hour,
		RequestTimeout:       30 * time.Second,
		RetryAttempts:        3,
		RetryDelay:           2 * time.Second,
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_API_KEY")
	cfg.GNewsAPIKey = os.Getenv("GNEWS_API_KEY")
	cfg.NewsDataAPIKey = os.Getenv("NEWSDATA_API_KEY")
	cfg.GuardianAPIKey = os.Getenv("GUARDIAN_API_KEY")
	cfg.RSS2JSONAPIKey = os.Getenv("RSS2JSON_API_KEY")

	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.CorpusPath == "" {
		return fmt.Errorf("CORPUS_PATH must not be empty")
	}
	if c.ArticleMaxAge <= 0 {
		return fmt.Errorf("ARTICLE_MAX_AGE_DAYS must be positive")
	}
	return nil
}
