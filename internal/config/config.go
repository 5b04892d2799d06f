package config

import (
	"os"
	"strconv"
	"time"

	"ventureforge/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	AI        AIConfig
	Research  ResearchConfig
	Server    ServerConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// AIConfig holds generative-model settings
type AIConfig struct {
	OpenAIKey     string
	OpenAIModel   string
	SystemContext string
	TimeoutMs     int
}

// ResearchConfig holds research provider credentials. Either key may be
// empty: a missing research key disables research entirely (configuration
// fallback, not an error); a missing scrape key skips competitor scraping.
type ResearchConfig struct {
	ResearchAPIKey string
	ResearchURL    string
	ScrapeAPIKey   string
	ScrapeURL      string
	TimeoutMs      int
	CacheTTL       time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port      string
	GinMode   string
	AllowAnon bool
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		AI: AIConfig{
			OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnvOrDefault("LLM_MODEL", "gpt-4o"),
			SystemContext: "You are a startup research analyst producing structured JSON output.",
			TimeoutMs:     getEnvIntOrDefault("LLM_TIMEOUT_MS", 120000),
		},
		Research: ResearchConfig{
			ResearchAPIKey: os.Getenv("RESEARCH_API_KEY"),
			ResearchURL:    getEnvOrDefault("RESEARCH_API_URL", "https://api.perplexity.ai"),
			ScrapeAPIKey:   os.Getenv("SCRAPE_API_KEY"),
			ScrapeURL:      getEnvOrDefault("SCRAPE_API_URL", "https://api.firecrawl.dev"),
			TimeoutMs:      getEnvIntOrDefault("RESEARCH_TIMEOUT_MS", 45000),
			CacheTTL:       getEnvDurationOrDefault("RESEARCH_CACHE_TTL", time.Hour),
		},
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8080"),
			GinMode:   getEnvOrDefault("GIN_MODE", "debug"),
			AllowAnon: getEnvBoolOrDefault("ALLOW_ANON", true),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.AI.OpenAIKey == "" {
		return errors.ConfigInvalid("OPENAI_API_KEY is required")
	}
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Research.CacheTTL <= 0 {
		return errors.ConfigInvalid("RESEARCH_CACHE_TTL must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
