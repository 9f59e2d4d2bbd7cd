package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds process-wide runtime configuration. It is read once at
// startup and is read-only afterwards.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Content extraction
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`

	// LLM
	LLMProvider  string `env:"LLM_PROVIDER" envDefault:"ollama"` // "ollama" (Cloud Ollama) or "openai"
	OllamaAPIKey string `env:"OLLAMA_API_KEY"`
	OllamaHost   string `env:"OLLAMA_HOST" envDefault:"https://ollama.com"`
	OpenAIKey    string `env:"OPENAI_API_KEY"`
	Model        string `env:"MODEL" envDefault:"gpt-oss:120b"`
	MaxTokens    int    `env:"MAX_TOKENS" envDefault:"3000"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

// APIKey returns the credential for the configured provider. Empty means
// no credential was supplied; startup tolerates that and the failure
// surfaces on first use.
func (c Config) APIKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIKey
	}
	return c.OllamaAPIKey
}

// Backend is the human-readable name of the configured inference backend.
func (c Config) Backend() string {
	if c.LLMProvider == "openai" {
		return "OpenAI"
	}
	return "Cloud Ollama"
}
