package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"pagebrief/internal/config"
	"pagebrief/internal/extract"
	"pagebrief/internal/llm"
	"pagebrief/internal/logger"
	"pagebrief/internal/summarize"
)

// Deps bundles the runtime dependencies of the server.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Pipeline *summarize.Pipeline
}

// Build loads env, config, and shared components. A missing API credential
// is only a warning here; the failure surfaces on the first summarize call.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.APIKey() == "" {
		log.Warn("no API key configured; summarize requests will fail", "backend", cfg.Backend())
	}

	streamer, err := buildStreamer(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	extractor := extract.NewWebExtractor(cfg.FetchTimeout)

	return Deps{
		Config:   cfg,
		Log:      log,
		Pipeline: summarize.NewPipeline(extractor, streamer, cfg.MaxTokens, log),
	}, nil
}

func buildStreamer(cfg config.Config, log *slog.Logger) (llm.Streamer, error) {
	switch cfg.LLMProvider {
	case "ollama":
		streamer, err := llm.NewOllamaStreamer(cfg.OllamaHost, cfg.OllamaAPIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Ollama client: %w", err)
		}
		log.Info("using Cloud Ollama", "host", cfg.OllamaHost, "model", cfg.Model)
		return streamer, nil
	case "openai":
		streamer, err := llm.NewOpenAIStreamer(cfg.OpenAIKey, openai.ChatModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI", "model", cfg.Model)
		return streamer, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: ollama, openai)", cfg.LLMProvider)
	}
}
