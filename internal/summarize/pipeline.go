package summarize

import (
	"context"
	"log/slog"
	"strings"

	"pagebrief/internal/extract"
	"pagebrief/internal/llm"
)

// Pipeline orchestrates one summarization: normalize the URL, extract the
// page text, build the prompt pair, then stream the model's summary.
type Pipeline struct {
	extractor extract.Extractor
	streamer  llm.Streamer
	maxTokens int
	log       *slog.Logger
}

func NewPipeline(extractor extract.Extractor, streamer llm.Streamer, maxTokens int, log *slog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		streamer:  streamer,
		maxTokens: maxTokens,
		log:       log,
	}
}

// NormalizeURL trims the raw URL and injects a https:// scheme when none is
// present. An empty result fails with ErrURLRequired; any deeper validation
// is left to the extractor.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrURLRequired
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	return trimmed, nil
}

// Run executes the pipeline for rawURL. Failures up to and including
// extraction are returned synchronously as *Error, before any fragment
// channel exists; the caller can still answer with structured JSON.
//
// On success the returned channel carries the model's output in arrival
// order. The inference stream is opened lazily by the producing goroutine,
// so every inference-side fault, a missing credential included, arrives as
// a terminal Fragment with Err set. Production stops when ctx is canceled.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (<-chan llm.Fragment, error) {
	pageURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	content, err := p.extractor.Fetch(ctx, pageURL)
	if err != nil {
		perr := classifyFetch(err)
		p.log.Warn("extraction failed", "url", pageURL, "status", perr.Status, "err", err)
		return nil, perr
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	prompt := BuildPrompt(content)
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompt.System},
			{Role: llm.RoleUser, Content: prompt.User},
		},
		MaxTokens: p.maxTokens,
	}

	out := make(chan llm.Fragment)
	go func() {
		defer close(out)

		fragments, err := p.streamer.Stream(ctx, req)
		if err != nil {
			p.log.Warn("inference stream failed to open", "url", pageURL, "err", err)
			select {
			case out <- llm.Fragment{Err: err}:
			case <-ctx.Done():
			}
			return
		}

		for frag := range fragments {
			select {
			case out <- frag:
			case <-ctx.Done():
				return
			}
			if frag.Err != nil {
				p.log.Warn("inference stream failed", "url", pageURL, "err", frag.Err)
				return
			}
		}
	}()
	return out, nil
}
