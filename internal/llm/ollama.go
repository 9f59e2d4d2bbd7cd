package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	ollama "github.com/ollama/ollama/api"
)

const ollamaClientTimeout = 5 * time.Minute

// OllamaStreamer streams chat completions from a Cloud Ollama host.
type OllamaStreamer struct {
	client *ollama.Client
	model  string
	apiKey string
}

// bearerTransport adds the Authorization header to every outgoing request.
type bearerTransport struct {
	key  string
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.key)
	return t.base.RoundTrip(clone)
}

// NewOllamaStreamer builds a streamer against host (e.g. https://ollama.com).
// An empty apiKey is tolerated; Stream reports ErrMissingAPIKey when called.
func NewOllamaStreamer(host, apiKey, model string) (*OllamaStreamer, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host: %w", err)
	}
	httpClient := &http.Client{
		Timeout: ollamaClientTimeout,
		Transport: &bearerTransport{
			key:  apiKey,
			base: http.DefaultTransport,
		},
	}
	return &OllamaStreamer{
		client: ollama.NewClient(base, httpClient),
		model:  model,
		apiKey: apiKey,
	}, nil
}

func (s *OllamaStreamer) Stream(ctx context.Context, req Request) (<-chan Fragment, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OLLAMA_API_KEY environment variable not set: %w", ErrMissingAPIKey)
	}

	messages := make([]ollama.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, ollama.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	stream := true
	chatReq := &ollama.ChatRequest{
		Model:    s.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"num_predict": req.MaxTokens,
		},
	}

	out := make(chan Fragment)
	go func() {
		defer close(out)
		err := s.client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
			if resp.Message.Content == "" {
				return nil
			}
			select {
			case out <- Fragment{Text: resp.Message.Content}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil && ctx.Err() == nil {
			select {
			case out <- Fragment{Err: fmt.Errorf("ollama chat: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}
