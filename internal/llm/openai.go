package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIStreamer streams chat completions from the OpenAI API.
type OpenAIStreamer struct {
	client openai.Client
	model  openai.ChatModel
	apiKey string
}

// NewOpenAIStreamer builds a streamer against api.openai.com. An empty
// apiKey is tolerated; Stream reports ErrMissingAPIKey when called.
func NewOpenAIStreamer(apiKey string, model openai.ChatModel) (*OpenAIStreamer, error) {
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	return &OpenAIStreamer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		apiKey: apiKey,
	}, nil
}

func (s *OpenAIStreamer) Stream(ctx context.Context, req Request) (<-chan Fragment, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set: %w", ErrMissingAPIKey)
	}

	params := openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: buildMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	stream := s.client.Chat.Completions.NewStreaming(ctx, params)

	out := make(chan Fragment)
	go func() {
		defer close(out)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case out <- Fragment{Text: chunk.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			select {
			case out <- Fragment{Err: fmt.Errorf("openai chat: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

func buildMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		default:
			params = append(params, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		}
	}
	return params
}
