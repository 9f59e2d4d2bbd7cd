package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey indicates no credential was configured for the provider.
// It surfaces on first use, never at startup.
var ErrMissingAPIKey = errors.New("llm: api key not configured")

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of the chat history sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Request describes one streaming chat completion.
type Request struct {
	Messages  []Message
	MaxTokens int
}

// Fragment is one chunk of generated text. A fragment with Err set is
// terminal: the provider failed mid-stream and the channel closes after it.
type Fragment struct {
	Text string
	Err  error
}

// Streamer is the interface for communicating with an LLM. Errors opening
// the stream are returned directly; mid-stream errors are delivered via
// Fragment.Err. Implementations close the channel when the stream ends and
// stop producing when ctx is canceled.
type Streamer interface {
	Stream(ctx context.Context, req Request) (<-chan Fragment, error)
}
