package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStreamer is a mock implementation of Streamer using testify/mock.
type MockStreamer struct {
	mock.Mock
}

func (m *MockStreamer) Stream(ctx context.Context, req Request) (<-chan Fragment, error) {
	args := m.Called(ctx, req)
	if ch := args.Get(0); ch != nil {
		return ch.(<-chan Fragment), args.Error(1)
	}
	return nil, args.Error(1)
}

// FragmentChannel turns a fixed fragment sequence into a closed channel,
// for wiring mock expectations.
func FragmentChannel(fragments ...Fragment) <-chan Fragment {
	ch := make(chan Fragment, len(fragments))
	for _, f := range fragments {
		ch <- f
	}
	close(ch)
	return ch
}
