package extract

import (
	"context"
	"fmt"
)

// Kind is a closed set of extraction failure categories. Adapters classify
// their library's errors into these kinds so callers never depend on a
// particular HTTP or parsing library's error taxonomy.
type Kind int

const (
	// KindConnection covers DNS failures and refused connections.
	KindConnection Kind = iota
	// KindTimeout covers deadline-exceeded fetches.
	KindTimeout
	// KindSchema covers URLs whose scheme is missing or unsupported.
	KindSchema
	// KindUpstream covers HTTP error statuses returned by the target site.
	KindUpstream
	// KindRequest covers any other network or transport fault.
	KindRequest
	// KindUnexpected covers faults outside the network path, such as a
	// failure while reading or parsing the response body.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindSchema:
		return "schema"
	case KindUpstream:
		return "upstream"
	case KindRequest:
		return "request"
	default:
		return "unexpected"
	}
}

// Error is a classified extraction failure. StatusCode is set only for
// KindUpstream.
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream {
		return fmt.Sprintf("extract: upstream status %d", e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("extract: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Extractor turns a URL into the page's plain text.
type Extractor interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}
