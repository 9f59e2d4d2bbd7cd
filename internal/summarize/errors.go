package summarize

import (
	"errors"
	"fmt"
	"net/http"

	"pagebrief/internal/extract"
)

// Error is a pipeline failure that occurred before the response stream
// opened. Status and Message translate directly to the boundary's JSON
// error shape; Details is optional supporting text.
type Error struct {
	Status  int
	Message string
	Details string
	err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.err }

// ErrURLRequired is returned when the request URL is empty after trimming.
var ErrURLRequired = &Error{
	Status:  http.StatusBadRequest,
	Message: "URL is required",
}

// ErrEmptyContent is returned when extraction succeeds but yields nothing.
var ErrEmptyContent = &Error{
	Status:  http.StatusBadRequest,
	Message: "Could not fetch website content",
}

// classifyFetch maps a classified extraction failure onto the boundary
// error shape. Each extract.Kind maps to exactly one message and status.
func classifyFetch(err error) *Error {
	var exErr *extract.Error
	if !errors.As(err, &exErr) {
		return &Error{
			Status:  http.StatusInternalServerError,
			Message: "An unexpected error occurred.",
			Details: err.Error(),
			err:     err,
		}
	}

	switch exErr.Kind {
	case extract.KindConnection:
		return &Error{
			Status:  http.StatusBadRequest,
			Message: "Unable to connect to the website. Please check the URL and your internet connection.",
			Details: "DNS lookup failed or connection refused.",
			err:     err,
		}
	case extract.KindTimeout:
		return &Error{
			Status:  http.StatusBadRequest,
			Message: "The request timed out. The website is taking too long to respond.",
			Details: "Connection timed out.",
			err:     err,
		}
	case extract.KindSchema:
		return &Error{
			Status:  http.StatusBadRequest,
			Message: "Invalid URL format. Please ensure the URL starts with http:// or https://",
			Details: "Missing URL schema.",
			err:     err,
		}
	case extract.KindUpstream:
		return &Error{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("The website returned an error: %d", exErr.StatusCode),
			Details: exErr.Error(),
			err:     err,
		}
	case extract.KindRequest:
		return &Error{
			Status:  http.StatusBadRequest,
			Message: "Failed to access the website.",
			Details: exErr.Error(),
			err:     err,
		}
	default:
		return &Error{
			Status:  http.StatusInternalServerError,
			Message: "An unexpected error occurred.",
			Details: exErr.Error(),
			err:     err,
		}
	}
}
