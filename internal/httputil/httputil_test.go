package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		details string
		want    map[string]string
	}{
		{
			name:    "with details",
			status:  http.StatusBadRequest,
			message: "Failed to access the website.",
			details: "broken pipe",
			want:    map[string]string{"error": "Failed to access the website.", "details": "broken pipe"},
		},
		{
			name:    "details omitted when empty",
			status:  http.StatusBadRequest,
			message: "URL is required",
			want:    map[string]string{"error": "URL is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.status, tt.message, tt.details)

			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			var got map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatorRequired(t *testing.T) {
	type payload struct {
		URL string `validate:"required"`
	}

	assert.Error(t, Validator.Struct(&payload{}))
	assert.NoError(t, Validator.Struct(&payload{URL: "example.com"}))
}

func TestRecovererCatchesPanic(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Server error: boom", got["error"])
}
