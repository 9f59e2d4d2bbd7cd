package extract

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchExtractsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>
			<head><title>Example Domain</title><style>body { color: red }</style></head>
			<body>
				<script>console.log("hidden")</script>
				<h1>Example   Domain</h1>
				<p>This domain is for use in examples.</p>
			</body>
		</html>`))
	}))
	defer srv.Close()

	e := NewWebExtractor(5 * time.Second)
	text, err := e.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Example Domain")
	assert.Contains(t, text, "This domain is for use in examples.")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Example   Domain", "whitespace should be collapsed")
}

func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewWebExtractor(5 * time.Second)
	_, err := e.Fetch(context.Background(), srv.URL)

	var exErr *Error
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, KindUpstream, exErr.Kind)
	assert.Equal(t, http.StatusNotFound, exErr.StatusCode)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	e := NewWebExtractor(20 * time.Millisecond)
	_, err := e.Fetch(context.Background(), srv.URL)

	var exErr *Error
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, KindTimeout, exErr.Kind)
}

func TestFetchConnectionRefused(t *testing.T) {
	// Grab a port nothing listens on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	e := NewWebExtractor(5 * time.Second)
	_, err = e.Fetch(context.Background(), "http://"+addr)

	var exErr *Error
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, KindConnection, exErr.Kind)
}

func TestFetchBadScheme(t *testing.T) {
	e := NewWebExtractor(5 * time.Second)

	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "example.com"},
		{"ftp scheme", "ftp://example.com"},
		{"unparseable", "http://exa mple.com/%zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Fetch(context.Background(), tt.url)
			var exErr *Error
			require.ErrorAs(t, err, &exErr)
			assert.Equal(t, KindSchema, exErr.Kind)
		})
	}
}

func TestClassifyFallsBackToRequest(t *testing.T) {
	exErr := classify(errors.New("stream error: protocol violated"))
	assert.Equal(t, KindRequest, exErr.Kind)
}
