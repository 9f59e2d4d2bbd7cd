package main

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pagebrief/internal/app"
	"pagebrief/internal/httputil"
	"pagebrief/internal/summarize"
)

//go:embed index.html
var indexPage []byte

type summarizeRequest struct {
	URL string `json:"url" validate:"required"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Get("/", indexHandler())
	r.Post("/api/summarize", summarizeHandler(deps))
	r.Get("/api/health", healthHandler(deps))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("server listening",
		"addr", addr,
		"backend", deps.Config.Backend(),
		"model", deps.Config.Model,
		"api_key_found", deps.Config.APIKey() != "",
	)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexPage)
	}
}

// summarizeHandler runs the pipeline and relays its output. Errors have two
// surfaces: until the pipeline returns a fragment channel the response is
// still ours and failures become JSON with a status code; once the 200 and
// text/plain header have gone out, any fault can only be appended to the
// body as an "Error: ..." line.
func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "URL is required", "")
			return
		}

		fragments, err := deps.Pipeline.Run(r.Context(), req.URL)
		if err != nil {
			var perr *summarize.Error
			if errors.As(err, &perr) {
				httputil.WriteError(w, perr.Status, perr.Message, perr.Details)
				return
			}
			httputil.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Server error: %s", err), "")
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		flusher, canFlush := w.(http.Flusher)

		for frag := range fragments {
			if frag.Err != nil {
				_, _ = fmt.Fprintf(w, "Error: %s", frag.Err)
				if canFlush {
					flusher.Flush()
				}
				return
			}
			if _, err := w.Write([]byte(frag.Text)); err != nil {
				// Caller went away; the request context cancellation
				// stops the producer.
				deps.Log.Debug("client disconnected mid-stream", "err", err)
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
	}
}

func healthHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiStatus := "configured"
		if deps.Config.APIKey() == "" {
			apiStatus = "missing_key"
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":     "ok",
			"model":      deps.Config.Model,
			"backend":    deps.Config.Backend(),
			"api_status": apiStatus,
		})
	}
}
