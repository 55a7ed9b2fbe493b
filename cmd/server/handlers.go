package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/cours-de-latin/uktag"
	"github.com/cours-de-latin/uktag/internal/app"
	"github.com/cours-de-latin/uktag/internal/config"
)

// ---- JSON response types ------------------------------------------------

type tagWordsRequest struct {
	Words []string `json:"words"`
}

type tagWordsResponse struct {
	Results []app.WordResult `json:"results"`
}

type healthResponse struct {
	Status string `json:"status"`
	Forms  int    `json:"forms"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestIDFromCtx(r.Context())})
}

// ---- handlers -----------------------------------------------------------

func handleTagWord(e *app.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, r, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		res, err := app.TagWord(e.Tagger, word)
		if err != nil {
			logger.ErrorContext(r.Context(), "tag word", slog.String("word", word), slog.String("error", err.Error()))
			writeError(w, r, http.StatusInternalServerError, "tagging failed")
			return
		}
		status := http.StatusOK
		if len(res.Readings) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, res)
	}
}

func handleTagWords(e *app.Engine, maxWords int, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, r, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body tagWordsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Words) == 0 {
			writeError(w, r, http.StatusBadRequest, "body must be JSON with a non-empty 'words' array")
			return
		}
		if len(body.Words) > maxWords {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("at most %d words per request", maxWords))
			return
		}

		results, err := app.TagWords(r.Context(), e.Tagger, body.Words)
		if err != nil {
			logger.ErrorContext(r.Context(), "tag words", slog.Int("words", len(body.Words)), slog.String("error", err.Error()))
			writeError(w, r, http.StatusInternalServerError, "tagging failed")
			return
		}
		writeJSON(w, http.StatusOK, tagWordsResponse{Results: results})
	}
}

func handleParseTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, r, http.StatusMethodNotAllowed, "GET required")
			return
		}
		tag := r.URL.Query().Get("tag")
		if tag == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'tag' query parameter")
			return
		}
		info, err := app.DescribeTag(tag)
		if errors.Is(err, uktag.ErrMalformedTag) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func handleHealth(e *app.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Forms: e.Dictionary().Len()})
	}
}

// newHandler builds the routed and wrapped HTTP handler.
func newHandler(e *app.Engine, cfg *config.Config, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tag/words", handleTagWords(e, cfg.Server.MaxBatchWords, logger))
	mux.HandleFunc("/api/tag/parse", handleParseTag())
	mux.HandleFunc("/api/tag", handleTagWord(e, logger))
	mux.HandleFunc("/healthz", handleHealth(e))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedMethods: cfg.CORS.Methods(),
		AllowedHeaders: cfg.CORS.Headers(),
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         cfg.CORS.MaxAge,
	})

	return chain(mux, recovery(logger), accessLog(logger), c.Handler, requestID)
}
