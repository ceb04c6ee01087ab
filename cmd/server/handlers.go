package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/cours-de-latin/naglasak"
	"github.com/cours-de-latin/naglasak/internal/metrics"
)

// ---- JSON response types ------------------------------------------------

type declineResponse struct {
	Word        string                 `json:"word"`
	Declensions []naglasak.Declension `json:"declensions"`
}

type lookupResponse struct {
	Word    string           `json:"word"`
	Entries []naglasak.Entry `json:"entries"`
}

type searchResponse struct {
	Pattern string   `json:"pattern"`
	Keys    []string `json:"keys"`
}

type analyzeResponse struct {
	Form     string              `json:"form"`
	Analyses []naglasak.Analysis `json:"analyses"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ---- helpers ------------------------------------------------------------

type ctxKey struct{}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r)})
}

// statusFor maps library errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, naglasak.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, naglasak.ErrMalformed),
		errors.Is(err, naglasak.ErrUnimplementedParadigm),
		errors.Is(err, naglasak.ErrNoAccentHost):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, naglasak.ErrNotFound):
		return "not_found"
	case errors.Is(err, naglasak.ErrMalformed):
		return "malformed"
	case errors.Is(err, naglasak.ErrUnimplementedParadigm):
		return "unimplemented"
	case errors.Is(err, naglasak.ErrNoAccentHost):
		return "no_accent_host"
	}
	return "other"
}

// ---- handlers -----------------------------------------------------------

type server struct {
	dict     *naglasak.Dictionary
	defaults naglasak.Options
}

// options overlays the query parameters variant, reflex and latin on the
// configured defaults.
func (s *server) options(r *http.Request) (naglasak.Options, error) {
	opts := s.defaults
	q := r.URL.Query()
	if v := q.Get("variant"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("variant %q: %w", v, naglasak.ErrMalformed)
		}
		opts.Variant = naglasak.VariantOption(n)
	}
	if v := q.Get("reflex"); v != "" {
		rf, err := naglasak.ParseReflex(v)
		if err != nil {
			return opts, err
		}
		opts.Reflex = rf
	}
	if v := q.Get("latin"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("latin %q: %w", v, naglasak.ErrMalformed)
		}
		opts.Latin = b
	}
	return opts, nil
}

func (s *server) handleDecline(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	decls, err := s.dict.Decline(word, opts)
	if err != nil {
		metrics.SynthesisErrors.WithLabelValues(errorClass(err)).Inc()
		slog.Warn("decline failed", "word", word, "request_id", requestID(r), "error", err)
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	n := 0
	for _, d := range decls {
		for _, c := range d.Forms {
			n += len(c.Forms)
		}
	}
	metrics.FormsGenerated.Add(float64(n))
	writeJSON(w, http.StatusOK, declineResponse{Word: word, Declensions: decls})
}

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	entries, err := s.dict.Lookup(word)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{Word: word, Entries: entries})
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'pattern' query parameter")
		return
	}
	keys, err := s.dict.Search(pattern)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Pattern: pattern, Keys: keys})
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	form := r.URL.Query().Get("form")
	if form == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'form' query parameter")
		return
	}
	as, err := s.dict.Analyze(form)
	if err != nil {
		writeError(w, r, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Form: form, Analyses: as})
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// instrument accepts GET only, tags the request with an id and records
// its status and latency.
func instrument(endpoint string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		if r.Method != http.MethodGet {
			writeError(rec, r, http.StatusMethodNotAllowed, "GET required")
		} else {
			h(rec, r)
		}

		elapsed := time.Since(start)
		metrics.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
		metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		slog.Debug("request", "endpoint", endpoint, "status", rec.status,
			"duration", elapsed, "request_id", id)
	})
}

func newHandler(s *server, allowedOrigins []string, withMetrics bool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/decline", instrument("decline", s.handleDecline))
	mux.Handle("/api/lookup", instrument("lookup", s.handleLookup))
	mux.Handle("/api/search", instrument("search", s.handleSearch))
	mux.Handle("/api/analyze", instrument("analyze", s.handleAnalyze))
	if withMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(mux)
}
