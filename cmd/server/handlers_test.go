package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/naglasak"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	store := naglasak.NewStore(
		naglasak.Entry{Key: "жена", Info: "b. f", Kind: naglasak.KindNoun, Translation: "woman"},
		naglasak.Entry{Key: "нож", Info: "a r=1 m in", Kind: naglasak.KindNoun},
		naglasak.Entry{Key: "глава", Info: "f. f", Kind: naglasak.KindNoun},
	)
	s := &server{dict: naglasak.NewDictionary(store)}
	return newHandler(s, []string{"https://example.org"}, true)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleDecline(t *testing.T) {
	rec := get(t, testHandler(t), "/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&latin=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var body declineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Declensions, 1)
	assert.Equal(t, "woman", body.Declensions[0].Entry.Translation)
	assert.Len(t, body.Declensions[0].Forms, 14)
	assert.Equal(t, "sg nom", body.Declensions[0].Forms[0].Label)
}

func TestHandleDeclineErrors(t *testing.T) {
	h := testHandler(t)
	tests := []struct {
		target string
		want   int
	}{
		{"/api/decline", http.StatusBadRequest},
		{"/api/decline?word=kuca", http.StatusNotFound},
		{"/api/decline?word=%D0%B3%D0%BB%D0%B0%D0%B2%D0%B0", http.StatusUnprocessableEntity},
		{"/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&variant=x", http.StatusUnprocessableEntity},
		{"/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&variant=1", http.StatusUnprocessableEntity},
		{"/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&reflex=ja", http.StatusUnprocessableEntity},
		{"/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&latin=maybe", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestHandleDeclineVariant(t *testing.T) {
	rec := get(t, testHandler(t), "/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&variant=0")
	require.Equal(t, http.StatusOK, rec.Code)
	var body declineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Declensions, 1)
	assert.Len(t, body.Declensions[0].Forms, 14)

	rec = get(t, testHandler(t), "/api/decline?word=%D0%B6%D0%B5%D0%BD%D0%B0&variant=1")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "жена has a single variant")
}

func TestHandleLookupAndSearch(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/api/lookup?word=%D0%BD%D0%BE%D0%B6")
	require.Equal(t, http.StatusOK, rec.Code)
	var lookup lookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lookup))
	require.Len(t, lookup.Entries, 1)
	assert.Equal(t, naglasak.KindNoun, lookup.Entries[0].Kind)

	rec = get(t, h, "/api/search?pattern=*a")
	require.Equal(t, http.StatusOK, rec.Code)
	var search searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &search))
	assert.Equal(t, []string{"глава", "жена"}, search.Keys)

	rec = get(t, h, "/api/search?pattern=zzz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pattern":"zzz","keys":[]}`, rec.Body.String())

	rec = get(t, h, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/api/analyze?form=zenama")
	require.Equal(t, http.StatusOK, rec.Code)
	var body analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Analyses)
	for _, a := range body.Analyses {
		assert.Equal(t, "жена", a.Entry)
	}

	rec = get(t, h, "/api/analyze?form=qqq")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{naglasak.ErrNotFound, http.StatusNotFound},
		{naglasak.ErrMalformed, http.StatusUnprocessableEntity},
		{naglasak.ErrUnimplementedParadigm, http.StatusUnprocessableEntity},
		{fmt.Errorf("ств: %w", naglasak.ErrNoAccentHost), http.StatusUnprocessableEntity},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lookup?word=x", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSAndMetrics(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?pattern=*", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/search?pattern=*", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "naglasak_http_requests_total")
}
