package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := middleware.TrimSlash()(next)

	tests := []struct {
		name     string
		target   string
		status   int
		location string
	}{
		{"root", "/", http.StatusNoContent, ""},
		{"no slash", "/users/@me", http.StatusNoContent, ""},
		{"trailing slash", "/users/@me/", http.StatusMovedPermanently, "/users/@me"},
		{"many slashes", "/bots///", http.StatusMovedPermanently, "/bots"},
		{"query kept", "/channels/abc/messages/?limit=5", http.StatusMovedPermanently, "/channels/abc/messages?limit=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(middleware.RequestIDHeader))
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("assigns id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		id := rec.Header().Get(middleware.RequestIDHeader)
		require.Len(t, id, 36)
		assert.Contains(t, buf.String(), `"status":418`)
		assert.Contains(t, buf.String(), id)
	})

	t.Run("keeps id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := middleware.NewStatusWriter(rec)
	assert.Equal(t, http.StatusOK, sw.Status)

	sw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, sw.Status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Same(t, rec, sw.Unwrap())
}
