package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"lettings/internal/platform/logger"
	"lettings/internal/platform/net/middleware"
	"lettings/internal/platform/testkit"
)

// logBuf captures the root logger for the whole test binary; Init is
// once-only, so every test in this package shares it
var logBuf bytes.Buffer

func newStack(t *testing.T) http.Handler {
	t.Helper()
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &logBuf})

	m := chi.NewRouter()
	m.Use(middleware.Defaults()...)
	m.Use(middleware.Heartbeat("/ping"))
	m.Use(middleware.AccessLog)
	m.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return m
}

func TestAccessLogCarriesRequestID(t *testing.T) {
	h := newStack(t)
	logBuf.Reset()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	line := logBuf.String()
	testkit.MustContain(t, line, `"message":"request done"`)
	testkit.MustContain(t, line, `"request_id"`)
}

func TestHeartbeatAnswersWithoutLogging(t *testing.T) {
	h := newStack(t)
	logBuf.Reset()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from heartbeat, got %d", rec.Code)
	}
	if strings.Contains(logBuf.String(), "request done") {
		t.Fatalf("heartbeat must short-circuit before the access log, got %q", logBuf.String())
	}
}
