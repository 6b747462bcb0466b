package http_test

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "lettings/internal/platform/net/http"
	metahttp "lettings/internal/services/meta/http"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newRouter(d metahttp.Deps) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	metahttp.Register(r, d)
	return r.Mux()
}

func get(t *testing.T, h stdhttp.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newRouter(metahttp.Deps{ServiceName: "lettings-site", StartedAt: time.Now()})

	rec := get(t, h, "/health")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env struct {
		Data metahttp.HealthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.Data.OK || env.Data.Service != "lettings-site" {
		t.Fatalf("unexpected health payload: %+v", env.Data)
	}
}

func TestReadyReportsPerDependency(t *testing.T) {
	h := newRouter(metahttp.Deps{
		ServiceName: "lettings-admin",
		StartedAt:   time.Now(),
		Rows:        pinger{},
		Images:      pinger{err: errors.New("credentials rejected")},
	})

	rec := get(t, h, "/ready")
	var env struct {
		Data metahttp.ReadyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Status != "fail" {
		t.Fatalf("expected fail, got %q", env.Data.Status)
	}
	if len(env.Data.Checks) != 2 || env.Data.Checks[0].Status != "ok" || env.Data.Checks[1].Status != "fail" {
		t.Fatalf("unexpected checks: %+v", env.Data.Checks)
	}
}

func TestReadySkipsAbsentStores(t *testing.T) {
	h := newRouter(metahttp.Deps{ServiceName: "lettings-site", StartedAt: time.Now(), Rows: pinger{}})

	rec := get(t, h, "/ready")
	var env struct {
		Data metahttp.ReadyResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Status != "ok" {
		t.Fatalf("skipped store must not fail readiness, got %q", env.Data.Status)
	}
	if env.Data.Checks[1].Status != "skipped" {
		t.Fatalf("expected images skipped, got %+v", env.Data.Checks[1])
	}
}

func TestVersion(t *testing.T) {
	h := newRouter(metahttp.Deps{ServiceName: "lettings-site", StartedAt: time.Now()})

	rec := get(t, h, "/version")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env struct {
		Data struct {
			Service string `json:"service"`
			Version string `json:"version"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Service != "lettings-site" || env.Data.Version == "" {
		t.Fatalf("unexpected version payload: %+v", env.Data)
	}
}
