package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "lettings/internal/platform/errors"
	pnet "lettings/internal/platform/net"
	phttp "lettings/internal/platform/net/http"
)

func serve(t *testing.T, resp phttp.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	phttp.Handle(func(*stdhttp.Request) phttp.Response { return resp })(rec, req)
	return rec
}

func TestOKWrapsEnvelope(t *testing.T) {
	rec := serve(t, phttp.OK(map[string]string{"hello": "world"}))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != 200 || env.Status != "OK" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestEnvelopeCarriesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-123"))

	phttp.Handle(func(*stdhttp.Request) phttp.Response { return phttp.OK(nil) })(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.RequestID != "req-123" {
		t.Fatalf("expected request id propagated, got %q", env.RequestID)
	}
}

func TestErrorDerivesStatusFromCode(t *testing.T) {
	rec := serve(t, phttp.Error(perr.StoreUnavailablef("sheet gone")))
	if rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodeStoreUnavailable || env.Error == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestNoContentHasEmptyBody(t *testing.T) {
	rec := serve(t, phttp.NoContent())
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must not carry a body, got %q", rec.Body.String())
	}
}

func TestBytesBypassesEnvelope(t *testing.T) {
	rec := serve(t, phttp.Bytes([]byte{1, 2, 3}, "image/jpeg", `attachment; filename="poster.jpg"`))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", got)
	}
	if rec.Body.Len() != 3 {
		t.Fatalf("expected raw bytes, got %q", rec.Body.String())
	}
}
