package http_test

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"lettings/internal/platform/clock"
	phttp "lettings/internal/platform/net/http"
	catalog "lettings/internal/services/catalog/service"
	sitedomain "lettings/internal/services/site/domain"
	sitehttp "lettings/internal/services/site/http"
	sitesvc "lettings/internal/services/site/service"
)

type fakeRows struct{ data [][]string }

func (f *fakeRows) ReadAll(context.Context, string) ([][]string, error)  { return f.data, nil }
func (f *fakeRows) Append(context.Context, string, []string) error       { return nil }
func (f *fakeRows) ReplaceAll(context.Context, string, [][]string) error { return nil }

func newRouter(rows *fakeRows) stdhttp.Handler {
	cat := catalog.New(rows, clock.System())
	contact := sitedomain.Contact{Phone: "+44 7700 900123", Email: "lettings@example.co.uk"}
	r := phttp.AdaptChi(chi.NewRouter())
	sitehttp.Register(r, sitesvc.New(cat, contact, nil))
	return r.Mux()
}

func seed() *fakeRows {
	return &fakeRows{data: [][]string{
		{"date", "title", "region", "price", "poster-link", "description", "rooms", "is_featured"},
		{"2026-08-01", "Lexington Gardens", "West London", "3358", "data:image/jpeg;base64,aGVsbG8=", "Bright two-bed", "2-bed", "1"},
		{"2026-08-02", "Mare Street Loft", "East London", "2100", "", "", "1-bed", ""},
	}}
}

func get(t *testing.T, h stdhttp.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBrowseFiltersByQuery(t *testing.T) {
	h := newRouter(seed())

	rec := get(t, h, "/listings?region=East+London")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(env.Data) != 1 || env.Data[0].Title != "Mare Street Loft" {
		t.Fatalf("unexpected cards: %+v", env.Data)
	}
}

func TestBrowseBadMaxPriceIs400(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings?max_price=cheap")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestFacetsEndpoint(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/facets")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data struct {
			Regions []string `json:"regions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(env.Data.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %v", env.Data.Regions)
	}
}

func TestDetailEndpoint(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/2")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data struct {
			Title   string `json:"title"`
			MapsURL string `json:"maps_url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Title != "Lexington Gardens" || env.Data.MapsURL == "" {
		t.Fatalf("unexpected detail: %+v", env.Data)
	}
}

func TestDetailUnknownRowIs404(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/99")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDetailNonNumericRowIs422(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/abc")
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPosterServesInlineBytes(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/2/poster")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Fatalf("expected image/jpeg, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="poster.jpg"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if rec.Body.String() != "hello" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestPosterUnavailableIs204(t *testing.T) {
	rec := get(t, newRouter(seed()), "/listings/3/poster")
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must carry no body, got %q", rec.Body.String())
	}
}
