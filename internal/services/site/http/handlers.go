// Package http provides http transport for the public browse path
package http

import (
	"fmt"
	stdhttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	perr "lettings/internal/platform/errors"
	phttp "lettings/internal/platform/net/http"
	catdomain "lettings/internal/services/catalog/domain"
	svc "lettings/internal/services/site/service"
)

// Register mounts the browse endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Get("/listings", phttp.Handle(h.browse))
	r.Get("/listings/facets", phttp.Handle(h.facets))
	r.Get("/listings/{row}", phttp.Handle(h.detail))
	r.Get("/listings/{row}/poster", phttp.Handle(h.poster))
}

type handlers struct{ svc svc.Service }

// swagger:route GET /listings Listings browseListings
// @Summary Browse listings
// @Tags Listings
// @Produce json
// @Param region query []string false "Region filter, repeatable"
// @Param rooms query []string false "Rooms filter, repeatable"
// @Param max_price query int false "Monthly price ceiling in GBP"
// @Success 200 {array} domain.Card "cards"
// @Router /listings [get]
func (h *handlers) browse(r *stdhttp.Request) phttp.Response {
	f, err := parseFilter(r)
	if err != nil {
		return phttp.Error(err)
	}
	cards, err := h.svc.Browse(r.Context(), f)
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(cards)
}

// swagger:route GET /listings/facets Listings listingFacets
// @Summary Filter options observed in the data
// @Tags Listings
// @Produce json
// @Success 200 {object} any "facets"
// @Router /listings/facets [get]
func (h *handlers) facets(r *stdhttp.Request) phttp.Response {
	f, err := h.svc.Facets(r.Context())
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(f)
}

// swagger:route GET /listings/{row} Listings listingDetail
// @Summary Listing detail with contact deep links
// @Tags Listings
// @Produce json
// @Param row path int true "Sheet row of the listing"
// @Success 200 {object} domain.Detail "detail"
// @Router /listings/{row} [get]
func (h *handlers) detail(r *stdhttp.Request) phttp.Response {
	row, err := rowParam(r)
	if err != nil {
		return phttp.Error(err)
	}
	d, err := h.svc.Detail(r.Context(), row)
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(d)
}

// swagger:route GET /listings/{row}/poster Listings listingPoster
// @Summary Download the listing poster
// @Tags Listings
// @Produce octet-stream
// @Param row path int true "Sheet row of the listing"
// @Success 200 {file} binary "poster bytes"
// @Success 204 "poster unavailable"
// @Router /listings/{row}/poster [get]
func (h *handlers) poster(r *stdhttp.Request) phttp.Response {
	row, err := rowParam(r)
	if err != nil {
		return phttp.Error(err)
	}
	p, err := h.svc.Poster(r.Context(), row)
	if err != nil {
		// a missing or unfetchable poster is not an error to the visitor
		if perr.IsCode(err, perr.ErrorCodeDownload) {
			return phttp.NoContent()
		}
		return phttp.Error(err)
	}
	disposition := fmt.Sprintf("attachment; filename=%q", p.Filename)
	return phttp.Bytes(p.Data, p.ContentType, disposition)
}

func parseFilter(r *stdhttp.Request) (catdomain.FilterInput, error) {
	q := r.URL.Query()
	f := catdomain.FilterInput{
		Regions: trimmed(q["region"]),
		Rooms:   trimmed(q["rooms"]),
	}
	if v := strings.TrimSpace(q.Get("max_price")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return f, perr.WithField(perr.Validationf("max_price must be a whole number"), "max_price")
		}
		f.MaxPrice = p
	}
	return f, nil
}

func trimmed(vs []string) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func rowParam(r *stdhttp.Request) (int, error) {
	raw := chi.URLParam(r, "row")
	row, err := strconv.Atoi(raw)
	if err != nil || row < 1 {
		return 0, perr.InvalidArgf("row must be a positive number")
	}
	return row, nil
}
