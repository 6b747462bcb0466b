// Package service contains the catalog workflows shared by both surfaces
package service

import (
	"context"
	"sort"

	"lettings/internal/platform/clock"
	pstrings "lettings/internal/platform/strings"
	"lettings/internal/services/catalog/domain"
	"lettings/internal/services/catalog/repo"
)

// Service is the catalog contract
type Service interface {
	domain.ReaderPort
	domain.WriterPort
}

// Svc implements the catalog over the sheet repository
type Svc struct {
	repo *repo.Sheet
	now  clock.Now
}

// New constructs the catalog service
func New(rows domain.Rows, now clock.Now) *Svc {
	if now == nil {
		now = clock.System()
	}
	return &Svc{repo: repo.NewSheet(rows), now: now}
}

// ListAll returns every listing in sheet order; ordering for the browse
// view is applied by Filter
func (s *Svc) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.ListAll(ctx)
}

// Table returns the raw sheet for the admin table view
func (s *Svc) Table(ctx context.Context) (domain.Table, error) {
	return s.repo.Table(ctx)
}

// Append stamps today's date on the draft and writes it through the
// store's append primitive. The date is set once and never mutated.
func (s *Svc) Append(ctx context.Context, d domain.Draft) (domain.Listing, error) {
	l := domain.Listing{
		Date:        s.now().Format("2006-01-02"),
		Title:       d.Title,
		Region:      d.Region,
		Price:       d.Price,
		PosterLink:  d.PosterLink,
		Description: d.Description,
		Rooms:       d.Rooms,
	}
	if err := s.repo.Append(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	return l, nil
}

// Filter narrows listings by the user's selections and then applies the
// canonical browse ordering. Empty sets leave a field unconstrained;
// MaxPrice <= 0 means no ceiling.
func Filter(ls []domain.Listing, f domain.FilterInput) []domain.Listing {
	out := make([]domain.Listing, 0, len(ls))
	for _, l := range ls {
		if !matchSet(f.Regions, l.Region) {
			continue
		}
		if !matchSet(f.Rooms, l.Rooms) {
			continue
		}
		if f.MaxPrice > 0 && l.Price > f.MaxPrice {
			continue
		}
		out = append(out, l)
	}
	Sort(out)
	return out
}

// Sort orders listings featured-first, newest-first; ties keep sheet order
func Sort(ls []domain.Listing) {
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].Featured != ls[j].Featured {
			return ls[i].Featured > ls[j].Featured
		}
		return ls[i].Date > ls[j].Date
	})
}

// Facets derives the filter-widget options from observed data.
// Unknown regions are still listed; only non-empty values enumerate.
func Facets(ls []domain.Listing) domain.Facets {
	return domain.Facets{
		Regions:      distinct(ls, func(l domain.Listing) string { return l.Region }),
		Rooms:        distinct(ls, func(l domain.Listing) string { return l.Rooms }),
		PriceFloor:   domain.PriceFloorGBP,
		PriceCeiling: domain.PriceCeilingGBP,
		PriceDefault: domain.PriceCeilingGBP,
	}
}

func matchSet(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if pstrings.Fold(s) == pstrings.Fold(v) {
			return true
		}
	}
	return false
}

func distinct(ls []domain.Listing, get func(domain.Listing) string) []string {
	seen := make(map[string]bool, len(ls))
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		v := get(l)
		if pstrings.Blank(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
