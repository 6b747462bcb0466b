// Package service implements the browse workflows
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	stdhttp "net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	perr "lettings/internal/platform/errors"
	"lettings/internal/platform/logger"
	catdomain "lettings/internal/services/catalog/domain"
	catalog "lettings/internal/services/catalog/service"
	"lettings/internal/services/site/domain"
)

// maxPosterBytes caps a remote poster fetch
const maxPosterBytes = 20 << 20

// Service is the browse-path contract
type Service interface {
	// Browse returns cards narrowed by the visitor's filter selections
	Browse(ctx context.Context, f catdomain.FilterInput) ([]domain.Card, error)

	// Facets returns the filter-widget options derived from the data
	Facets(ctx context.Context) (catdomain.Facets, error)

	// Detail returns the full view for the listing at the given sheet row
	Detail(ctx context.Context, row int) (domain.Detail, error)

	// Poster resolves the listing's poster to servable bytes. Inline data
	// URLs decode locally; remote links are fetched. Any failure is a
	// Download error the transport swallows.
	Poster(ctx context.Context, row int) (domain.Poster, error)
}

// Svc serves the public site off the shared catalog
type Svc struct {
	catalog catalog.Service
	contact domain.Contact
	client  *stdhttp.Client
	gbp     *message.Printer
	log     *logger.Logger
}

// New constructs the site service; a nil client gets a sane default
func New(c catalog.Service, contact domain.Contact, client *stdhttp.Client) *Svc {
	if c == nil {
		panic("site service requires a catalog")
	}
	if client == nil {
		client = &stdhttp.Client{Timeout: 15 * time.Second}
	}
	return &Svc{
		catalog: c,
		contact: contact,
		client:  client,
		gbp:     message.NewPrinter(language.BritishEnglish),
		log:     logger.Named("site"),
	}
}

// Browse implements Service
func (s *Svc) Browse(ctx context.Context, f catdomain.FilterInput) ([]domain.Card, error) {
	ls, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := catalog.Filter(ls, f)
	cards := make([]domain.Card, len(filtered))
	for i, l := range filtered {
		cards[i] = s.card(l)
	}
	return cards, nil
}

// Facets implements Service
func (s *Svc) Facets(ctx context.Context) (catdomain.Facets, error) {
	ls, err := s.catalog.ListAll(ctx)
	if err != nil {
		return catdomain.Facets{}, err
	}
	return catalog.Facets(ls), nil
}

// Detail implements Service
func (s *Svc) Detail(ctx context.Context, row int) (domain.Detail, error) {
	l, err := s.find(ctx, row)
	if err != nil {
		return domain.Detail{}, err
	}
	return domain.Detail{
		Card:        s.card(l),
		Description: l.Description,
		MapsURL:     domain.MapsSearchURL(l.Title),
		WhatsAppURL: domain.WhatsAppURL(s.contact.Phone, l.Title),
		Email:       s.contact.Email,
	}, nil
}

// Poster implements Service
func (s *Svc) Poster(ctx context.Context, row int) (domain.Poster, error) {
	l, err := s.find(ctx, row)
	if err != nil {
		return domain.Poster{}, err
	}
	switch catdomain.PosterKindOf(l.PosterLink) {
	case catdomain.PosterInline:
		return decodeDataURL(l.PosterLink)
	case catdomain.PosterRemote:
		return s.fetch(ctx, l.PosterLink)
	}
	return domain.Poster{}, perr.Downloadf("no poster for row %d", row)
}

func (s *Svc) find(ctx context.Context, row int) (catdomain.Listing, error) {
	ls, err := s.catalog.ListAll(ctx)
	if err != nil {
		return catdomain.Listing{}, err
	}
	for _, l := range ls {
		if l.Row == row {
			return l, nil
		}
	}
	return catdomain.Listing{}, perr.NotFoundf("no listing at row %d", row)
}

func (s *Svc) card(l catdomain.Listing) domain.Card {
	kind := catdomain.PosterKindOf(l.PosterLink)
	c := domain.Card{
		Row:          l.Row,
		Title:        l.Title,
		Region:       l.Region,
		Rooms:        l.Rooms,
		Price:        l.Price,
		PriceDisplay: s.gbp.Sprintf("£%d pcm", l.Price),
		Featured:     l.Featured != 0,
		PosterKind:   string(kind),
	}
	switch kind {
	case catdomain.PosterRemote:
		c.PosterURL = l.PosterLink
	case catdomain.PosterInline:
		// inline posters are served through the download endpoint
		c.PosterURL = fmt.Sprintf("/api/v1/listings/%d/poster", l.Row)
	}
	return c
}

// decodeDataURL splits on the first comma and base64-decodes the tail
func decodeDataURL(link string) (domain.Poster, error) {
	idx := strings.Index(link, ",")
	if idx < 0 {
		return domain.Poster{}, perr.Downloadf("malformed data url")
	}
	data, err := base64.StdEncoding.DecodeString(link[idx+1:])
	if err != nil {
		return domain.Poster{}, perr.Wrap(err, perr.ErrorCodeDownload, "decode data url")
	}
	return domain.Poster{Data: data, ContentType: "image/jpeg", Filename: "poster.jpg"}, nil
}

func (s *Svc) fetch(ctx context.Context, link string) (domain.Poster, error) {
	req, err := stdhttp.NewRequestWithContext(ctx, stdhttp.MethodGet, link, nil)
	if err != nil {
		return domain.Poster{}, perr.Wrap(err, perr.ErrorCodeDownload, "build poster request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Poster{}, perr.Wrap(err, perr.ErrorCodeDownload, "fetch poster")
	}
	defer resp.Body.Close()

	if resp.StatusCode != stdhttp.StatusOK {
		return domain.Poster{}, perr.Downloadf("fetch poster: upstream status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPosterBytes))
	if err != nil {
		return domain.Poster{}, perr.Wrap(err, perr.ErrorCodeDownload, "read poster body")
	}
	if len(data) == 0 {
		return domain.Poster{}, perr.Downloadf("fetch poster: empty body")
	}

	s.log.Debug().Str("url", link).Int("bytes", len(data)).Msg("poster fetched")
	return domain.Poster{Data: data, ContentType: "image/jpeg", Filename: "poster.jpg"}, nil
}
