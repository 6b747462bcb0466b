// Package service implements the publish workflow
package service

import (
	"context"

	"lettings/internal/platform/net/http/bind"
	"lettings/internal/services/admin/domain"
	catdomain "lettings/internal/services/catalog/domain"
	catalog "lettings/internal/services/catalog/service"
)

// Service is the publish-path contract
type Service interface {
	// Publish validates the form, uploads the poster and appends the row.
	// The upload strictly precedes the append; the first failure surfaces
	// and leaves the sheet untouched.
	Publish(ctx context.Context, in domain.PublishInput) (catdomain.Listing, error)

	// Table returns the raw sheet for the admin table view
	Table(ctx context.Context) (catdomain.Table, error)
}

// Svc wires the catalog and the image store
type Svc struct {
	catalog catalog.Service
	images  domain.Images
}

// New constructs the publish service
func New(c catalog.Service, images domain.Images) *Svc {
	if c == nil {
		panic("admin service requires a catalog")
	}
	if images == nil {
		panic("admin service requires an image store")
	}
	return &Svc{catalog: c, images: images}
}

// Publish implements Service
func (s *Svc) Publish(ctx context.Context, in domain.PublishInput) (catdomain.Listing, error) {
	if err := bind.Struct(in); err != nil {
		return catdomain.Listing{}, err
	}

	url, err := s.images.Upload(ctx, in.Image, in.ImageKind)
	if err != nil {
		return catdomain.Listing{}, err
	}

	return s.catalog.Append(ctx, catdomain.Draft{
		Title:       in.Title,
		Region:      in.Region,
		Price:       in.Price,
		PosterLink:  url,
		Description: in.Description,
		Rooms:       in.Rooms,
	})
}

// Table implements Service
func (s *Svc) Table(ctx context.Context) (catdomain.Table, error) {
	return s.catalog.Table(ctx)
}
