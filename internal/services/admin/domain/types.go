// Package domain holds the publish-path inputs and ports
package domain

import (
	"context"

	"lettings/internal/platform/store/cloudinary"
)

// Images is the poster upload port satisfied by the cloudinary client
type Images interface {
	Upload(ctx context.Context, data []byte, kind cloudinary.Kind) (string, error)
}

// PublishInput is the admin form payload for a new listing.
// The image arrives as a multipart part, not a json field.
type PublishInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Region      string `json:"region" validate:"required,london_region"`
	Price       int    `json:"price" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=4000"`
	Rooms       string `json:"rooms" validate:"max=64"`

	Image     []byte          `json:"-" validate:"required"`
	ImageKind cloudinary.Kind `json:"-"`
}
