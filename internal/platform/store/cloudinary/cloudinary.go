// Package cloudinary wraps the image-hosting backend.
// An upload trades poster bytes for a durable public URL; only the
// secure_url of the backend response is consumed.
package cloudinary

import (
	"bytes"
	"context"

	perr "lettings/internal/platform/errors"
	"lettings/internal/platform/logger"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Config carries the Cloudinary credentials
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	// Folder groups poster uploads in the media library; optional
	Folder string
}

// Kind is the accepted poster image format
type Kind string

// Accepted upload formats
const (
	KindJPG Kind = "jpg"
	KindPNG Kind = "png"
)

// Client uploads poster images
type Client struct {
	c      *cld.Cloudinary
	folder string
	log    *logger.Logger
}

// New builds a client from credentials
func New(cfg Config) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, perr.Configf("cloudinary cloud name, api key and api secret are required")
	}
	c, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "init cloudinary")
	}
	return &Client{c: c, folder: cfg.Folder, log: logger.Named("cloudinary")}, nil
}

// Upload pushes the poster bytes and returns the public URL.
// There is no retry and no deduplication; a refusal surfaces as UploadRejected.
func (c *Client) Upload(ctx context.Context, data []byte, kind Kind) (string, error) {
	if len(data) == 0 {
		return "", perr.UploadRejectedf("empty image")
	}
	if kind != KindJPG && kind != KindPNG {
		return "", perr.UploadRejectedf("unsupported image kind %q", kind)
	}

	res, err := c.c.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder:   c.folder,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUploadRejected, "upload image")
	}
	if res.Error.Message != "" {
		return "", perr.UploadRejectedf("upload image: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", perr.UploadRejectedf("upload succeeded but returned no secure_url")
	}

	c.log.Info().Str("public_id", res.PublicID).Int("bytes", len(data)).Msg("poster uploaded")
	return res.SecureURL, nil
}

// Ping verifies the credentials against the admin API
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.c.Admin.Ping(ctx)
	return perr.WrapIf(err, perr.ErrorCodeUploadRejected, "ping cloudinary")
}
