// Package store bundles the external stores the services run against:
// the spreadsheet row store and the image-hosting backend
package store

import (
	"context"

	"lettings/internal/platform/logger"
	"lettings/internal/platform/store/cloudinary"
	"lettings/internal/platform/store/sheets"
)

// Config selects which stores to open.
// The site surface never uploads, so it leaves Images disabled.
type Config struct {
	Rows   RowsConfig
	Images ImagesConfig
}

// RowsConfig configures the spreadsheet row store
type RowsConfig struct {
	Enabled bool
	Sheets  sheets.Config
}

// ImagesConfig configures the image-hosting backend
type ImagesConfig struct {
	Enabled    bool
	Cloudinary cloudinary.Config
}

// Store carries the opened adapters; disabled ones stay nil
type Store struct {
	Rows   *sheets.Client
	Images *cloudinary.Client
}

// Open dials the enabled stores
func Open(ctx context.Context, cfg Config) (*Store, error) {
	log := logger.Named("store")
	st := &Store{}

	if cfg.Rows.Enabled {
		rows, err := sheets.New(ctx, cfg.Rows.Sheets)
		if err != nil {
			return nil, err
		}
		st.Rows = rows
		log.Debug().Msg("row store ready")
	}

	if cfg.Images.Enabled {
		images, err := cloudinary.New(cfg.Images.Cloudinary)
		if err != nil {
			return nil, err
		}
		st.Images = images
		log.Debug().Msg("image store ready")
	}

	return st, nil
}
