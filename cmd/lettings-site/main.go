// @title         Lettings Site API
// @version       0.1.0
// @description   Public browse path over the listings sheet

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lettings/internal/platform/clock"
	"lettings/internal/platform/config"
	"lettings/internal/platform/logger"
	phttp "lettings/internal/platform/net/http"
	"lettings/internal/platform/net/middleware"
	"lettings/internal/platform/store"
	"lettings/internal/platform/store/sheets"

	catalog "lettings/internal/services/catalog/service"
	metahttp "lettings/internal/services/meta/http"
	sitedomain "lettings/internal/services/site/domain"
	sitehttp "lettings/internal/services/site/http"
	sitesvc "lettings/internal/services/site/service"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	cfg := root.Prefix("SITE_") // SITE_PORT, SITE_CORS_ORIGINS
	gs := root.Prefix("GS_")
	contact := root.Prefix("CONTACT_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	gs.Require("URL", "EMAIL", "KEY")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the browse surface never uploads, so the image store stays closed
	st, err := store.Open(ctx, store.Config{
		Rows: store.RowsConfig{
			Enabled: true,
			Sheets: sheets.Config{
				SpreadsheetURL: gs.MustString("URL"),
				Email:          gs.MustString("EMAIL"),
				PrivateKey:     gs.MustKey("KEY"),
			},
		},
	})
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}

	srv := phttp.NewServer(cfg)
	r := srv.Router()

	r.Use(middleware.Defaults()...)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(middleware.AccessLog, middleware.RecoverJSON)
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))

	svc := sitesvc.New(
		catalog.New(st.Rows, clock.System()),
		sitedomain.Contact{
			Phone: contact.MayString("PHONE", ""),
			Email: contact.MayString("EMAIL", ""),
		},
		nil,
	)

	r.Route("/api/v1", func(api phttp.Router) {
		sitehttp.Register(api, svc)
	})
	r.Route("/meta", func(meta phttp.Router) {
		metahttp.Register(meta, metahttp.Deps{
			ServiceName: "lettings-site",
			StartedAt:   time.Now(),
			Rows:        st.Rows,
		})
	})
	phttp.MountSwagger(r, cfg.MayBool("SWAGGER", true))

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
