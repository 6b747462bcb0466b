// @title         Lettings Admin API
// @version       0.1.0
// @description   Publish path for the listings sheet

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
	"lettings/internal/platform/store/cloudinary"
	"lettings/internal/platform/store/sheets"

	adminhttp "lettings/internal/services/admin/http"
	adminsvc "lettings/internal/services/admin/service"
	catalog "lettings/internal/services/catalog/service"
	metahttp "lettings/internal/services/meta/http"
)

func main() {
	// .env is optional; real deployments use the environment
	_ = godotenv.Load()

	root := config.New()
	cfg := root.Prefix("ADMIN_") // ADMIN_PORT, ADMIN_TOKEN, ADMIN_CORS_ORIGINS
	gs := root.Prefix("GS_")
	cld := root.Prefix("CLOUDINARY_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	gs.Require("URL", "EMAIL", "KEY")
	cld.Require("CLOUD_NAME", "API_KEY", "API_SECRET")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		Rows: store.RowsConfig{
			Enabled: true,
			Sheets: sheets.Config{
				SpreadsheetURL: gs.MustString("URL"),
				Email:          gs.MustString("EMAIL"),
				PrivateKey:     gs.MustKey("KEY"),
			},
		},
		Images: store.ImagesConfig{
			Enabled: true,
			Cloudinary: cloudinary.Config{
				CloudName: cld.MustString("CLOUD_NAME"),
				APIKey:    cld.MustString("API_KEY"),
				APISecret: cld.MustString("API_SECRET"),
				Folder:    cld.MayString("FOLDER", "posters"),
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

	svc := adminsvc.New(catalog.New(st.Rows, clock.System()), st.Images)
	guard := middleware.AdminToken(cfg.MayString("TOKEN", ""))

	r.Route("/api/v1", func(api phttp.Router) {
		adminhttp.Register(api, svc, guard)
	})
	r.Route("/meta", func(meta phttp.Router) {
		metahttp.Register(meta, metahttp.Deps{
			ServiceName: "lettings-admin",
			StartedAt:   time.Now(),
			Rows:        st.Rows,
			Images:      st.Images,
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
