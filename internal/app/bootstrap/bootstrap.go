package bootstrap

import (
	"log/slog"
	"strings"

	contentservice "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service"
	contentpostgres "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/adapters/postgres"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/application"
	followservice "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service"
	followpostgres "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/adapters/postgres"
	"github.com/galinashashina/api-final-yatube/internal/platform/config"
	"github.com/galinashashina/api-final-yatube/internal/platform/db"
	"github.com/galinashashina/api-final-yatube/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	pages := application.PageConfig{
		PageSize:    cfg.PageSize,
		MaxPageSize: cfg.MaxPageSize,
	}

	var (
		pg      *db.Postgres
		content contentservice.Module
		follow  followservice.Module
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		// Dev fallback: volatile stores, no seeded users or groups.
		logger.Warn("POSTGRES_DSN not set, using in-memory stores",
			"event", "bootstrap_memory_fallback",
		)
		content = contentservice.NewInMemoryModule(nil, pages, logger)
		follow = followservice.NewInMemoryModule(nil, logger)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		contentRepo := contentpostgres.NewRepository(pg.DB, logger)
		content = contentservice.NewModule(contentservice.Dependencies{
			Posts:    contentRepo,
			Comments: contentRepo,
			Groups:   contentRepo,
			Clock:    contentpostgres.SystemClock{},
			IDGen:    contentpostgres.UUIDGenerator{},
			Pages:    pages,
			Logger:   logger,
		})

		followRepo := followpostgres.NewRepository(pg.DB, logger)
		follow = followservice.NewModule(followservice.Dependencies{
			Follows: followRepo,
			Users:   followRepo,
			Clock:   followpostgres.SystemClock{},
			IDGen:   followpostgres.UUIDGenerator{},
			Logger:  logger,
		})
	}

	server := httpserver.New(content, follow, logger, ":"+cfg.HTTPPort)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() {
		if err := a.postgres.Close(); err != nil {
			a.logger.Error("closing postgres", "event", "postgres_close_failed", "error", err)
		}
	}()
	return a.server.Start()
}
