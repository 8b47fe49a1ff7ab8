package root

import (
	"context"
	"database/sql"

	"shadowquest/internal/config"
	"shadowquest/internal/engine"
	"shadowquest/internal/logging"
	"shadowquest/internal/storage"
)

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.Setup(cfg.LogLevel, nil)

	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	repo := storage.NewStateRepo(db, cfg.Player, logger)
	svc := engine.NewService(repo,
		engine.WithLocation(cfg.Location),
		engine.WithLogger(logger),
	)
	return svc, cleanup, nil
}
