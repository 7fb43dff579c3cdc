package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
	"github.com/KirkDiggler/rpg-adventure/internal/orchestrators/savegame"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/redis"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
)

// openSaveSystem builds the save system over the configured backend. The
// returned cleanup releases the backend's connections.
func openSaveSystem(ctx context.Context, cfg *config.Config) (savegame.Service, func(), error) {
	repo, cleanup, err := openRepository(ctx, cfg.Save)
	if err != nil {
		return nil, nil, err
	}

	svc, err := savegame.NewOrchestrator(&savegame.Config{
		Repository: repo,
		Clock:      clock.New(),
		Slots:      cfg.Save.Slots,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create save system: %w", err)
	}

	return svc, cleanup, nil
}

func openRepository(ctx context.Context, cfg config.SaveConfig) (saves.Repository, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		repo, err := saves.NewRedis(&saves.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis repository: %w", err)
		}
		return repo, func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}, nil

	case config.BackendSQLite:
		db, err := saves.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		repo, err := saves.NewSQLite(&saves.SQLiteConfig{DB: db, Clock: clock.New()})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create sqlite repository: %w", err)
		}
		return repo, func() {
			if err := db.Close(); err != nil {
				slog.Warn("Failed to close sqlite database", "error", err)
			}
		}, nil

	default:
		repo, err := saves.NewFile(&saves.FileConfig{Dir: cfg.Dir})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file repository: %w", err)
		}
		return repo, noop, nil
	}
}
