// Package factory constructs the service's storage backend from config.
package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/planit-app/planit-server/internal/config"
	storepkg "github.com/planit-app/planit-server/internal/store"
	storepg "github.com/planit-app/planit-server/internal/store/postgres"
	storesqlite "github.com/planit-app/planit-server/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured DB driver.
//
// SQLite opens and migrates synchronously; it is a local file and cheap.
// Postgres opens synchronously so health checks have a live handle, then
// runs its bootstrap check in the background to keep startup fast.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		st, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", cfg.SQLitePath).Msg("sqlite store ready")
		return st, nil

	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		go func() {
			timeout := time.Duration(cfg.StartupTimeoutSeconds) * time.Second
			bootstrapCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			if err := storepg.Bootstrap(bootstrapCtx, cfg.PostgresDSN); err != nil {
				log.Warn().Err(err).Msg("store bootstrap check failed")
			} else {
				log.Debug().Msg("store bootstrap check completed")
			}
		}()
		return storepg.NewWithDB(db), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
