package bootstrap

import (
	"context"
	"log/slog"

	"book-rental-tracker/internal/infra/db"
	"book-rental-tracker/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects during construction. The pool is closed on stop.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool started",
				"total_conns", stat.TotalConns(),
				"max_conns", stat.MaxConns(),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("closing database pool", "acquired_conns", pool.Stat().AcquiredConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
