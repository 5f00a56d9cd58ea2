package bootstrap

import (
	"log/slog"

	"book-rental-tracker/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the settings that change request handling. Credentials are left out.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("port", cfg.Server.Port),
		slog.Group("db",
			slog.String("host", cfg.DB.Host),
			slog.String("name", cfg.DB.DBName),
			slog.Int("max_conns", int(cfg.DB.MaxConns)),
		),
		slog.Group("rate_limit",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
		),
		slog.Any("cors_origins", cfg.CORS.AllowOrigins),
		slog.Int("fanout_limit", cfg.Usecase.FanoutLimit),
	)
}
