package components

import (
	"book-rental-tracker/internal/pkg/clock"
	"book-rental-tracker/internal/pkg/config"
	"book-rental-tracker/internal/usecase/commands"
	"book-rental-tracker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.UsecaseConfig {
		return cfg.Usecase
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTransactionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewTransactionQueries,
	),
)
