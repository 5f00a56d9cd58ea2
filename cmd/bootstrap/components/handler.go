package components

import (
	"book-rental-tracker/internal/handler"
	"book-rental-tracker/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		api.NewTransactionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
