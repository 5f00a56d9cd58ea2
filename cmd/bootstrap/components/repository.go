package components

import (
	"book-rental-tracker/internal/infra/repository"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(shared.BookStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserStore)),
		),
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(shared.TransactionStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
