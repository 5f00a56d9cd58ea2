package shared

import (
	"context"

	"book-rental-tracker/internal/domain/book"
	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/internal/domain/user"

	"github.com/google/uuid"
)

// FindOne returns the earliest-created match or an infra.KindNotFound error.
// Find returns every match in storage order and an empty slice when nothing matches.

type BookStore interface {
	Insert(ctx context.Context, b *book.Book) error
	FindOne(ctx context.Context, filter BookFilter) (*book.Book, error)
	Find(ctx context.Context, filter BookFilter) ([]*book.Book, error)
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
}

type UserStore interface {
	Insert(ctx context.Context, u *user.User) error
	FindOne(ctx context.Context, filter UserFilter) (*user.User, error)
	Find(ctx context.Context, filter UserFilter) ([]*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	// FindByIDs returns the distinct users among ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error)
}

type TransactionStore interface {
	Insert(ctx context.Context, t *transaction.Transaction) error
	FindOne(ctx context.Context, filter TransactionFilter) (*transaction.Transaction, error)
	Find(ctx context.Context, filter TransactionFilter) ([]*transaction.Transaction, error)
	// Update persists the return date and rent of t.
	Update(ctx context.Context, t *transaction.Transaction) error
}
