package shared

import (
	"context"

	"book-rental-tracker/internal/domain/book"
	"book-rental-tracker/internal/domain/user"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/errs"
)

// StoreErr maps a repository error onto the usecase error kinds.
func StoreErr(err error, kind errs.EntityKind) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(kind)
	}
	return errs.QueryFailed(err)
}

// ResolveBook returns the earliest-created book whose name contains term.
func ResolveBook(ctx context.Context, store BookStore, term string) (*book.Book, error) {
	b, err := store.FindOne(ctx, BookFilter{NameContains: &term})
	if err != nil {
		return nil, StoreErr(err, errs.KindBook)
	}
	return b, nil
}

// ResolveBookExact matches the whole name, case-sensitively.
func ResolveBookExact(ctx context.Context, store BookStore, name string) (*book.Book, error) {
	b, err := store.FindOne(ctx, BookFilter{NameEquals: &name})
	if err != nil {
		return nil, StoreErr(err, errs.KindBook)
	}
	return b, nil
}

func ResolveUser(ctx context.Context, store UserStore, term string) (*user.User, error) {
	u, err := store.FindOne(ctx, UserFilter{NameContains: &term})
	if err != nil {
		return nil, StoreErr(err, errs.KindUser)
	}
	return u, nil
}
