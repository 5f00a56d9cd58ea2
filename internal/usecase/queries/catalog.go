package queries

import (
	"context"

	"book-rental-tracker/internal/domain/book"
	"book-rental-tracker/internal/domain/user"
	"book-rental-tracker/internal/pkg/errs"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/samber/lo"
)

type CatalogQueries interface {
	FindBooksByName(ctx context.Context, term string) ([]BookView, error)
	// FindBooksByRentRange treats a nil minRent as 0 and a nil maxRent as unbounded.
	FindBooksByRentRange(ctx context.Context, minRent, maxRent *float64) ([]BookView, error)
	FindBooksByCategoryAndRent(ctx context.Context, category, term string, minRent, maxRent *float64) ([]BookView, error)
	ListAllUsers(ctx context.Context) ([]UserContactView, error)
	ListAllBooks(ctx context.Context) ([]BookSummaryView, error)
}

type catalogQueriesImpl struct {
	books shared.BookStore
	users shared.UserStore
}

func NewCatalogQueries(books shared.BookStore, users shared.UserStore) CatalogQueries {
	return &catalogQueriesImpl{
		books: books,
		users: users,
	}
}

func (q *catalogQueriesImpl) FindBooksByName(ctx context.Context, term string) ([]BookView, error) {
	return q.findBooks(ctx, shared.BookFilter{NameContains: &term})
}

func (q *catalogQueriesImpl) FindBooksByRentRange(ctx context.Context, minRent, maxRent *float64) ([]BookView, error) {
	rent := book.NewRentRange(minRent, maxRent)
	return q.findBooks(ctx, shared.BookFilter{Rent: &rent})
}

func (q *catalogQueriesImpl) FindBooksByCategoryAndRent(ctx context.Context, category, term string, minRent, maxRent *float64) ([]BookView, error) {
	rent := book.NewRentRange(minRent, maxRent)
	return q.findBooks(ctx, shared.BookFilter{
		NameContains: &term,
		Category:     &category,
		Rent:         &rent,
	})
}

func (q *catalogQueriesImpl) ListAllUsers(ctx context.Context) ([]UserContactView, error) {
	users, err := q.users.Find(ctx, shared.UserFilter{})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}
	return lo.Map(users, func(u *user.User, _ int) UserContactView {
		return UserContactView{Name: u.Name(), Email: u.Email().Value()}
	}), nil
}

func (q *catalogQueriesImpl) ListAllBooks(ctx context.Context) ([]BookSummaryView, error) {
	books, err := q.books.Find(ctx, shared.BookFilter{})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}
	return lo.Map(books, func(b *book.Book, _ int) BookSummaryView {
		return BookSummaryView{Name: b.Name(), Category: b.Category(), RentPerDay: b.RentPerDay()}
	}), nil
}

func (q *catalogQueriesImpl) findBooks(ctx context.Context, filter shared.BookFilter) ([]BookView, error) {
	books, err := q.books.Find(ctx, filter)
	if err != nil {
		return nil, errs.QueryFailed(err)
	}
	return lo.Map(books, func(b *book.Book, _ int) BookView {
		return toBookView(b)
	}), nil
}

func toBookView(b *book.Book) BookView {
	return BookView{
		ID:         b.ID(),
		Name:       b.Name(),
		Category:   b.Category(),
		RentPerDay: b.RentPerDay(),
	}
}
