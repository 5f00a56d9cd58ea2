package queries

import (
	"context"
	"time"

	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/internal/domain/user"
	"book-rental-tracker/internal/infra"
	"book-rental-tracker/internal/pkg/config"
	"book-rental-tracker/internal/pkg/errs"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type TransactionQueries interface {
	GetBookIssuers(ctx context.Context, bookName string) (*BookIssuersView, error)
	GetTotalRentGenerated(ctx context.Context, bookName string) (*TotalRentView, error)
	GetUserIssuedBooks(ctx context.Context, username string) (*UserIssuedBooksView, error)
	// GetBooksIssuedInDateRange matches issue dates within [start, end].
	GetBooksIssuedInDateRange(ctx context.Context, start, end time.Time) ([]DateRangeIssueView, error)
}

type transactionQueriesImpl struct {
	books        shared.BookStore
	users        shared.UserStore
	transactions shared.TransactionStore
	fanoutLimit  int
}

func NewTransactionQueries(
	books shared.BookStore,
	users shared.UserStore,
	transactions shared.TransactionStore,
	cfg config.UsecaseConfig,
) TransactionQueries {
	limit := cfg.FanoutLimit
	if limit <= 0 {
		limit = defaultFanoutLimit
	}
	return &transactionQueriesImpl{
		books:        books,
		users:        users,
		transactions: transactions,
		fanoutLimit:  limit,
	}
}

// The current issuer is the user of the last transaction, open or closed.
// Users that no longer exist are left out of IssuedUsers.
func (q *transactionQueriesImpl) GetBookIssuers(ctx context.Context, bookName string) (*BookIssuersView, error) {
	b, err := shared.ResolveBook(ctx, q.books, bookName)
	if err != nil {
		return nil, err
	}

	bookID := b.ID()
	txs, err := q.transactions.Find(ctx, shared.TransactionFilter{BookID: &bookID})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}

	view := &BookIssuersView{
		TotalCount:  len(txs),
		IssuedUsers: []string{},
	}
	if len(txs) == 0 {
		return view, nil
	}

	userIDs := lo.Uniq(lo.Map(txs, func(t *transaction.Transaction, _ int) uuid.UUID {
		return t.UserID()
	}))
	users, err := q.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errs.QueryFailed(err)
	}
	byID := lo.KeyBy(users, func(u *user.User) uuid.UUID { return u.ID() })

	for _, t := range txs {
		if u, ok := byID[t.UserID()]; ok {
			view.IssuedUsers = append(view.IssuedUsers, u.Name())
		}
	}
	if u, ok := byID[txs[len(txs)-1].UserID()]; ok {
		view.CurrentIssuer = lo.ToPtr(u.Name())
	}

	return view, nil
}

// Open transactions count as zero.
func (q *transactionQueriesImpl) GetTotalRentGenerated(ctx context.Context, bookName string) (*TotalRentView, error) {
	b, err := shared.ResolveBook(ctx, q.books, bookName)
	if err != nil {
		return nil, err
	}

	bookID := b.ID()
	txs, err := q.transactions.Find(ctx, shared.TransactionFilter{BookID: &bookID})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}

	total := lo.SumBy(txs, func(t *transaction.Transaction) float64 {
		return lo.FromPtrOr(t.RentGenerated(), 0)
	})
	return &TotalRentView{TotalRent: total}, nil
}

func (q *transactionQueriesImpl) GetUserIssuedBooks(ctx context.Context, username string) (*UserIssuedBooksView, error) {
	u, err := shared.ResolveUser(ctx, q.users, username)
	if err != nil {
		return nil, err
	}

	userID := u.ID()
	txs, err := q.transactions.Find(ctx, shared.TransactionFilter{UserID: &userID})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}

	issued, err := fanout(ctx, q.fanoutLimit, txs, func(ctx context.Context, t *transaction.Transaction) (IssuedBookView, error) {
		name, err := q.bookName(ctx, t.BookID())
		if err != nil {
			return IssuedBookView{}, err
		}
		return IssuedBookView{
			BookName:   name,
			IssueDate:  t.IssueDate(),
			ReturnDate: t.ReturnDate(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &UserIssuedBooksView{
		Username:    username,
		IssuedBooks: issued,
	}, nil
}

type nameLookup struct {
	id     uuid.UUID
	isUser bool
}

func (q *transactionQueriesImpl) GetBooksIssuedInDateRange(ctx context.Context, start, end time.Time) ([]DateRangeIssueView, error) {
	txs, err := q.transactions.Find(ctx, shared.TransactionFilter{
		IssuedFrom: &start,
		IssuedTo:   &end,
	})
	if err != nil {
		return nil, errs.QueryFailed(err)
	}

	// Book and user lookups for transaction i sit at 2i and 2i+1.
	lookups := make([]nameLookup, 0, 2*len(txs))
	for _, t := range txs {
		lookups = append(lookups,
			nameLookup{id: t.BookID()},
			nameLookup{id: t.UserID(), isUser: true},
		)
	}

	names, err := fanout(ctx, q.fanoutLimit, lookups, func(ctx context.Context, l nameLookup) (string, error) {
		if l.isUser {
			return q.userName(ctx, l.id)
		}
		return q.bookName(ctx, l.id)
	})
	if err != nil {
		return nil, err
	}

	views := make([]DateRangeIssueView, len(txs))
	for i, t := range txs {
		views[i] = DateRangeIssueView{
			BookName:  names[2*i],
			IssuedTo:  names[2*i+1],
			IssueDate: t.IssueDate(),
		}
	}
	return views, nil
}

func (q *transactionQueriesImpl) bookName(ctx context.Context, id uuid.UUID) (string, error) {
	b, err := q.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return UnknownBook, nil
		}
		return "", errs.QueryFailed(err)
	}
	return b.Name(), nil
}

func (q *transactionQueriesImpl) userName(ctx context.Context, id uuid.UUID) (string, error) {
	u, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return UnknownUser, nil
		}
		return "", errs.QueryFailed(err)
	}
	return u.Name(), nil
}
