package commands

import (
	"context"
	"time"

	"book-rental-tracker/internal/domain/transaction"
	"book-rental-tracker/internal/pkg/clock"
	"book-rental-tracker/internal/pkg/errs"
	"book-rental-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueBookRequest struct {
	BookName string
	UserName string
	// IssueDate defaults to the current time when nil.
	IssueDate *time.Time
}

type ReturnBookRequest struct {
	BookName string
	UserName string
	// ReturnDate defaults to the current time when nil.
	ReturnDate *time.Time
}

type IssueBookResult struct {
	TransactionID uuid.UUID
}

type ReturnBookResult struct {
	TransactionID uuid.UUID
	DaysRented    int64
	RentGenerated float64
}

type TransactionCommands interface {
	IssueBook(ctx context.Context, req IssueBookRequest) (*IssueBookResult, error)
	ReturnBook(ctx context.Context, req ReturnBookRequest) (*ReturnBookResult, error)
}

type transactionCommandsImpl struct {
	books        shared.BookStore
	users        shared.UserStore
	transactions shared.TransactionStore
	clock        clock.Clock
}

func NewTransactionCommands(
	books shared.BookStore,
	users shared.UserStore,
	transactions shared.TransactionStore,
	clk clock.Clock,
) TransactionCommands {
	return &transactionCommandsImpl{
		books:        books,
		users:        users,
		transactions: transactions,
		clock:        clk,
	}
}

// IssueBook does not check for an open transaction on the same book.
func (uc *transactionCommandsImpl) IssueBook(ctx context.Context, req IssueBookRequest) (*IssueBookResult, error) {
	b, err := shared.ResolveBook(ctx, uc.books, req.BookName)
	if err != nil {
		return nil, err
	}
	u, err := shared.ResolveUser(ctx, uc.users, req.UserName)
	if err != nil {
		return nil, err
	}

	tx := transaction.NewTransaction(b.ID(), u.ID(), uc.dateOrNow(req.IssueDate))
	if err := uc.transactions.Insert(ctx, tx); err != nil {
		return nil, errs.QueryFailed(err)
	}

	return &IssueBookResult{TransactionID: tx.ID()}, nil
}

// ReturnBook matches the book name exactly, unlike IssueBook.
// The read of the open transaction and the update are not isolated.
func (uc *transactionCommandsImpl) ReturnBook(ctx context.Context, req ReturnBookRequest) (*ReturnBookResult, error) {
	b, err := shared.ResolveBookExact(ctx, uc.books, req.BookName)
	if err != nil {
		return nil, err
	}
	u, err := shared.ResolveUser(ctx, uc.users, req.UserName)
	if err != nil {
		return nil, err
	}

	bookID, userID := b.ID(), u.ID()
	tx, err := uc.transactions.FindOne(ctx, shared.TransactionFilter{
		BookID:   &bookID,
		UserID:   &userID,
		OpenOnly: true,
	})
	if err != nil {
		return nil, shared.StoreErr(err, errs.KindTransaction)
	}

	if err := tx.Close(uc.dateOrNow(req.ReturnDate), b.RentPerDay()); err != nil {
		return nil, err
	}
	if err := uc.transactions.Update(ctx, tx); err != nil {
		return nil, shared.StoreErr(err, errs.KindTransaction)
	}

	return &ReturnBookResult{
		TransactionID: tx.ID(),
		DaysRented:    tx.DaysRented(),
		RentGenerated: *tx.RentGenerated(),
	}, nil
}

func (uc *transactionCommandsImpl) dateOrNow(d *time.Time) time.Time {
	if d != nil {
		return *d
	}
	return uc.clock.Now()
}
