//go:build unit || e2e

package builder

import (
	"time"

	"book-rental-tracker/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionBuilder struct {
	ID            uuid.UUID
	BookID        uuid.UUID
	UserID        uuid.UUID
	IssueDate     time.Time
	ReturnDate    *time.Time
	RentGenerated *float64
	CreatedAt     time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &TransactionBuilder{
		ID:        uuid.New(),
		BookID:    uuid.New(),
		UserID:    uuid.New(),
		IssueDate: issued,
		CreatedAt: issued,
	}
}

func (t *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(t)
	return t
}

// Build methods
func (t *TransactionBuilder) BuildDomain() *transaction.Transaction {
	return transaction.ReconstructTransaction(
		t.ID, t.BookID, t.UserID,
		t.IssueDate, t.ReturnDate, t.RentGenerated,
		t.CreatedAt,
	)
}

// Fluent builder methods
func (t *TransactionBuilder) WithBookID(id uuid.UUID) *TransactionBuilder {
	t.BookID = id
	return t
}

func (t *TransactionBuilder) WithUserID(id uuid.UUID) *TransactionBuilder {
	t.UserID = id
	return t
}

func (t *TransactionBuilder) WithIssueDate(d time.Time) *TransactionBuilder {
	t.IssueDate = d
	t.CreatedAt = d
	return t
}

func (t *TransactionBuilder) Returned(d time.Time, rent float64) *TransactionBuilder {
	t.ReturnDate = &d
	t.RentGenerated = &rent
	return t
}
