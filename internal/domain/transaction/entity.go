package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyClosed = errors.New("transaction is already closed")

type Transaction struct {
	id            uuid.UUID
	bookID        uuid.UUID
	userID        uuid.UUID
	issueDate     time.Time
	returnDate    *time.Time
	rentGenerated *float64
	createdAt     time.Time
}

func NewTransaction(bookID, userID uuid.UUID, issueDate time.Time) *Transaction {
	return &Transaction{
		id:        uuid.New(),
		bookID:    bookID,
		userID:    userID,
		issueDate: issueDate,
	}
}

func ReconstructTransaction(
	id, bookID, userID uuid.UUID,
	issueDate time.Time,
	returnDate *time.Time,
	rentGenerated *float64,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:            id,
		bookID:        bookID,
		userID:        userID,
		issueDate:     issueDate,
		returnDate:    returnDate,
		rentGenerated: rentGenerated,
		createdAt:     createdAt,
	}
}

// Close sets the return date and the rent owed for it together.
func (t *Transaction) Close(returnDate time.Time, rentPerDay float64) error {
	if !t.IsOpen() {
		return ErrAlreadyClosed
	}
	rent := CalculateRent(DaysRented(t.issueDate, returnDate), rentPerDay)
	t.returnDate = &returnDate
	t.rentGenerated = &rent
	return nil
}

func (t *Transaction) IsOpen() bool {
	return t.returnDate == nil
}

func (t *Transaction) Status() Status {
	if t.IsOpen() {
		return StatusOpen
	}
	return StatusClosed
}

// DaysRented is 0 while the transaction is open.
func (t *Transaction) DaysRented() int64 {
	if t.returnDate == nil {
		return 0
	}
	return DaysRented(t.issueDate, *t.returnDate)
}

func (t *Transaction) ID() uuid.UUID           { return t.id }
func (t *Transaction) BookID() uuid.UUID       { return t.bookID }
func (t *Transaction) UserID() uuid.UUID       { return t.userID }
func (t *Transaction) IssueDate() time.Time    { return t.issueDate }
func (t *Transaction) ReturnDate() *time.Time  { return t.returnDate }
func (t *Transaction) RentGenerated() *float64 { return t.rentGenerated }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
