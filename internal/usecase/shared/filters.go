package shared

import (
	"time"

	"book-rental-tracker/internal/domain/book"

	"github.com/google/uuid"
)

// Nil fields are ignored; set fields are ANDed.

type BookFilter struct {
	// NameContains is a literal, case-insensitive substring.
	NameContains *string
	NameEquals   *string
	Category     *string
	Rent         *book.RentRange
}

type UserFilter struct {
	NameContains *string
}

type TransactionFilter struct {
	BookID   *uuid.UUID
	UserID   *uuid.UUID
	OpenOnly bool
	// IssuedFrom and IssuedTo are inclusive.
	IssuedFrom *time.Time
	IssuedTo   *time.Time
}
