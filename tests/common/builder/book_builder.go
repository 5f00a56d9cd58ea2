//go:build unit || e2e

package builder

import (
	"time"

	"book-rental-tracker/internal/domain/book"
	"book-rental-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID         uuid.UUID
	Name       string
	Category   string
	RentPerDay float64
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:         uuid.New(),
		Name:       "The Go Programming Language",
		Category:   "Programming",
		RentPerDay: 10,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Name, b.Category, b.RentPerDay)
}

// BuildStored mimics a row loaded from storage, keeping the builder's ID.
func (b *BookBuilder) BuildStored(createdAt time.Time) *book.Book {
	return book.ReconstructBook(b.ID, b.Name, b.Category, b.RentPerDay, createdAt)
}

func (b *BookBuilder) BuildView() queries.BookView {
	return queries.BookView{
		ID:         b.ID,
		Name:       b.Name,
		Category:   b.Category,
		RentPerDay: b.RentPerDay,
	}
}

func (b *BookBuilder) BuildSummaryView() queries.BookSummaryView {
	return queries.BookSummaryView{
		Name:       b.Name,
		Category:   b.Category,
		RentPerDay: b.RentPerDay,
	}
}

// Fluent builder methods
func (b *BookBuilder) WithID(id uuid.UUID) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithName(name string) *BookBuilder {
	b.Name = name
	return b
}

func (b *BookBuilder) WithCategory(category string) *BookBuilder {
	b.Category = category
	return b
}

func (b *BookBuilder) WithRentPerDay(rent float64) *BookBuilder {
	b.RentPerDay = rent
	return b
}
