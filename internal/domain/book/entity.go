package book

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("book name is required")
	ErrEmptyCategory = errors.New("book category is required")
	ErrNegativeRent  = errors.New("rent per day cannot be negative")
)

type Book struct {
	id         uuid.UUID
	name       string
	category   string
	rentPerDay float64
	createdAt  time.Time
}

func NewBook(name, category string, rentPerDay float64) (*Book, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if rentPerDay < 0 {
		return nil, ErrNegativeRent
	}

	return &Book{
		id:         uuid.New(),
		name:       name,
		category:   category,
		rentPerDay: rentPerDay,
	}, nil
}

func ReconstructBook(id uuid.UUID, name, category string, rentPerDay float64, createdAt time.Time) *Book {
	return &Book{
		id:         id,
		name:       name,
		category:   category,
		rentPerDay: rentPerDay,
		createdAt:  createdAt,
	}
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Name() string         { return b.name }
func (b *Book) Category() string     { return b.category }
func (b *Book) RentPerDay() float64  { return b.rentPerDay }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
