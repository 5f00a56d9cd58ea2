package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	UnknownBook = "Unknown Book"
	UnknownUser = "Unknown User"
)

// BookView represents a catalog search hit
type BookView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	RentPerDay float64   `json:"rentPerDay"`
}

// BookSummaryView is a catalog listing entry without the id
type BookSummaryView struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	RentPerDay float64 `json:"rentPerDay"`
}

type UserContactView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookIssuersView struct {
	TotalCount    int      `json:"totalCount"`
	CurrentIssuer *string  `json:"currentIssuer"`
	IssuedUsers   []string `json:"issuedUsers"`
}

type TotalRentView struct {
	TotalRent float64 `json:"totalRent"`
}

type IssuedBookView struct {
	BookName   string     `json:"bookName"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`
}

type UserIssuedBooksView struct {
	Username    string           `json:"username"`
	IssuedBooks []IssuedBookView `json:"issuedBooks"`
}

type DateRangeIssueView struct {
	BookName  string    `json:"bookName"`
	IssuedTo  string    `json:"issuedTo"`
	IssueDate time.Time `json:"issueDate"`
}
