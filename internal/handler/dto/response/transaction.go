package response

import (
	"strconv"
	"time"

	"book-rental-tracker/internal/usecase/commands"
	"book-rental-tracker/internal/usecase/queries"

	"github.com/samber/lo"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func IssueBookMessage() MessageResponse {
	return MessageResponse{Message: "Book issued successfully"}
}

func ReturnBookMessage(r *commands.ReturnBookResult) MessageResponse {
	return MessageResponse{
		Message: "Book returned. Total rent: " + strconv.FormatFloat(r.RentGenerated, 'f', -1, 64),
	}
}

type BookIssuersResponse struct {
	TotalCount    int      `json:"totalCount"`
	CurrentIssuer *string  `json:"currentIssuer"`
	IssuedUsers   []string `json:"issuedUsers"`
}

func FromBookIssuers(v *queries.BookIssuersView) BookIssuersResponse {
	return BookIssuersResponse{
		TotalCount:    v.TotalCount,
		CurrentIssuer: v.CurrentIssuer,
		IssuedUsers:   lo.Ternary(v.IssuedUsers == nil, []string{}, v.IssuedUsers),
	}
}

type TotalRentResponse struct {
	TotalRent float64 `json:"totalRent"`
}

type IssuedBookResponse struct {
	BookName   string     `json:"bookName"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`
}

type UserIssuedBooksResponse struct {
	Username    string               `json:"username"`
	IssuedBooks []IssuedBookResponse `json:"issuedBooks"`
}

func FromUserIssuedBooks(v *queries.UserIssuedBooksView) UserIssuedBooksResponse {
	return UserIssuedBooksResponse{
		Username: v.Username,
		IssuedBooks: lo.Map(v.IssuedBooks, func(b queries.IssuedBookView, _ int) IssuedBookResponse {
			return IssuedBookResponse(b)
		}),
	}
}

type DateRangeIssueResponse struct {
	BookName  string    `json:"bookName"`
	IssuedTo  string    `json:"issuedTo"`
	IssueDate time.Time `json:"issueDate"`
}

func FromDateRangeIssues(views []queries.DateRangeIssueView) []DateRangeIssueResponse {
	return lo.Map(views, func(v queries.DateRangeIssueView, _ int) DateRangeIssueResponse {
		return DateRangeIssueResponse(v)
	})
}
