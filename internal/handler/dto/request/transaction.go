package request

import (
	"strings"
	"time"

	"book-rental-tracker/internal/pkg/datetime"
	"book-rental-tracker/internal/usecase/commands"
)

type IssueBookRequest struct {
	BookName  string `json:"bookName" binding:"notblank"`
	UserName  string `json:"userName" binding:"notblank"`
	IssueDate string `json:"issueDate"`
}

func (r *IssueBookRequest) ToCommand() (commands.IssueBookRequest, error) {
	issueDate, err := optionalDate(r.IssueDate)
	if err != nil {
		return commands.IssueBookRequest{}, err
	}
	return commands.IssueBookRequest{
		BookName:  r.BookName,
		UserName:  r.UserName,
		IssueDate: issueDate,
	}, nil
}

type ReturnBookRequest struct {
	BookName   string `json:"bookName" binding:"notblank"`
	UserName   string `json:"userName" binding:"notblank"`
	ReturnDate string `json:"returnDate"`
}

func (r *ReturnBookRequest) ToCommand() (commands.ReturnBookRequest, error) {
	returnDate, err := optionalDate(r.ReturnDate)
	if err != nil {
		return commands.ReturnBookRequest{}, err
	}
	return commands.ReturnBookRequest{
		BookName:   r.BookName,
		UserName:   r.UserName,
		ReturnDate: returnDate,
	}, nil
}

type BookNameParam struct {
	BookName string `form:"bookName"`
}

type UsernameParam struct {
	Username string `form:"username"`
}

type DateRangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Bounds parses both dates; neither may be omitted.
func (q *DateRangeQuery) Bounds() (start, end time.Time, err error) {
	if start, err = datetime.Parse(q.StartDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = datetime.Parse(q.EndDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// blank means "now", resolved by the command
func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := datetime.Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
