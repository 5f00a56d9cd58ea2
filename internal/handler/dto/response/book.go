package response

import (
	"book-rental-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	RentPerDay float64 `json:"rentPerDay"`
}

type BookListItemResponse struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	RentPerDay float64 `json:"rentPerDay"`
}

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: "",
	Fn: func(src any) (any, error) {
		return src.(uuid.UUID).String(), nil
	},
}

func FromBookViews(views []queries.BookView) ([]BookResponse, error) {
	res := make([]BookResponse, 0, len(views))
	err := copier.CopyWithOption(&res, &views, copier.Option{
		Converters: []copier.TypeConverter{uuidToString},
	})
	return res, err
}

func FromBookSummaries(views []queries.BookSummaryView) ([]BookListItemResponse, error) {
	res := make([]BookListItemResponse, 0, len(views))
	err := copier.Copy(&res, &views)
	return res, err
}

func FromUserContacts(views []queries.UserContactView) ([]UserResponse, error) {
	res := make([]UserResponse, 0, len(views))
	err := copier.Copy(&res, &views)
	return res, err
}
