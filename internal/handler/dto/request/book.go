package request

type BookNameQuery struct {
	Name string `form:"name"`
}

// RentRangeQuery leaves an omitted bound nil.
type RentRangeQuery struct {
	MinRent *float64 `form:"minRent"`
	MaxRent *float64 `form:"maxRent"`
}

type CategoryRentQuery struct {
	Category string `form:"category"`
	Term     string `form:"term"`
	RentRangeQuery
}
