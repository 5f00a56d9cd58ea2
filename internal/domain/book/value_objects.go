package book

import "math"

// RentRange is an inclusive [min, max] bound on rent per day.
type RentRange struct {
	min float64
	max float64
}

// NewRentRange treats a nil min as 0 and a nil max as unbounded.
func NewRentRange(minRent, maxRent *float64) RentRange {
	r := RentRange{min: 0, max: math.Inf(1)}
	if minRent != nil {
		r.min = *minRent
	}
	if maxRent != nil {
		r.max = *maxRent
	}
	return r
}

func (r RentRange) Min() float64 { return r.min }
func (r RentRange) Max() float64 { return r.max }

func (r RentRange) HasUpperBound() bool {
	return !math.IsInf(r.max, 1)
}

func (r RentRange) Contains(rentPerDay float64) bool {
	return rentPerDay >= r.min && rentPerDay <= r.max
}
