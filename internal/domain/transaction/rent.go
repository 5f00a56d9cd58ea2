package transaction

import (
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// DaysRented counts started days between issue and return. A same-instant
// return is 0 days and a return before the issue date yields a negative count.
func DaysRented(issueDate, returnDate time.Time) int64 {
	ms := returnDate.Sub(issueDate).Milliseconds()
	return int64(math.Ceil(float64(ms) / millisPerDay))
}

func CalculateRent(days int64, rentPerDay float64) float64 {
	return float64(days) * rentPerDay
}
