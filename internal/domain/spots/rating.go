package spots

import (
	"errors"
	"math"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

const (
	MinRating = 1
	MaxRating = 5
)

// Rating keeps the exact sum of all ratings so the published average never
// accumulates rounding drift.
type Rating struct {
	Count int
	Sum   int64
}

// Add folds one rating into the aggregate.
func (r *Rating) Add(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	r.Count++
	r.Sum += int64(rating)
	return nil
}

// Average is sum/count rounded to one decimal, or 0 with no ratings.
func (r Rating) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return RoundOne(float64(r.Sum) / float64(r.Count))
}

// NextAverage is the incremental form:
// (oldAvg*oldCount + rating) / (oldCount+1), rounded to one decimal.
func NextAverage(oldAvg float64, oldCount, rating int) (float64, int) {
	newCount := oldCount + 1
	return RoundOne((oldAvg*float64(oldCount) + float64(rating)) / float64(newCount)), newCount
}

func RoundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
