// Package rating derives a product's displayed rating from its review scores.
package rating

import (
	"errors"
	"math"
)

const (
	// MinScore is the lowest accepted review score.
	MinScore = 1
	// MaxScore is the highest accepted review score.
	MaxScore = 5
)

// ErrScoreOutOfRange is returned for scores outside [MinScore, MaxScore].
var ErrScoreOutOfRange = errors.New("rating must be between 1 and 5")

// Aggregate is the rating summary stored on a product.
type Aggregate struct {
	Rating       float64 // mean score rounded half-up to one decimal
	ReviewsCount int
}

// ValidateScore checks a single review score.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

// Compute recomputes the aggregate from the full set of scores.
// An empty set yields a zero aggregate.
func Compute(scores []int) Aggregate {
	if len(scores) == 0 {
		return Aggregate{}
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}

	mean := float64(sum) / float64(len(scores))
	return Aggregate{
		Rating:       RoundHalfUp(mean, 1),
		ReviewsCount: len(scores),
	}
}

// RoundHalfUp rounds x to the given number of decimal places, ties toward positive infinity.
func RoundHalfUp(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Floor(x*pow+0.5) / pow
}
