package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Rating is a comment score. Only the values 1 through 5 are valid.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// ErrInvalidRating indicates a rating outside the 1-5 range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Ratings returns every selectable rating in ascending order.
func Ratings() []Rating {
	ratings := make([]Rating, 0, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		ratings = append(ratings, r)
	}
	return ratings
}

// Valid reports whether r is one of the enumerated ratings.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// String returns the decimal form used by the rating select options.
func (r Rating) String() string {
	return strconv.Itoa(int(r))
}

// ParseRating converts a submitted form value into a Rating.
func ParseRating(s string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse rating %q: %w", s, ErrInvalidRating)
	}

	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("parse rating %q: %w", s, ErrInvalidRating)
	}

	return r, nil
}
