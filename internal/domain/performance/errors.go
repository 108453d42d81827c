package performance

import "errors"

var (
	ErrReviewNotFound     = errors.New("performance review not found")
	ErrInvalidRating      = errors.New("ratings must be between 1 and 5")
	ErrInvalidPeriodOrder = errors.New("review period end must be after start date")
)
