package hasher

import "errors"

var (
	// ErrNotLearned is returned when hashing is requested before LearnDiscretization.
	ErrNotLearned = errors.New("hasher: discretization has not been learned")
	// ErrEmptyHistogram is returned when a histogram holds no samples.
	ErrEmptyHistogram = errors.New("hasher: histogram is empty")
	// ErrInvalidDiscretization is returned for a non-positive level count or maximum value.
	ErrInvalidDiscretization = errors.New("hasher: invalid discretization parameters")
)
