package llah

import (
	"errors"
	"fmt"

	"github.com/hupe1980/llah/hasher"
)

var (
	// ErrInvalidConfig is returned by New for an unusable neighbor count, combination
	// size or hasher.
	ErrInvalidConfig = errors.New("llah: invalid configuration")

	// ErrInsufficientPoints is returned when a document has fewer than N+1 points.
	ErrInsufficientPoints = errors.New("llah: not enough points")

	// ErrNotLearned is returned when registering before LearnHashing succeeded.
	ErrNotLearned = hasher.ErrNotLearned
)

// InsufficientPointsError reports how many points registration needed.
//
// It matches ErrInsufficientPoints with errors.Is.
type InsufficientPointsError struct {
	Required int
	Actual   int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("llah: need at least %d points, got %d", e.Required, e.Actual)
}

func (e *InsufficientPointsError) Unwrap() error { return ErrInsufficientPoints }
