package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest tags every validation failure; errors.Is reports it
// for all four concrete error kinds below.
var ErrInvalidRequest = errors.New("invalid chart request")

// MismatchedLengthsError reports labels and values of different lengths.
type MismatchedLengthsError struct {
	Labels int
	Values int
}

func (e *MismatchedLengthsError) Error() string {
	return fmt.Sprintf("labels and values must have the same length: %d labels, %d values",
		e.Labels, e.Values)
}

func (e *MismatchedLengthsError) Unwrap() error { return ErrInvalidRequest }

// EmptySeriesError reports a request with no data points.
type EmptySeriesError struct{}

func (e *EmptySeriesError) Error() string {
	return "chart requires at least one data point"
}

func (e *EmptySeriesError) Unwrap() error { return ErrInvalidRequest }

// NonPositiveDimensionError reports a width or height that is not a
// positive pixel count.
type NonPositiveDimensionError struct {
	// Dimension is "width" or "height".
	Dimension string
	Value     int
}

func (e *NonPositiveDimensionError) Error() string {
	return fmt.Sprintf("%s must be positive, got %d", e.Dimension, e.Value)
}

func (e *NonPositiveDimensionError) Unwrap() error { return ErrInvalidRequest }

// ZeroTotalError reports a pie request whose values sum to zero, which
// leaves slice proportions undefined.
type ZeroTotalError struct {
	Values []float64
}

func (e *ZeroTotalError) Error() string {
	return fmt.Sprintf("pie chart values sum to zero: %v", e.Values)
}

func (e *ZeroTotalError) Unwrap() error { return ErrInvalidRequest }
