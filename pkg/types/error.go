package types

import "fmt"

// ContainsNaNError is returned when an input field is NaN
type ContainsNaNError struct {
	At    uint64
	Field string
}

func (e *ContainsNaNError) Error() string {
	return fmt.Sprintf("contains NaN: at=%d field=%s", e.At, e.Field)
}

// ContainsInfiniteError is returned when an input field is +Inf or -Inf
type ContainsInfiniteError struct {
	At    uint64
	Field string
}

func (e *ContainsInfiniteError) Error() string {
	return fmt.Sprintf("contains infinite value: at=%d field=%s", e.At, e.Field)
}

// LongDurationNotGreaterError is returned by the dual-window indicators (MACD, awesome oscillator)
// when the long window is not greater than the short window.
type LongDurationNotGreaterError struct {
	Short int
	Long  int
}

func (e *LongDurationNotGreaterError) Error() string {
	return fmt.Sprintf("long duration %d is not greater than short duration %d", e.Long, e.Short)
}

// MustBePositiveError is returned when a tunable parameter is negative
type MustBePositiveError struct {
	Value float64
	Field string
}

func (e *MustBePositiveError) Error() string {
	return fmt.Sprintf("%s must be positive, got %f", e.Field, e.Value)
}

// DividedByZeroError is returned when a window aggregate used as a denominator is zero
type DividedByZeroError struct {
	At    uint64
	Field string
}

func (e *DividedByZeroError) Error() string {
	return fmt.Sprintf("divided by zero: at=%d field=%s", e.At, e.Field)
}
