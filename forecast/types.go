package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors.
var (
	// ErrNegativePeriods is returned for a negative horizon.
	ErrNegativePeriods = errors.New("forecast: periods must be non-negative")

	// ErrInvalidRate is returned for a rate ≤ -1, NaN or ±Inf.
	ErrInvalidRate = errors.New("forecast: rate must be finite and greater than -1")

	// ErrTooManyPeriods is returned when a horizon exceeds its recursion guard.
	ErrTooManyPeriods = errors.New("forecast: too many periods")

	// ErrEmptyRates is returned for an empty variable-growth schedule.
	ErrEmptyRates = errors.New("forecast: rate schedule is empty")

	// ErrUnknownStep is returned by ParseStep for an unrecognized name.
	ErrUnknownStep = errors.New("forecast: unknown step")
)

const (
	// MaxRecursivePeriods bounds the depth of the linear recursions.
	MaxRecursivePeriods = 100_000

	// MaxNaivePeriods bounds TwoPeriodRecursive; at n=35 it already makes
	// about 30 million calls.
	MaxNaivePeriods = 35
)

// Stats counts invocations of a naive recursive function.
type Stats struct {
	Calls int
}

// Point is a forecast value stamped with the period it belongs to.
type Point struct {
	Period int
	At     time.Time
	Value  float64
}

// Step is the calendar distance between two consecutive periods.
type Step int

const (
	// Monthly advances one calendar month per period.
	Monthly Step = iota
	// Quarterly advances three calendar months per period.
	Quarterly
	// Yearly advances one calendar year per period.
	Yearly
)

// String returns the lower-case step name.
func (s Step) String() string {
	switch s {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// ParseStep maps "monthly", "quarterly" or "yearly" to a Step.
func ParseStep(s string) (Step, error) {
	switch s {
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	case "yearly":
		return Yearly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, s)
}

// after returns t advanced by n steps.
func (s Step) after(t time.Time, n int) time.Time {
	switch s {
	case Quarterly:
		return t.AddDate(0, 3*n, 0)
	case Yearly:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, n, 0)
	}
}

// ValidateRate reports whether rate is usable as a per-period rate:
// finite and greater than -1. It returns nil or an ErrInvalidRate error.
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= -1 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	return nil
}

func validatePeriods(n, limit int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativePeriods, n)
	}
	if n > limit {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPeriods, n, limit)
	}
	return nil
}
