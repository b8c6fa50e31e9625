package forecast

import "time"

// Project returns periods+1 points starting at start: point i is stamped
// step·i after start and holds FV(i) for the given present value and
// per-period rate.
func Project(start time.Time, step Step, present, rate float64, periods int) ([]Point, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	if err := validatePeriods(periods, MaxRecursivePeriods); err != nil {
		return nil, err
	}
	points := make([]Point, periods+1)
	v := present
	for i := 0; i <= periods; i++ {
		if i > 0 {
			v *= 1 + rate
		}
		points[i] = Point{Period: i, At: step.after(start, i), Value: v}
	}
	return points, nil
}
