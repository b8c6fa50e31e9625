package forecast

import "math"

// FutureValueRecursive computes FV(periods) by plain recursion:
// FV(0) = present, FV(n) = FV(n-1)·(1+rate).
//
// Complexity: O(periods) time and stack.
func FutureValueRecursive(present, rate float64, periods int) (float64, error) {
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := validatePeriods(periods, MaxRecursivePeriods); err != nil {
		return 0, err
	}
	return futureValue(present, rate, periods), nil
}

func futureValue(present, rate float64, n int) float64 {
	if n == 0 {
		return present
	}
	return futureValue(present, rate, n-1) * (1 + rate)
}

// FutureValueIterative is the closed form present·(1+rate)^periods, used to
// cross-check the recursive versions. It may differ from them in the last
// few ulps.
func FutureValueIterative(present, rate float64, periods int) (float64, error) {
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	if periods < 0 {
		return 0, validatePeriods(periods, 0)
	}
	return present * math.Pow(1+rate, float64(periods)), nil
}

// VariableGrowthRecursive applies one rate per period by recursion:
// V(0) = present, V(k) = V(k-1)·(1+rates[k-1]). Returns V(len(rates)).
func VariableGrowthRecursive(present float64, rates []float64) (float64, error) {
	if err := validateRates(rates); err != nil {
		return 0, err
	}
	return variableGrowth(present, rates, len(rates)), nil
}

func variableGrowth(present float64, rates []float64, k int) float64 {
	if k == 0 {
		return present
	}
	return variableGrowth(present, rates, k-1) * (1 + rates[k-1])
}

// TwoPeriodRecursive evaluates V(n) = (V(n-1)+V(n-2))/2·(1+growth) with
// V(0)=h0 and V(1)=h1 by naive recursion. Each level recomputes both
// subtrees, so Stats.Calls grows like the Fibonacci numbers.
// n is capped at MaxNaivePeriods.
func TwoPeriodRecursive(h0, h1, growth float64, n int) (float64, Stats, error) {
	var st Stats
	if err := ValidateRate(growth); err != nil {
		return 0, st, err
	}
	if err := validatePeriods(n, MaxNaivePeriods); err != nil {
		return 0, st, err
	}
	v := twoPeriod(h0, h1, growth, n, &st)
	return v, st, nil
}

func twoPeriod(h0, h1, growth float64, n int, st *Stats) float64 {
	st.Calls++
	switch n {
	case 0:
		return h0
	case 1:
		return h1
	}
	prev := twoPeriod(h0, h1, growth, n-1, st)
	prev2 := twoPeriod(h0, h1, growth, n-2, st)
	return (prev + prev2) / 2 * (1 + growth)
}

func validateRates(rates []float64) error {
	if len(rates) == 0 {
		return ErrEmptyRates
	}
	if len(rates) > MaxRecursivePeriods {
		return validatePeriods(len(rates), MaxRecursivePeriods)
	}
	for _, r := range rates {
		if err := ValidateRate(r); err != nil {
			return err
		}
	}
	return nil
}
