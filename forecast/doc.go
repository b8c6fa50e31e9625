// Package forecast contrasts naive recursion with memoization on small
// financial forecasting formulas.
//
// 🚀 Formulas
//
//	Future value (compound growth):
//	  FV(0) = present
//	  FV(n) = FV(n-1) · (1 + rate)
//
//	Variable growth (one rate per period):
//	  V(0) = present
//	  V(k) = V(k-1) · (1 + rates[k-1])
//
//	Two-period smoothing (the expensive one):
//	  V(0) = h0, V(1) = h1
//	  V(n) = (V(n-1) + V(n-2)) / 2 · (1 + growth)
//
// The first two recurse linearly, so naive recursion costs O(n) calls and
// memoization only helps when the same forecasts are asked for again. The
// third branches twice per level: the naive version makes O(φⁿ) calls
// (Stats.Calls shows it) while the memoized Forecaster makes n-1.
//
// ⚙️ Usage
//
//	fv, err := forecast.FutureValueRecursive(1000, 0.05, 10)
//
//	f := forecast.NewForecaster()
//	v, err := f.TwoPeriod(100, 104, 0.01, 30)
//	hits, misses := f.Stats()
//
//	points, err := forecast.Project(start, forecast.Monthly, 1000, 0.004, 12)
//
// Guarantees
//
//   - Recursive and memoized results are numerically equivalent
//     (identical operation order, so bit-for-bit in practice).
//   - Forecaster is safe for concurrent use.
//
// Errors
//
//   - ErrNegativePeriods if periods < 0 (or n < 0).
//   - ErrInvalidRate     if a rate is ≤ -1, NaN or ±Inf (see ValidateRate).
//   - ErrTooManyPeriods  if a horizon exceeds MaxRecursivePeriods, or
//     MaxNaivePeriods for TwoPeriodRecursive.
//   - ErrEmptyRates      if a variable-growth schedule is empty.
//   - ErrUnknownStep     if ParseStep does not recognize the name.
//
// Non-goal: this is not a forecasting engine; no statistics, no fitting.
package forecast
