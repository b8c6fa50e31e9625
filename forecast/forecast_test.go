package forecast_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/forecast"
)

const relTol = 1e-9

// TestFutureValue_Equivalence checks recursive, memoized and closed-form
// results over a grid of inputs.
func TestFutureValue_Equivalence(t *testing.T) {
	f := forecast.NewForecaster()
	for _, present := range []float64{0, 1, 1000, 2500.75} {
		for _, rate := range []float64{-0.5, 0, 0.01, 0.05, 0.12} {
			for _, n := range []int{0, 1, 2, 10, 40, 120} {
				rec, err := forecast.FutureValueRecursive(present, rate, n)
				require.NoError(t, err)
				memo, err := f.FutureValue(present, rate, n)
				require.NoError(t, err)
				closed, err := forecast.FutureValueIterative(present, rate, n)
				require.NoError(t, err)

				assert.Equal(t, rec, memo, "same recurrence must give identical bits (p=%v r=%v n=%d)", present, rate, n)
				assert.InEpsilon(t, closed+1, rec+1, relTol, "p=%v r=%v n=%d", present, rate, n)
			}
		}
	}
}

func TestFutureValue_KnownValue(t *testing.T) {
	fv, err := forecast.FutureValueRecursive(1000, 0.05, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1628.894626777442, fv, 1e-9)

	fv, err = forecast.FutureValueRecursive(1000, 0.05, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fv)
}

func TestValidation(t *testing.T) {
	_, err := forecast.FutureValueRecursive(1, 0.1, -1)
	assert.ErrorIs(t, err, forecast.ErrNegativePeriods)
	_, err = forecast.FutureValueIterative(1, 0.1, -1)
	assert.ErrorIs(t, err, forecast.ErrNegativePeriods)
	_, err = forecast.FutureValueRecursive(1, 0.1, forecast.MaxRecursivePeriods+1)
	assert.ErrorIs(t, err, forecast.ErrTooManyPeriods)

	for _, bad := range []float64{-1, -2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = forecast.FutureValueRecursive(1, bad, 1)
		assert.ErrorIs(t, err, forecast.ErrInvalidRate, "rate %v", bad)
		_, err = forecast.NewForecaster().FutureValue(1, bad, 1)
		assert.ErrorIs(t, err, forecast.ErrInvalidRate, "rate %v", bad)
	}

	_, _, err = forecast.TwoPeriodRecursive(1, 1, 0, forecast.MaxNaivePeriods+1)
	assert.ErrorIs(t, err, forecast.ErrTooManyPeriods)
	_, _, err = forecast.TwoPeriodRecursive(1, 1, 0, -3)
	assert.ErrorIs(t, err, forecast.ErrNegativePeriods)

	_, err = forecast.VariableGrowthRecursive(1, nil)
	assert.ErrorIs(t, err, forecast.ErrEmptyRates)
	_, err = forecast.NewForecaster().VariableGrowth(1, []float64{0.1, -1})
	assert.ErrorIs(t, err, forecast.ErrInvalidRate)

	_, err = forecast.Project(time.Now(), forecast.Monthly, 1, 0.1, -1)
	assert.ErrorIs(t, err, forecast.ErrNegativePeriods)
}

// TestTwoPeriod_CallsAndMemo compares the naive call explosion with the
// memoized evaluation.
func TestTwoPeriod_CallsAndMemo(t *testing.T) {
	// Calls(n) = 2·Fib(n+1) - 1 for the naive recursion.
	fib := []int{0, 1}
	for len(fib) < 40 {
		fib = append(fib, fib[len(fib)-1]+fib[len(fib)-2])
	}

	for _, n := range []int{0, 1, 2, 5, 15, 25} {
		rec, st, err := forecast.TwoPeriodRecursive(100, 104, 0.01, n)
		require.NoError(t, err)
		assert.Equal(t, 2*fib[n+1]-1, st.Calls, "n=%d", n)

		f := forecast.NewForecaster()
		memo, err := f.TwoPeriod(100, 104, 0.01, n)
		require.NoError(t, err)
		assert.Equal(t, rec, memo, "n=%d", n)

		_, misses := f.Stats()
		want := n - 1
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, misses, "each period computed once (n=%d)", n)
	}

	// the memoized version handles horizons the naive one refuses
	f := forecast.NewForecaster()
	_, err := f.TwoPeriod(100, 104, 0.01, 500)
	require.NoError(t, err)
}

// TestForecaster_CacheReuse shows overlapping forecasts hitting the cache.
func TestForecaster_CacheReuse(t *testing.T) {
	f := forecast.NewForecaster()
	_, err := f.FutureValue(1000, 0.05, 10)
	require.NoError(t, err)
	hits, misses := f.Stats()
	assert.Equal(t, 0, hits)
	assert.Equal(t, 10, misses)
	assert.Equal(t, 10, f.Len())

	_, err = f.FutureValue(1000, 0.05, 12)
	require.NoError(t, err)
	hits, misses = f.Stats()
	assert.Equal(t, 1, hits, "FV(10) reused")
	assert.Equal(t, 12, misses)

	_, err = f.FutureValue(1000, 0.05, 5)
	require.NoError(t, err)
	hits, _ = f.Stats()
	assert.Equal(t, 2, hits)

	f.Reset()
	hits, misses = f.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
	assert.Zero(t, f.Len())
}

func TestVariableGrowth(t *testing.T) {
	rates := []float64{0.02, -0.01, 0.03, 0.015, 0}
	rec, err := forecast.VariableGrowthRecursive(2000, rates)
	require.NoError(t, err)

	f := forecast.NewForecaster()
	series, err := f.VariableGrowth(2000, rates)
	require.NoError(t, err)
	require.Len(t, series, len(rates)+1)
	assert.Equal(t, 2000.0, series[0])
	assert.Equal(t, rec, series[len(series)-1])

	_, misses := f.Stats()
	assert.Equal(t, len(rates), misses)

	// constant schedule equals compound growth
	flat, err := forecast.VariableGrowthRecursive(500, []float64{0.04, 0.04, 0.04})
	require.NoError(t, err)
	fv, _ := forecast.FutureValueRecursive(500, 0.04, 3)
	assert.Equal(t, fv, flat)
}

func TestForecaster_Concurrent(t *testing.T) {
	f := forecast.NewForecaster()
	want, _ := forecast.FutureValueRecursive(100, 0.03, 60)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.FutureValue(100, 0.03, 60)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()

	_, misses := f.Stats()
	assert.Equal(t, 60, misses, "each period computed once across goroutines")
}

func TestProject(t *testing.T) {
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	pts, err := forecast.Project(start, forecast.Quarterly, 1000, 0.02, 4)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Equal(t, start, pts[0].At)
	assert.Equal(t, 1000.0, pts[0].Value)
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), pts[4].At)

	fv, _ := forecast.FutureValueRecursive(1000, 0.02, 4)
	assert.Equal(t, fv, pts[4].Value)
	for i, p := range pts {
		assert.Equal(t, i, p.Period)
	}

	yearly, err := forecast.Project(start, forecast.Yearly, 1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2026, yearly[2].At.Year())
}

func TestStep(t *testing.T) {
	for _, s := range []forecast.Step{forecast.Monthly, forecast.Quarterly, forecast.Yearly} {
		got, err := forecast.ParseStep(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := forecast.ParseStep("weekly")
	assert.ErrorIs(t, err, forecast.ErrUnknownStep)
	assert.Equal(t, "unknown", forecast.Step(7).String())
}

func TestTooManyPeriods_LinearGuard(t *testing.T) {
	n := forecast.MaxRecursivePeriods + 1
	_, err := forecast.FutureValueRecursive(1, 0.01, n)
	assert.ErrorIs(t, err, forecast.ErrTooManyPeriods)
	assert.NotContains(t, err.Error(), "naive")

	_, err = forecast.Project(time.Now(), forecast.Monthly, 1, 0.01, n)
	assert.ErrorIs(t, err, forecast.ErrTooManyPeriods)
}

func TestValidateRate(t *testing.T) {
	for _, r := range []float64{-1, -2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, forecast.ValidateRate(r), forecast.ErrInvalidRate, "rate %v", r)
	}
	for _, r := range []float64{-0.99, 0, 0.05, 3} {
		assert.NoError(t, forecast.ValidateRate(r), "rate %v", r)
	}
}
