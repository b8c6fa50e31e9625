package forecast

import "sync"

type fvKey struct {
	present float64
	rate    float64
	n       int
}

type twoKey struct {
	h0, h1 float64
	growth float64
	n      int
}

// Forecaster is the memoized counterpart of the recursive functions. Every
// intermediate value it computes is cached, so repeated or overlapping
// forecasts only pay for the periods not seen before.
//
// A Forecaster is safe for concurrent use; calls are serialized.
type Forecaster struct {
	mu     sync.Mutex
	fv     map[fvKey]float64
	two    map[twoKey]float64
	hits   int
	misses int
}

// NewForecaster returns an empty Forecaster.
func NewForecaster() *Forecaster {
	return &Forecaster{
		fv:  make(map[fvKey]float64),
		two: make(map[twoKey]float64),
	}
}

// FutureValue returns FV(periods) using the same recurrence as
// FutureValueRecursive, caching every FV(k) on the way.
func (f *Forecaster) FutureValue(present, rate float64, periods int) (float64, error) {
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	if err := validatePeriods(periods, MaxRecursivePeriods); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.futureValue(fvKey{present: present, rate: rate, n: periods}), nil
}

func (f *Forecaster) futureValue(k fvKey) float64 {
	if k.n == 0 {
		return k.present
	}
	if v, ok := f.fv[k]; ok {
		f.hits++
		return v
	}
	f.misses++
	prev := k
	prev.n--
	v := f.futureValue(prev) * (1 + k.rate)
	f.fv[k] = v
	return v
}

// TwoPeriod returns V(n) of the two-period smoothing recurrence. A fresh
// evaluation computes each of V(2)..V(n) exactly once.
func (f *Forecaster) TwoPeriod(h0, h1, growth float64, n int) (float64, error) {
	if err := ValidateRate(growth); err != nil {
		return 0, err
	}
	if err := validatePeriods(n, MaxRecursivePeriods); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.twoPeriod(twoKey{h0: h0, h1: h1, growth: growth, n: n}), nil
}

func (f *Forecaster) twoPeriod(k twoKey) float64 {
	switch k.n {
	case 0:
		return k.h0
	case 1:
		return k.h1
	}
	if v, ok := f.two[k]; ok {
		f.hits++
		return v
	}
	f.misses++
	k1, k2 := k, k
	k1.n--
	k2.n -= 2
	prev := f.twoPeriod(k1)
	prev2 := f.twoPeriod(k2)
	v := (prev + prev2) / 2 * (1 + k.growth)
	f.two[k] = v
	return v
}

// VariableGrowth returns the whole series V(0)..V(len(rates)) of the
// variable-growth recurrence. Each V(k) is computed once from the memo of
// V(k-1); the memo lives for this call only since schedules rarely repeat.
func (f *Forecaster) VariableGrowth(present float64, rates []float64) ([]float64, error) {
	if err := validateRates(rates); err != nil {
		return nil, err
	}
	memo := make([]float64, len(rates)+1)
	memo[0] = present
	for k := 1; k <= len(rates); k++ {
		memo[k] = memo[k-1] * (1 + rates[k-1])
	}

	f.mu.Lock()
	f.misses += len(rates)
	f.mu.Unlock()
	return memo, nil
}

// Stats returns cache hits and misses since creation or the last Reset.
func (f *Forecaster) Stats() (hits, misses int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits, f.misses
}

// Len returns the number of cached values.
func (f *Forecaster) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fv) + len(f.two)
}

// Reset drops the cache and zeroes the counters.
func (f *Forecaster) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fv = make(map[fvKey]float64)
	f.two = make(map[twoKey]float64)
	f.hits, f.misses = 0, 0
}
