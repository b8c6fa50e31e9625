package forecast_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvlearn/forecast"
)

// ExampleTwoPeriodRecursive shows the call explosion of the naive recursion
// next to the memoized Forecaster computing the same value.
func ExampleTwoPeriodRecursive() {
	v, st, err := forecast.TwoPeriodRecursive(100, 104, 0.01, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("naive:    %.2f after %d calls\n", v, st.Calls)

	f := forecast.NewForecaster()
	m, err := f.TwoPeriod(100, 104, 0.01, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, misses := f.Stats()
	fmt.Printf("memoized: %.2f after %d evaluations\n", m, misses)
	// Output:
	// naive:    116.72 after 21891 calls
	// memoized: 116.72 after 19 evaluations
}

// ExampleProject stamps a quarterly compound-growth forecast.
func ExampleProject() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	points, err := forecast.Project(start, forecast.Quarterly, 1000, 0.02, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range points {
		fmt.Printf("%s  %8.2f\n", p.At.Format("2006-01-02"), p.Value)
	}
	// Output:
	// 2024-01-01   1000.00
	// 2024-04-01   1020.00
	// 2024-07-01   1040.40
	// 2024-10-01   1061.21
	// 2025-01-01   1082.43
}

// ExampleFutureValueRecursive computes ten years of 5% compound growth.
func ExampleFutureValueRecursive() {
	fv, err := forecast.FutureValueRecursive(1000, 0.05, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", fv)
	// Output:
	// 1628.89
}
