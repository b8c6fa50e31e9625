package demo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvlearn/forecast"
)

// Forecast walks through the recursive vs. memoized forecasting lesson.
func Forecast(ctx context.Context, env Env) error {
	p := env.Out
	cfg := env.Config.Forecast

	p.Title("Recursive vs. memoized financial forecasting")

	// 1) Compound growth three ways.
	p.Step("Future value of %s at %.2f%% for %d periods", money(cfg.Present), cfg.Rate*100, cfg.Periods)
	rec, err := forecast.FutureValueRecursive(cfg.Present, cfg.Rate, cfg.Periods)
	if err != nil {
		return err
	}
	f := forecast.NewForecaster()
	memo, err := f.FutureValue(cfg.Present, cfg.Rate, cfg.Periods)
	if err != nil {
		return err
	}
	closed, err := forecast.FutureValueIterative(cfg.Present, cfg.Rate, cfg.Periods)
	if err != nil {
		return err
	}
	p.KV(
		"recursive", money(rec),
		"memoized", money(memo),
		"closed form", money(closed),
	)
	if rec == memo {
		p.Ok("recursive and memoized results are identical")
	} else {
		p.Fail("recursive and memoized results differ: %g vs %g", rec, memo)
	}

	// 2) Timestamped projection.
	step, err := forecast.ParseStep(cfg.Step)
	if err != nil {
		return err
	}
	start, err := cfg.StartTime()
	if err != nil {
		return err
	}
	p.Step("Projecting %s values", step)
	points, err := forecast.Project(start, step, cfg.Present, cfg.Rate, cfg.Periods)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		rows = append(rows, []string{fmt.Sprint(pt.Period), pt.At.Format("2006-01-02"), money(pt.Value)})
	}
	p.Table([]string{"Period", "Date", "Value"}, rows)

	// 3) Where recursion really hurts.
	if err := ctx.Err(); err != nil {
		return err
	}
	n := cfg.NaivePeriods
	p.Step("Two-period smoothing V(n) = (V(n-1)+V(n-2))/2·(1+g), n=%d", n)
	t0 := time.Now()
	naive, st, err := forecast.TwoPeriodRecursive(cfg.History[0], cfg.History[1], cfg.Growth, n)
	if err != nil {
		return err
	}
	naiveTime := time.Since(t0)

	f.Reset()
	t0 = time.Now()
	fast, err := f.TwoPeriod(cfg.History[0], cfg.History[1], cfg.Growth, n)
	if err != nil {
		return err
	}
	memoTime := time.Since(t0)
	_, misses := f.Stats()

	p.Table(
		[]string{"Version", "Value", "Work", "Time"},
		[][]string{
			{"naive", money(naive), humanize.Comma(int64(st.Calls)) + " calls", naiveTime.String()},
			{"memoized", money(fast), humanize.Comma(int64(misses)) + " evaluations", memoTime.String()},
		},
	)
	p.Note("every naive call recomputes both sub-forecasts; the memo computes each period once")

	// 4) Overlapping questions reuse the cache.
	p.Step("Asking overlapping questions")
	f.Reset()
	for _, periods := range []int{cfg.Periods, cfg.Periods + 2, cfg.Periods / 2} {
		v, err := f.FutureValue(cfg.Present, cfg.Rate, periods)
		if err != nil {
			return err
		}
		hits, misses := f.Stats()
		p.Line("FV(%d) = %s  (cache hits %d, misses %d)", periods, money(v), hits, misses)
	}

	// 5) A rate per period.
	p.Step("Variable growth schedule")
	// every entry stays within |cfg.Rate|, so a valid rate keeps the schedule valid
	rates := []float64{cfg.Rate, cfg.Rate / 2, -cfg.Rate / 4, cfg.Rate * 3 / 4, cfg.Rate}
	recV, err := forecast.VariableGrowthRecursive(cfg.Present, rates)
	if err != nil {
		return err
	}
	series, err := f.VariableGrowth(cfg.Present, rates)
	if err != nil {
		return err
	}
	for i, r := range rates {
		p.Line("period %d  rate %+6.2f%%  value %s", i+1, r*100, money(series[i+1]))
	}
	p.KV("recursive", money(recV), "memoized", money(series[len(series)-1]))
	return nil
}

// money renders v as dollars with at most two decimals.
// CommafWithDigits truncates, so round to cents first.
func money(v float64) string {
	return "$" + humanize.CommafWithDigits(math.Round(v*100)/100, 2)
}
