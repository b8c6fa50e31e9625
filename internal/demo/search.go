package demo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlearn/search"
)

// Search walks through the linear vs. binary search lesson.
func Search(ctx context.Context, env Env) error {
	p := env.Out
	cfg := env.Config.Search

	p.Title("Linear vs. binary search over a product catalog")

	// 1) Build the synthetic catalog.
	p.Step("Generating a synthetic catalog")
	catalog, err := search.GenerateCatalog(cfg.CatalogSize, cfg.Seed)
	if err != nil {
		return err
	}
	first, last := catalog[0], catalog[len(catalog)-1]
	p.KV(
		"products", humanize.Comma(int64(len(catalog))),
		"seed", strconv.FormatInt(cfg.Seed, 10),
		"first", first.String(),
		"last", last.String(),
	)
	p.Note("IDs are sorted and have gaps, so some IDs in range do not exist")

	// 2) Search a handful of interesting targets.
	p.Step("Looking up products by ID")
	targets := pickTargets(catalog)
	rows := make([][]string, 0, len(targets))
	for _, id := range targets {
		li, ls := search.LinearByID(catalog, id)
		bi, bs, err := search.BinaryByID(catalog, id)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			"#" + strconv.Itoa(id),
			foundLabel(li),
			humanize.Comma(int64(ls.Comparisons)),
			humanize.Comma(int64(bs.Comparisons)),
		})
		if li != bi {
			return fmt.Errorf("linear and binary search disagree on #%d: %d vs %d", id, li, bi)
		}
	}
	p.Table([]string{"Target", "Result", "Linear cmp", "Binary cmp"}, rows)
	p.Note("binary search never needs more than %d comparisons here (⌊log₂ n⌋+1)",
		int(math.Floor(math.Log2(float64(len(catalog)))))+1)

	// 3) Time both on the same targets.
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Step("Timing %d rounds per target", cfg.Rounds)
	rep, err := search.Compare(catalog, targets, cfg.Rounds)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, r := range rep.Rows {
		rows = append(rows, []string{"#" + strconv.Itoa(r.Target), r.LinearTime.String(), r.BinaryTime.String()})
	}
	p.Table([]string{"Target", "Linear", "Binary"}, rows)
	lt, bt := rep.Elapsed()
	p.KV(
		"total linear", lt.String(),
		"total binary", bt.String(),
		"comparison ratio", fmt.Sprintf("%.0fx fewer comparisons for binary search", rep.Speedup()),
	)
	env.logger().Debug("search timings", zap.Duration("linear", lt), zap.Duration("binary", bt))

	// 4) Linear search still has its place.
	p.Step("Searching by name")
	name := catalog[len(catalog)/3].Name
	i, st := search.LinearByName(catalog, name)
	p.Line("%q found at index %s after %s comparisons", name, humanize.Comma(int64(i)), humanize.Comma(int64(st.Comparisons)))
	p.Note("names are not sorted, so only a linear scan can answer this")

	// 5) The precondition of binary search.
	p.Step("Binary search on a shuffled catalog")
	shuffled := search.ShuffledCopy(catalog, cfg.Seed+1)
	if _, _, err := search.BinaryByID(shuffled, last.ID); errors.Is(err, search.ErrUnsorted) {
		p.Fail("%v", err)
		p.Note("sort once (O(n log n)) and every later lookup is O(log n)")
	} else {
		p.Line("the shuffle happened to keep the catalog sorted")
	}
	return nil
}

// pickTargets returns the first, middle and last IDs, one missing ID inside
// the range and one beyond it.
func pickTargets(catalog []search.Product) []int {
	n := len(catalog)
	targets := []int{catalog[0].ID, catalog[n/2].ID, catalog[n-1].ID}
	for i := 1; i < n; i++ {
		if catalog[i].ID-catalog[i-1].ID > 1 {
			targets = append(targets, catalog[i-1].ID+1)
			break
		}
	}
	return append(targets, catalog[n-1].ID+100)
}

func foundLabel(i int) string {
	if i == search.NotFound {
		return "not found"
	}
	return "index " + humanize.Comma(int64(i))
}
