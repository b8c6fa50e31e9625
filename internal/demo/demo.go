// Package demo holds the narrated scenario sequences of every lesson and the
// interactive menu that picks one of them.
//
// A demo only reads its Env: sample data comes from Env.Config, narration
// goes to Env.Out and diagnostics to Env.Log. Demos do not depend on one
// another.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlearn/internal/config"
	"github.com/katalvlaran/lvlearn/internal/console"
)

// ErrUnknownDemo is returned by Lookup for an unregistered name.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// Env is everything a demo may touch.
type Env struct {
	In     io.Reader
	Out    *console.Printer
	Config config.Config
	Log    *zap.Logger
}

func (e Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Demo is one lesson.
type Demo struct {
	Name    string
	Title   string
	Summary string
	Run     func(ctx context.Context, env Env) error
}

// Registry lists the demos in their fixed presentation order.
func Registry() []Demo {
	return []Demo{
		{
			Name:    "factory",
			Title:   "Factory Method: document management",
			Summary: "factories decide which concrete document to build",
			Run:     Factory,
		},
		{
			Name:    "search",
			Title:   "Linear vs. binary search over a product catalog",
			Summary: "O(n) scan against O(log n) halving on sorted data",
			Run:     Search,
		},
		{
			Name:    "forecast",
			Title:   "Recursive vs. memoized financial forecasting",
			Summary: "naive recursion against cached sub-results",
			Run:     Forecast,
		},
		{
			Name:    "singleton",
			Title:   "Singleton: one logger for the whole process",
			Summary: "lazy, once-only initialization observed from many goroutines",
			Run:     Singleton,
		},
	}
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, error) {
	for _, d := range Registry() {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Run executes one demo, logging its start and outcome.
func Run(ctx context.Context, env Env, d Demo) error {
	log := env.logger().With(zap.String("demo", d.Name))
	log.Debug("demo started")
	if err := d.Run(ctx, env); err != nil {
		log.Error("demo failed", zap.Error(err))
		return fmt.Errorf("%s demo: %w", d.Name, err)
	}
	if err := env.Out.Err(); err != nil {
		return fmt.Errorf("%s demo: write output: %w", d.Name, err)
	}
	log.Debug("demo finished")
	return nil
}

// RunAll runs every registered demo in order, stopping at the first error or
// when ctx is cancelled.
func RunAll(ctx context.Context, env Env) error {
	for i, d := range Registry() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			env.Out.Blank()
		}
		if err := Run(ctx, env, d); err != nil {
			return err
		}
	}
	return nil
}
