package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlearn/applog"
)

// Singleton walks through the Singleton logger lesson.
func Singleton(ctx context.Context, env Env) error {
	p := env.Out
	workers := env.Config.Singleton.Workers

	p.Title("Singleton: one logger for the whole process")

	// 1) First access creates the instance.
	p.Step("Fetching the logger")
	a := applog.Instance()
	p.KV(
		"instance id", a.ID(),
		"created at", a.CreatedAt().Format(time.RFC3339),
	)
	p.Note("created lazily on first access, guarded by sync.Once")

	// 2) Later accesses return the same pointer.
	p.Step("Fetching it again")
	b := applog.Instance()
	if a == b {
		p.Ok("same pointer, same id %s", shortID(b.ID()))
	} else {
		p.Fail("two instances: %s and %s", a.ID(), b.ID())
	}

	// 3) Many goroutines at once.
	p.Step("Fetching it from %d goroutines", workers)
	ids, err := applog.Probe(ctx, workers)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, []string{fmt.Sprint(i + 1), shortID(id)})
	}
	p.Table([]string{"Goroutine", "Instance"}, rows)
	if applog.SameInstance(ids) && ids[0] == a.ID() {
		p.Ok("all %d goroutines observed the same instance", len(ids))
	} else {
		p.Fail("goroutines observed different instances")
	}

	// 4) Configuration is closed once the instance exists.
	p.Step("Reconfiguring after first use")
	if err := applog.Init(applog.DefaultConfig()); errors.Is(err, applog.ErrAlreadyInitialized) {
		p.Fail("%v", err)
		p.Note("configure with Init before the first Instance call")
	} else if err != nil {
		return err
	}

	// 5) Every part of the program writes through it.
	p.Step("Logging through the shared instance")
	before := a.Count()
	for i := 1; i <= 3; i++ {
		b.Info("singleton demo message", zap.Int("n", i))
	}
	p.Line("messages submitted: %d → %d (see the log output)", before, a.Count())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
