package demo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidChoice is returned when the menu input matches no entry.
var ErrInvalidChoice = errors.New("demo: invalid menu choice")

// Menu prints the numbered demo list, reads exactly one line from env.In
// and runs the chosen branch: a number, a demo name, "a" for all demos or
// "q" (or empty input) to quit.
func Menu(ctx context.Context, env Env) error {
	demos := Registry()
	p := env.Out
	p.Title("lvlearn: pick a lesson")
	for i, d := range demos {
		p.Line("%d) %-10s %s", i+1, d.Name, d.Summary)
	}
	p.Line("a) %-10s run every lesson in order", "all")
	p.Line("q) %-10s leave", "quit")
	p.Blank()
	p.Line("Select a lesson: ")
	if err := p.Err(); err != nil {
		return err
	}

	choice, err := readChoice(env.In)
	if err != nil {
		return err
	}
	env.logger().Debug("menu choice read")

	switch choice {
	case "", "q", "quit":
		p.Note("nothing selected, bye")
		return p.Err()
	case "a", "all":
		p.Blank()
		return RunAll(ctx, env)
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(demos) {
			return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidChoice, n, len(demos))
		}
		p.Blank()
		return Run(ctx, env, demos[n-1])
	}
	d, err := Lookup(choice)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	p.Blank()
	return Run(ctx, env, d)
}

// readChoice performs the single blocking line read. A final line without a
// newline is accepted.
func readChoice(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("demo: read choice: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
