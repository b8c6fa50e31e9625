// Package cli wires the lessons into a cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlearn/applog"
	"github.com/katalvlaran/lvlearn/internal/config"
	"github.com/katalvlaran/lvlearn/internal/console"
	"github.com/katalvlaran/lvlearn/internal/demo"
)

type options struct {
	configPath string
	verbose    bool
	noColor    bool
}

// Execute runs the CLI against the process streams and returns the exit
// code. Any error is printed once as "Error: <message>".
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Narration goes to out, logs and
// errors to errOut; the menu reads its single line from in.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	var env demo.Env

	root := &cobra.Command{
		Use:   "lvlearn",
		Short: "lvlearn - runnable lessons on classic patterns and algorithms",
		Long: `lvlearn runs small narrated lessons:

  factory    Factory Method applied to document management
  search     linear vs. binary search over a product catalog
  forecast   recursive vs. memoized financial forecasting
  singleton  a process-wide logger built as a Singleton

Run without a subcommand to pick a lesson from a menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			env, err = setup(opts, in, out, errOut)
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = applog.Instance().Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return demo.Menu(cmd.Context(), env)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file overriding the sample data")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "print plain text")

	for _, d := range demo.Registry() {
		d := d
		root.AddCommand(&cobra.Command{
			Use:   d.Name,
			Short: d.Title,
			Long:  d.Title + ": " + d.Summary + ".",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return demo.Run(cmd.Context(), env, d)
			},
		})
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "Run every lesson in order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return demo.RunAll(cmd.Context(), env)
			},
		},
		&cobra.Command{
			Use:   "menu",
			Short: "Pick a lesson interactively",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return demo.Menu(cmd.Context(), env)
			},
		},
	)
	return root
}

// setup loads the configuration and configures the process logger before
// its first use.
func setup(opts *options, in io.Reader, out, errOut io.Writer) (demo.Env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return demo.Env{}, err
	}

	level := cfg.Log.Level
	if opts.verbose {
		level = "debug"
	}
	err = applog.Init(applog.Config{Level: level, Format: strings.ToLower(cfg.Log.Format), Output: errOut})
	switch {
	case errors.Is(err, applog.ErrAlreadyInitialized):
		// a previous command in this process already created the logger
	case err != nil:
		return demo.Env{}, err
	}

	log := applog.Instance().Named("lvlearn")
	log.Debug("configuration loaded",
		zap.String("path", opts.configPath),
		zap.Int("catalog_size", cfg.Search.CatalogSize),
		zap.Int("workers", cfg.Singleton.Workers))

	return demo.Env{
		In:     in,
		Out:    console.New(out, !opts.noColor),
		Config: cfg,
		Log:    log,
	}, nil
}
