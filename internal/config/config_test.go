package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/forecast"
	"github.com/katalvlaran/lvlearn/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	start, err := cfg.Forecast.StartTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("empty path should yield defaults (-want +got):\n%s", diff)
	}

	cfg, err = config.Parse([]byte("   \n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_Overrides checks that a partial file only touches the keys it names.
func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlearn.yaml")
	data := `
search:
  catalog_size: 5000
  seed: 7
forecast:
  history: [10, 11]
  step: monthly
factory:
  documents:
    - file: a.pdf
      size: 10
singleton:
  workers: 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Search.CatalogSize = 5000
	want.Search.Seed = 7
	want.Forecast.History = [2]float64{10, 11}
	want.Forecast.Step = "monthly"
	want.Factory.Documents = []config.DocumentSpec{{File: "a.pdf", Size: 10}}
	want.Singleton.Workers = 3
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("search:\n  catalog_sise: 10\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Parse([]byte("search: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"no documents":  func(c *config.Config) { c.Factory.Documents = nil },
		"blank file":    func(c *config.Config) { c.Factory.Documents[0].File = "" },
		"negative size": func(c *config.Config) { c.Factory.Documents[0].Size = -1 },
		"catalog size":  func(c *config.Config) { c.Search.CatalogSize = 0 },
		"rounds":        func(c *config.Config) { c.Search.Rounds = 0 },
		"periods":       func(c *config.Config) { c.Forecast.Periods = -1 },
		"rate":          func(c *config.Config) { c.Forecast.Rate = -1 },
		"rate NaN":      func(c *config.Config) { c.Forecast.Rate = math.NaN() },
		"rate Inf":      func(c *config.Config) { c.Forecast.Rate = math.Inf(1) },
		"rate above 1":  func(c *config.Config) { c.Forecast.Rate = 1.5 },
		"growth":        func(c *config.Config) { c.Forecast.Growth = -2 },
		"growth NaN":    func(c *config.Config) { c.Forecast.Growth = math.NaN() },
		"periods big":   func(c *config.Config) { c.Forecast.Periods = forecast.MaxRecursivePeriods },
		"step":          func(c *config.Config) { c.Forecast.Step = "weekly" },
		"start":         func(c *config.Config) { c.Forecast.Start = "01/02/2025" },
		"naive too big": func(c *config.Config) { c.Forecast.NaivePeriods = 99 },
		"workers":       func(c *config.Config) { c.Singleton.Workers = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	cfg := config.Default()
	cfg.Search.Rounds = 0
	cfg.Singleton.Workers = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.rounds")
	assert.Contains(t, err.Error(), "singleton.workers")
}

// TestParse_ForecastGuards rejects values the forecast lesson could not run.
func TestParse_ForecastGuards(t *testing.T) {
	for _, data := range []string{
		"forecast:\n  growth: -2\n",
		"forecast:\n  rate: .nan\n",
		"forecast:\n  rate: .inf\n",
		"forecast:\n  periods: 100000\n",
	} {
		_, err := config.Parse([]byte(data))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, "input %q", data)
	}

	cfg, err := config.Parse([]byte("forecast:\n  periods: 99998\n  rate: -0.9\n"))
	require.NoError(t, err)
	assert.Equal(t, config.MaxForecastPeriods, cfg.Forecast.Periods)
}
