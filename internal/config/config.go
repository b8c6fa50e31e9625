// internal/config/config.go
//
// Demo parameters. Every demo runs on hard-coded sample data; this package
// only lets the CLI override sizes, seeds and rates from a YAML file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlearn/forecast"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DateLayout is the format of ForecastConfig.Start.
const DateLayout = "2006-01-02"

// MaxForecastPeriods leaves room for the forecast lesson, which also asks
// for Periods+2.
const MaxForecastPeriods = forecast.MaxRecursivePeriods - 2

// DocumentSpec names one sample document of the factory demo.
type DocumentSpec struct {
	File string `yaml:"file"`
	Size int64  `yaml:"size"`
}

// FactoryConfig drives the Factory Method demo.
type FactoryConfig struct {
	Documents   []DocumentSpec `yaml:"documents"`
	EncryptPDF  bool           `yaml:"encrypt_pdf"`
	ExcelSheets int            `yaml:"excel_sheets"`
}

// SearchConfig drives the search comparison demo.
type SearchConfig struct {
	CatalogSize int   `yaml:"catalog_size"`
	Seed        int64 `yaml:"seed"`
	Rounds      int   `yaml:"rounds"`
}

// ForecastConfig drives the forecasting demo.
type ForecastConfig struct {
	Present      float64    `yaml:"present"`
	Rate         float64    `yaml:"rate"`
	Periods      int        `yaml:"periods"`
	Step         string     `yaml:"step"`
	Start        string     `yaml:"start"`
	History      [2]float64 `yaml:"history"`
	Growth       float64    `yaml:"growth"`
	NaivePeriods int        `yaml:"naive_periods"`
}

// SingletonConfig drives the singleton demo.
type SingletonConfig struct {
	Workers int `yaml:"workers"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the whole file.
type Config struct {
	Factory   FactoryConfig   `yaml:"factory"`
	Search    SearchConfig    `yaml:"search"`
	Forecast  ForecastConfig  `yaml:"forecast"`
	Singleton SingletonConfig `yaml:"singleton"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns the built-in sample data.
func Default() Config {
	return Config{
		Factory: FactoryConfig{
			Documents: []DocumentSpec{
				{File: "Project-Proposal.docx", Size: 24_500},
				{File: "Invoice-2024-117.pdf", Size: 182_000},
				{File: "Sales-Forecast.xlsx", Size: 61_300},
				{File: "meeting-notes.txt", Size: 1_200},
			},
			EncryptPDF:  true,
			ExcelSheets: 4,
		},
		Search: SearchConfig{
			CatalogSize: 100_000,
			Seed:        42,
			Rounds:      200,
		},
		Forecast: ForecastConfig{
			Present:      10_000,
			Rate:         0.05,
			Periods:      10,
			Step:         "yearly",
			Start:        "2025-01-01",
			History:      [2]float64{1200, 1260},
			Growth:       0.02,
			NaivePeriods: 30,
		},
		Singleton: SingletonConfig{Workers: 8},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges; every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if len(c.Factory.Documents) == 0 {
		fail("factory.documents is empty")
	}
	for i, d := range c.Factory.Documents {
		if d.File == "" {
			fail("factory.documents[%d].file is empty", i)
		}
		if d.Size < 0 {
			fail("factory.documents[%d].size is negative", i)
		}
	}
	if c.Search.CatalogSize < 1 {
		fail("search.catalog_size must be positive")
	}
	if c.Search.Rounds < 1 {
		fail("search.rounds must be positive")
	}
	if c.Forecast.Periods < 0 || c.Forecast.Periods > MaxForecastPeriods {
		fail("forecast.periods must be in [0, %d]", MaxForecastPeriods)
	}
	if err := forecast.ValidateRate(c.Forecast.Rate); err != nil || c.Forecast.Rate > 1 {
		fail("forecast.rate must be finite and in (-1, 1]")
	}
	if err := forecast.ValidateRate(c.Forecast.Growth); err != nil {
		fail("forecast.growth: %v", err)
	}
	if _, err := forecast.ParseStep(c.Forecast.Step); err != nil {
		fail("forecast.step: %v", err)
	}
	if _, err := c.Forecast.StartTime(); err != nil {
		fail("forecast.start: %v", err)
	}
	if c.Forecast.NaivePeriods < 0 || c.Forecast.NaivePeriods > forecast.MaxNaivePeriods {
		fail("forecast.naive_periods must be in [0, %d]", forecast.MaxNaivePeriods)
	}
	if c.Singleton.Workers < 1 {
		fail("singleton.workers must be positive")
	}
	return errors.Join(errs...)
}

// StartTime parses Start with DateLayout in UTC.
func (f ForecastConfig) StartTime() (time.Time, error) {
	return time.Parse(DateLayout, f.Start)
}
