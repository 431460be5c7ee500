// Package config loads the dashboard configuration from a YAML file, a .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
	"github.com/etnz/folio/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file used when none is given.
const DefaultFile = "folio.yaml"

// Config is the dashboard configuration.
type Config struct {
	Transactions   string        `yaml:"transactions"`    // path or URL of the transactions CSV.
	Prices         string        `yaml:"prices"`          // path or URL of the price JSON.
	PricesPath     string        `yaml:"prices_path"`     // JSONPath of the prices in the price file.
	AsOfPath       string        `yaml:"as_of_path"`      // JSONPath of the as-of date in the price file.
	Currency       string        `yaml:"currency"`        // ISO code used to format amounts.
	Period         string        `yaml:"period"`          // default period key.
	WeightBasis    string        `yaml:"weight_basis"`    // selection or global.
	ContribEpsilon float64       `yaml:"contrib_epsilon"` // see folio.AggregateOptions.
	Log            logger.Config `yaml:"log"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Transactions:   "portfolio.csv",
		Prices:         "prices.json",
		PricesPath:     folio.DefaultPricesPath,
		AsOfPath:       folio.DefaultAsOfPath,
		Currency:       "USD",
		Period:         string(date.YTD),
		WeightBasis:    folio.WeightSelection.String(),
		ContribEpsilon: folio.DefaultContribEpsilon,
		Log:            logger.DefaultConfig(),
	}
}

// Load returns the configuration read from file, on top of the defaults,
// then overridden by the environment. Variables in a .env file in the current
// directory are loaded first, without overriding the existing environment.
//
// A missing file is not an error when file is DefaultFile.
func Load(file string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	if file == "" {
		file = os.Getenv("FOLIO_CONFIG")
	}
	if file == "" {
		file = DefaultFile
	}

	cfg := Default()
	content, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist) && file == DefaultFile:
	case err != nil:
		return Config{}, fmt.Errorf("cannot read config %q: %w", file, err)
	default:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("cannot parse config %q: %w", file, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", file, err)
	}
	return cfg, nil
}

// applyEnv overrides c with the environment variables that are set.
func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Transactions, "FOLIO_TRANSACTIONS")
	setString(&c.Prices, "FOLIO_PRICES")
	setString(&c.Currency, "FOLIO_CURRENCY")
	setString(&c.Period, "FOLIO_PERIOD")
	setString(&c.WeightBasis, "FOLIO_WEIGHT_BASIS")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	if v, err := strconv.ParseBool(os.Getenv("LOG_TRACING_ENABLED")); err == nil {
		c.Log.Tracing = v
	}
}

// Validate checks the values that can be checked without loading anything.
func (c Config) Validate() error {
	var errs []error
	if _, err := date.ParsePeriodKey(c.Period); err != nil {
		errs = append(errs, err)
	}
	if _, err := folio.ParseWeightBasis(c.WeightBasis); err != nil {
		errs = append(errs, err)
	}
	if c.ContribEpsilon < 0 {
		errs = append(errs, fmt.Errorf("contrib_epsilon must not be negative, got %v", c.ContribEpsilon))
	}
	if strings.TrimSpace(c.Currency) == "" {
		errs = append(errs, errors.New("currency must not be empty"))
	}
	return errors.Join(errs...)
}

// PeriodKey returns the configured default period.
func (c Config) PeriodKey() date.PeriodKey {
	k, err := date.ParsePeriodKey(c.Period)
	if err != nil {
		return date.YTD
	}
	return k
}

// AggregateOptions returns the aggregation options.
func (c Config) AggregateOptions() folio.AggregateOptions {
	w, _ := folio.ParseWeightBasis(c.WeightBasis)
	return folio.AggregateOptions{Weight: w, ContribEpsilon: c.ContribEpsilon}
}

// LoadOptions returns the options to load the dataset.
func (c Config) LoadOptions() folio.LoadOptions {
	return folio.LoadOptions{PricesPath: c.PricesPath, AsOfPath: c.AsOfPath}
}
