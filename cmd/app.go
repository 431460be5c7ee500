// Package cmd implements the CLI application to explore a portfolio dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/etnz/folio/logger"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// Commands returns the subcommands by group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"dashboard": {&holdingsCmd{}, &performanceCmd{}},
		"explore":   {&tickerCmd{}, &timelineCmd{}, &tickersCmd{}},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default folio.yaml, or $FOLIO_CONFIG)")
var transactionsSource = flag.String("transactions", "", "Path or URL of the transactions CSV. Overrides the configuration.")
var pricesSource = flag.String("prices", "", "Path or URL of the prices JSON. Overrides the configuration.")
var currency = flag.String("currency", "", "Currency used to format amounts. Overrides the configuration.")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// LoadConfig reads the configuration, applies the global flags, and
// initializes the logger.
func LoadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return config.Config{}, err
	}
	if *transactionsSource != "" {
		cfg.Transactions = *transactionsSource
	}
	if *pricesSource != "" {
		cfg.Prices = *pricesSource
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if err := logger.Init(cfg.Log, os.Stderr); err != nil {
		return config.Config{}, fmt.Errorf("cannot initialize logger: %w", err)
	}
	return cfg, nil
}

// loadDataset loads the configuration and the dataset it points to.
// Errors are printed, and the returned status is not ExitSuccess.
func loadDataset(ctx context.Context) (config.Config, folio.Dataset, subcommands.ExitStatus) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return cfg, folio.Dataset{}, subcommands.ExitFailure
	}
	ds, err := folio.Load(ctx, cfg.Transactions, cfg.Prices, cfg.LoadOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return cfg, folio.Dataset{}, subcommands.ExitFailure
	}
	logger.Info(ctx, "dashboard data", "transactions", cfg.Transactions, "prices", cfg.Prices, "as_of", ds.Prices.AsOf)
	return cfg, ds, subcommands.ExitSuccess
}

// warnMissing logs the lots that could not be priced.
func warnMissing(ctx context.Context, missing []string) {
	if len(missing) > 0 {
		logger.Warn(ctx, "lots without a valid price or with invalid numbers", "count", len(missing), "tickers", missing)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// printMarkdown prints md to stdout, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	if *raw || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
