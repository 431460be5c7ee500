package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// tickerCmd holds the flags for the 'ticker' subcommand.
type tickerCmd struct {
	ticker string
	sort   string
	asc    bool
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "display every lot of a ticker" }
func (*tickerCmd) Usage() string {
	return `fdash ticker -t <ticker> [-s <field>] [-asc]

  Displays every lot of a ticker, priced or not. Values that cannot be
  computed are displayed as "—".
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to display (case insensitive)")
	f.StringVar(&c.sort, "s", "month", "Sort the lots by this field")
	f.BoolVar(&c.asc, "asc", false, "Sort in ascending order")
}

func (c *tickerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker := folio.CanonicalTicker(c.ticker)
	if ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
		return subcommands.ExitUsageError
	}
	sort, err := sortState(c.sort, c.asc, folio.PricedRow{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sort field: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, ds, status := loadDataset(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	price, ok := ds.Prices.Prices.Lookup(ticker)
	if !ok {
		price = math.NaN()
	}
	lots := folio.SortRows(folio.TickerLots(ds.Transactions, ds.Prices.Prices, ticker), sort.Field, sort.Dir)
	printMarkdown(renderer.TickerMarkdown(ticker, price, lots, ds.Prices.AsOf, cfg.Currency))
	return subcommands.ExitSuccess
}
