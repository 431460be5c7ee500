package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type tickersCmd struct{}

func (*tickersCmd) Name() string     { return "tickers" }
func (*tickersCmd) Synopsis() string { return "list the tickers of the transactions" }
func (*tickersCmd) Usage() string {
	return `fdash tickers

  Lists the distinct tickers of the transactions, with their current price.
`
}

func (*tickersCmd) SetFlags(*flag.FlagSet) {}

func (c *tickersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ds, status := loadDataset(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.TickersMarkdown(folio.Tickers(ds.Transactions), ds.Prices.Prices, cfg.Currency))
	return subcommands.ExitSuccess
}
