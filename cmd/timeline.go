package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	month string
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the amounts invested month by month" }
func (*timelineCmd) Usage() string {
	return `fdash timeline [-m <month>]

  Displays, for each month up to the selected one, the amount invested that
  month and its current value. The month defaults to the as-of month.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Last month of the timeline (YYYY-MM)")
}

func (c *timelineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, ds, status := loadDataset(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if month == "" {
		month = ds.Prices.AsOfMonth()
	}

	printMarkdown(renderer.TimelineMarkdown(folio.Timeline(ds.Transactions, ds.Prices.Prices, month), cfg.Currency))
	return subcommands.ExitSuccess
}
