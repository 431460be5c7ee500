package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
	"github.com/etnz/folio/logger"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"go.opentelemetry.io/otel/attribute"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	month  string
	period string
	filter string
	sort   string
	asc    bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the priced lots and the dashboard figures" }
func (*holdingsCmd) Usage() string {
	return `fdash holdings [-m <month>] [-p <period>] [-f <ticker>] [-s <field>] [-asc]

  Displays the dashboard figures and every priced lot of the selection.
  Without -m or -p, every transaction is selected.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Select a single month (YYYY-MM)")
	f.StringVar(&c.period, "p", "", "Select a period: MTD, QTD, YTD, LM, LQ, LTM or SI")
	f.StringVar(&c.filter, "f", "", "Only display the tickers containing this text")
	f.StringVar(&c.sort, "s", folio.DefaultSort.Field, "Sort the lots by this field")
	f.BoolVar(&c.asc, "asc", false, "Sort in ascending order")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	var period date.PeriodKey
	if c.period != "" {
		if period, err = date.ParsePeriodKey(c.period); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if month != "" && period != "" {
		fmt.Fprintln(os.Stderr, "Error: -m and -p are mutually exclusive")
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

	ctx, span := logger.StartSpan(ctx, "folio.ComputeDashboard", attribute.String("command", c.Name()))
	defer span.End()
	rc := folio.NewRenderContext(ds, folio.Selection{Period: period, Month: month}, sort, c.filter, cfg.AggregateOptions())
	warnMissing(ctx, rc.Result.Missing)

	printMarkdown(renderer.HoldingsMarkdown(rc, cfg.Currency))
	return subcommands.ExitSuccess
}
