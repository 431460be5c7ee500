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

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	period string
	sort   string
	asc    bool
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the performance of each ticker over a period" }
func (*performanceCmd) Usage() string {
	return `fdash performance [-p <period>] [-s <field>] [-asc]

  Displays the dashboard figures and the performance of each ticker over the
  period, with its weight and its contribution to the total gain.
  The period defaults to the configured one.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period: MTD, QTD, YTD, LM, LQ, LTM or SI")
	f.StringVar(&c.sort, "s", folio.DefaultSort.Field, "Sort the tickers by this field")
	f.BoolVar(&c.asc, "asc", false, "Sort in ascending order")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var period date.PeriodKey
	if c.period != "" {
		var err error
		if period, err = date.ParsePeriodKey(c.period); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	sort, err := sortState(c.sort, c.asc, folio.AggregateRow{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sort field: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, ds, status := loadDataset(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if period == "" {
		period = cfg.PeriodKey()
	}

	ctx, span := logger.StartSpan(ctx, "folio.ComputeDashboard", attribute.String("command", c.Name()), attribute.String("period", string(period)))
	defer span.End()
	rc := folio.NewRenderContext(ds, folio.Selection{Period: period}, sort, "", cfg.AggregateOptions())
	warnMissing(ctx, rc.Result.Missing)

	printMarkdown(renderer.PerformanceMarkdown(rc, cfg.Currency))
	return subcommands.ExitSuccess
}
