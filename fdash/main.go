// Command fdash renders a portfolio dashboard from a transactions CSV and a
// prices JSON.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio"
	"github.com/etnz/folio/cmd"
	"github.com/etnz/folio/date"
	"github.com/etnz/folio/logger"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell to complete a command line.
	completion().Complete(name)

	flag.Parse()
	status := commander.Execute(context.Background())
	_ = logger.Shutdown(context.Background())
	os.Exit(int(status))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range cmd.Commands() {
		for _, c := range cmds {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
		}
	}
	return root
}

// flagPredictors returns a predictor for every flag of f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	periods := make(predict.Set, 0, len(date.PeriodKeys))
	for _, p := range date.PeriodKeys {
		periods = append(periods, string(p))
	}
	known := map[string]complete.Predictor{
		"config":       predict.Files("*.yaml"),
		"transactions": predict.Files("*.csv"),
		"prices":       predict.Files("*.json"),
		"p":            periods,
		"s":            predict.Set(cmd.SortFields),
		"t":            complete.PredictFunc(tickers),
		"m":            complete.PredictFunc(months),
	}
	res := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch p, ok := known[fl.Name]; {
		case ok:
			res[fl.Name] = p
		case isBool(fl):
			res[fl.Name] = predict.Nothing
		default:
			res[fl.Name] = predict.Something
		}
	})
	return res
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// dataset loads the configured dataset, or nothing.
func dataset() folio.Dataset {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return folio.Dataset{}
	}
	ds, err := folio.Load(context.Background(), cfg.Transactions, cfg.Prices, cfg.LoadOptions())
	if err != nil {
		return folio.Dataset{}
	}
	return ds
}

// tickers predicts the tickers of the configured transactions.
func tickers(prefix string) []string { return folio.Tickers(dataset().Transactions) }

// months predicts the months of the configured transactions.
func months(prefix string) []string {
	var res []string
	for _, m := range folio.Months(dataset().Transactions) {
		res = append(res, string(m))
	}
	return res
}
