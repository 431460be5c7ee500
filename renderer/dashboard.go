package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/folio"
)

// kpis writes the headline figures of a dashboard.
func kpis(b *strings.Builder, r folio.DashboardResult, cur string) {
	irr := Undefined
	if r.IRROK {
		irr = Pct(r.IRR)
	}
	best, worst := Undefined, Undefined
	if len(r.ByTicker) > 0 {
		best = fmt.Sprintf("%s (%s)", r.Best.Key, Pct(r.Best.GainPct))
		worst = fmt.Sprintf("%s (%s)", r.Worst.Key, Pct(r.Worst.GainPct))
	}
	table(b, "lr", []string{"Figure", "Value"}, [][]string{
		{"Invested", Money(r.Totals.Invested, cur)},
		{"Value", Money(r.Totals.Value, cur)},
		{"Gain", Money(r.Totals.Gain, cur)},
		{"Return", Pct(r.Totals.ReturnPct)},
		{"IRR (annualized)", irr},
		{"Winner", best},
		{"Loser", worst},
		{"Tickers", strconv.Itoa(r.UniqueTickers)},
		{"Transactions", strconv.Itoa(r.Transactions)},
	})
}

// HoldingsMarkdown renders the lots of the selection, with the totals.
func HoldingsMarkdown(c folio.RenderContext, cur string) string {
	r := c.Result
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings: %s\n\n", r.Label)
	asOf(&b, r.AsOf)
	missing(&b, r.Missing)
	kpis(&b, r, cur)

	lots := c.HoldingRows()
	rows := make([][]string, 0, len(lots)+1)
	var invested, value float64
	for _, l := range lots {
		rows = append(rows, []string{
			l.Ticker,
			string(l.Month),
			Shares(l.Shares),
			Money(l.AvgCost, cur),
			Money(l.Price, cur),
			Money(l.Invested, cur),
			Money(l.Value, cur),
			Money(l.Gain, cur),
			Pct(l.GainPct),
		})
		invested += l.Invested
		value += l.Value
	}
	gain := value - invested
	gainPct := 0.0
	if invested != 0 {
		gainPct = gain / invested
	}
	rows = append(rows, []string{"**Total**", "", "", "", "", Money(invested, cur), Money(value, cur), Money(gain, cur), Pct(gainPct)})

	fmt.Fprintln(&b, "## Lots")
	fmt.Fprintln(&b)
	table(&b, "llrrrrrrr", []string{"Ticker", "Month", "Shares", "Avg Cost", "Price", "Invested", "Value", "Gain", "Gain %"}, rows)
	return b.String()
}

// PerformanceMarkdown renders the per ticker performance of the selection.
func PerformanceMarkdown(c folio.RenderContext, cur string) string {
	r := c.Result
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance: %s\n\n", r.Label)
	asOf(&b, r.AsOf)
	missing(&b, r.Missing)
	kpis(&b, r, cur)

	aggs := c.Rows()
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, []string{
			a.Key,
			Money(a.Invested, cur),
			Money(a.Value, cur),
			Money(a.Gain, cur),
			Pct(a.GainPct),
			Pct(a.ContribPct),
			Pct(a.Weight),
			strconv.Itoa(a.Txns),
		})
	}
	fmt.Fprintf(&b, "## By Ticker (sorted by %s %s)\n\n", c.Sort.Field, c.Sort.Dir)
	table(&b, "lrrrrrrr", []string{"Ticker", "Invested", "Value", "Gain", "Gain %", "Contrib %", "Weight", "Txns"}, rows)
	return b.String()
}
