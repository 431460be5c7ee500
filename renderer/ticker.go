package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// TickerMarkdown renders every lot of a single ticker.
// price is NaN when the ticker has no price.
func TickerMarkdown(ticker string, price float64, lots []folio.PricedRow, asOfDate, cur string) string {
	var b strings.Builder
	title := "Transactions"
	if ticker != "" {
		title = "Transactions: " + ticker
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	asOf(&b, asOfDate)
	fmt.Fprintf(&b, "Price: %s, Rows: %d\n\n", Money(price, cur), len(lots))

	rows := make([][]string, 0, len(lots))
	for _, l := range lots {
		rows = append(rows, []string{
			string(l.Month),
			l.Ticker,
			Shares(l.Shares),
			Money(l.AvgCost, cur),
			Money(l.Price, cur),
			Money(l.Invested, cur),
			Money(l.Value, cur),
			Money(l.Gain, cur),
			Pct(l.GainPct),
		})
	}
	table(&b, "llrrrrrrr", []string{"Month", "Ticker", "Shares", "Avg Cost", "Price", "Invested", "Value", "Gain", "Gain %"}, rows)
	return b.String()
}

// TickersMarkdown renders the list of known tickers, with their price.
func TickersMarkdown(tickers []string, prices folio.PriceMap, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tickers\n\n")
	rows := make([][]string, 0, len(tickers))
	for _, t := range tickers {
		price := Undefined
		if p, ok := prices.Lookup(t); ok {
			price = Money(p, cur)
		}
		rows = append(rows, []string{t, price})
	}
	table(&b, "lr", []string{"Ticker", "Price"}, rows)
	return b.String()
}
