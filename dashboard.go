package folio

import (
	"fmt"

	"github.com/etnz/folio/date"
)

// Selection is the window of transactions a dashboard is computed on.
//
// When Month is set, the window is that single month. Otherwise Period is
// resolved against the as-of month. The zero Selection selects every
// transaction, including the ones without a month.
type Selection struct {
	Period date.PeriodKey
	Month  date.Month
}

// All reports whether s selects every transaction.
func (s Selection) All() bool { return s.Period == "" && s.Month == "" }

// Range returns the range of months selected for the as-of month asOf.
// It is meaningless when All is true.
func (s Selection) Range(asOf date.Month) date.Range {
	if s.Month != "" {
		return date.Single(s.Month)
	}
	return date.Resolve(s.Period, asOf)
}

// Filter returns the transactions in the selection.
func (s Selection) Filter(txs []Transaction, asOf date.Month) []Transaction {
	if s.All() {
		return txs
	}
	return InRange(txs, s.Range(asOf))
}

// Label describes the selection, like "Year-to-Date: Jan 2025 → Mar 2025".
func (s Selection) Label(asOf date.Month) string {
	switch {
	case s.All():
		return "All transactions"
	case s.Month != "":
		return s.Month.Label()
	default:
		return fmt.Sprintf("%s: %s", s.Period.Label(), s.Range(asOf))
	}
}

// DashboardResult holds every figure of a dashboard.
type DashboardResult struct {
	AsOf      string
	Selection Selection
	Label     string

	Holdings []PricedRow    // priced lots of the selection.
	ByTicker []AggregateRow // lots aggregated per ticker.
	Totals   Totals

	IRR   float64 // annualized money-weighted return, meaningful if IRROK.
	IRROK bool

	Best, Worst AggregateRow // highest and lowest GainPct, meaningful if len(ByTicker) > 0.

	UniqueTickers int
	Transactions  int      // transactions in the selection, priced or not.
	Missing       []string // tickers of the lots that could not be priced.
}

// ComputeDashboard computes the dashboard of the selection sel.
//
// It is a pure function: identical inputs give identical results, and
// nothing is kept between calls.
func ComputeDashboard(txs []Transaction, prices PriceFile, sel Selection, opts AggregateOptions) DashboardResult {
	asOf := prices.AsOfMonth()
	selected := sel.Filter(txs, asOf)

	res := DashboardResult{
		AsOf:         prices.AsOf,
		Selection:    sel,
		Label:        sel.Label(asOf),
		Transactions: len(selected),
	}
	res.Holdings, res.Missing = PriceAll(selected, prices.Prices)

	if opts.Weight == WeightGlobal {
		all, _ := PriceAll(txs, prices.Prices)
		_, global := Aggregate(all, ByTicker, AggregateOptions{})
		opts.GlobalValue = global.Value
	}
	res.ByTicker, res.Totals = Aggregate(res.Holdings, ByTicker, opts)
	res.UniqueTickers = len(res.ByTicker)

	res.Best, _ = Best(res.ByTicker)
	res.Worst, _ = Worst(res.ByTicker)

	if cashflows := BuildCashflows(res.Holdings, asOf); cashflows != nil {
		res.IRR, res.IRROK = IRR(cashflows)
	}
	return res
}

// SortState is the column and direction tables are sorted by.
type SortState struct {
	Field string
	Dir   Direction
}

// DefaultSort sorts by value, largest first.
var DefaultSort = SortState{Field: "value", Dir: Desc}

// RenderContext is everything a render pass needs. It is built for a single
// render and never shared.
type RenderContext struct {
	Selection Selection
	Sort      SortState
	Filter    string // ticker search, see FilterTicker.
	Result    DashboardResult
}

// NewRenderContext computes the dashboard of ds for the selection.
func NewRenderContext(ds Dataset, sel Selection, sort SortState, filter string, opts AggregateOptions) RenderContext {
	if sort.Field == "" {
		sort = DefaultSort
	}
	return RenderContext{
		Selection: sel,
		Sort:      sort,
		Filter:    filter,
		Result:    ComputeDashboard(ds.Transactions, ds.Prices, sel, opts),
	}
}

// Rows returns the per ticker rows to display: filtered and sorted.
func (c RenderContext) Rows() []AggregateRow {
	return SortRows(FilterTicker(c.Result.ByTicker, c.Filter), c.Sort.Field, c.Sort.Dir)
}

// HoldingRows returns the lots to display: filtered and sorted.
func (c RenderContext) HoldingRows() []PricedRow {
	return SortRows(FilterTicker(c.Result.Holdings, c.Filter), c.Sort.Field, c.Sort.Dir)
}
