package folio

import (
	"math"
	"slices"

	"github.com/etnz/folio/date"
)

// PricedRow is the valuation of one lot at the current price.
type PricedRow struct {
	Ticker   string
	Month    date.Month
	Shares   float64
	AvgCost  float64 // TotalCost / Shares
	Price    float64
	Invested float64 // TotalCost
	Value    float64 // Shares * Price
	Gain     float64 // Value - Invested
	GainPct  float64 // Gain / Invested, 0 when nothing was invested.
}

// PriceStatus is the outcome of pricing a transaction.
type PriceStatus int

const (
	Priced  PriceStatus = iota
	Skipped             // not a row: empty ticker.
	Missing             // no valid price, invalid shares or cost, or a value out of range.
)

func (s PriceStatus) String() string {
	switch s {
	case Priced:
		return "priced"
	case Skipped:
		return "skipped"
	default:
		return "missing"
	}
}

// Price values tx at the prices in p.
func Price(tx Transaction, p PriceMap) (PricedRow, PriceStatus) {
	t := CanonicalTicker(tx.Ticker)
	if t == "" {
		return PricedRow{}, Skipped
	}
	price, ok := p.Lookup(t)
	if !ok || !tx.Valid() {
		return PricedRow{Ticker: t, Month: tx.Month}, Missing
	}
	row := newPricedRow(t, tx.Month, tx.Shares, tx.TotalCost, price)
	if !finite(row.Value) || !finite(row.Gain) || !finite(row.GainPct) {
		return PricedRow{Ticker: t, Month: tx.Month}, Missing
	}
	return row, Priced
}

func newPricedRow(ticker string, m date.Month, shares, cost, price float64) PricedRow {
	value := shares * price
	gain := value - cost
	return PricedRow{
		Ticker:   ticker,
		Month:    m,
		Shares:   shares,
		AvgCost:  cost / shares,
		Price:    price,
		Invested: cost,
		Value:    value,
		Gain:     gain,
		GainPct:  ratio(gain, cost),
	}
}

// PriceAll prices every transaction. Transactions that cannot be priced are
// excluded from rows and their canonical ticker is appended to missing, once
// per occurrence.
func PriceAll(txs []Transaction, p PriceMap) (rows []PricedRow, missing []string) {
	for _, tx := range txs {
		row, status := Price(tx, p)
		switch status {
		case Priced:
			rows = append(rows, row)
		case Missing:
			missing = append(missing, row.Ticker)
		}
	}
	return rows, missing
}

// TickerLots returns every lot of ticker, valued at the current price when
// possible. Unlike PriceAll, no lot is dropped: values that cannot be
// computed are NaN.
func TickerLots(txs []Transaction, p PriceMap, ticker string) []PricedRow {
	t := CanonicalTicker(ticker)
	if t == "" {
		return nil
	}
	price, ok := p.Lookup(t)
	if !ok {
		price = math.NaN()
	}
	var rows []PricedRow
	for _, tx := range txs {
		if CanonicalTicker(tx.Ticker) != t {
			continue
		}
		row := PricedRow{
			Ticker:   t,
			Month:    tx.Month,
			Shares:   tx.Shares,
			Price:    price,
			Invested: tx.TotalCost,
			AvgCost:  math.NaN(),
		}
		if finite(tx.Shares) && tx.Shares != 0 {
			row.AvgCost = tx.TotalCost / tx.Shares
		}
		// NaN propagates through the arithmetic.
		row.Value = tx.Shares * price
		row.Gain = row.Value - tx.TotalCost
		row.GainPct = math.NaN()
		if finite(tx.TotalCost) && tx.TotalCost != 0 && finite(row.Gain) {
			row.GainPct = row.Gain / tx.TotalCost
		}
		rows = append(rows, row)
	}
	return rows
}

// Tickers returns the sorted list of distinct canonical tickers in txs.
func Tickers(txs []Transaction) []string {
	seen := make(map[string]bool)
	var res []string
	for _, tx := range txs {
		t := CanonicalTicker(tx.Ticker)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		res = append(res, t)
	}
	slices.Sort(res)
	return res
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
