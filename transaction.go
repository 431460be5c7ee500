package folio

import (
	"slices"
	"strings"

	"github.com/etnz/folio/date"
)

// Transaction is one purchase lot, as read from the transactions file.
type Transaction struct {
	Ticker    string     // as written in the file, trimmed.
	Shares    float64    // NaN if missing or invalid.
	TotalCost float64    // cost basis paid for Shares, NaN if missing or invalid.
	Month     date.Month // bucketing key, empty when unknown.
}

// CanonicalTicker returns the canonical form of a ticker: trimmed and upper case.
func CanonicalTicker(t string) string { return strings.ToUpper(strings.TrimSpace(t)) }

// Valid reports whether the lot has usable numbers: finite positive shares
// and a finite total cost.
func (tx Transaction) Valid() bool {
	return finite(tx.Shares) && tx.Shares > 0 && finite(tx.TotalCost)
}

// Months returns the sorted list of distinct non empty months of txs.
func Months(txs []Transaction) []date.Month {
	seen := make(map[date.Month]bool)
	var months []date.Month
	for _, tx := range txs {
		if tx.Month == "" || seen[tx.Month] {
			continue
		}
		seen[tx.Month] = true
		months = append(months, tx.Month)
	}
	slices.Sort(months)
	return months
}

// InRange returns the transactions whose month is in r.
func InRange(txs []Transaction, r date.Range) []Transaction {
	var res []Transaction
	for _, tx := range txs {
		if r.Contains(tx.Month) {
			res = append(res, tx)
		}
	}
	return res
}
