package folio

import (
	"slices"
	"strings"

	"github.com/etnz/folio/date"
)

// Timeline returns, for each month with priced lots, the amount invested that
// month and its current value. Months are in ascending order, up to and
// including upTo when it is not empty.
func Timeline(txs []Transaction, p PriceMap, upTo date.Month) []AggregateRow {
	priced, _ := PriceAll(txs, p)
	months, _ := Aggregate(priced, ByMonth, AggregateOptions{})
	slices.SortFunc(months, func(a, b AggregateRow) int { return strings.Compare(a.Key, b.Key) })
	if upTo == "" {
		return months
	}
	res := months[:0]
	for _, m := range months {
		if date.Month(m.Key) <= upTo {
			res = append(res, m)
		}
	}
	return res
}
