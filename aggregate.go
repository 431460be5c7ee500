package folio

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// AggregateRow is a group of priced lots folded together, per ticker or per month.
type AggregateRow struct {
	Key        string // the ticker or the month, depending on the KeyFunc.
	Invested   float64
	Value      float64
	Gain       float64
	GainPct    float64
	Weight     float64 // share of the total value.
	ContribPct float64 // share of the total gain, NaN when undefined.
	Txns       int     // number of lots in the group.
}

// Totals are the figures of a whole selection.
type Totals struct {
	Invested  float64
	Value     float64
	Gain      float64
	ReturnPct float64
	Txns      int
}

// KeyFunc returns the group of a row. Rows with an empty key are not aggregated.
type KeyFunc func(PricedRow) string

// ByTicker groups rows by ticker.
func ByTicker(r PricedRow) string { return r.Ticker }

// ByMonth groups rows by month.
func ByMonth(r PricedRow) string { return string(r.Month) }

// WeightBasis selects the total value weights are relative to.
type WeightBasis int

const (
	// WeightSelection computes weights against the total value of the selection.
	WeightSelection WeightBasis = iota
	// WeightGlobal computes weights against the value of the whole, unfiltered, portfolio.
	WeightGlobal
)

func (w WeightBasis) String() string {
	if w == WeightGlobal {
		return "global"
	}
	return "selection"
}

// ParseWeightBasis parses "selection" or "global".
func ParseWeightBasis(s string) (WeightBasis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "selection":
		return WeightSelection, nil
	case "global":
		return WeightGlobal, nil
	default:
		return WeightSelection, fmt.Errorf("unknown weight basis %q, want selection or global", s)
	}
}

// DefaultContribEpsilon is the default ContribEpsilon.
const DefaultContribEpsilon = 1e-3

// AggregateOptions configures Aggregate. The zero value is ready to use.
type AggregateOptions struct {
	Weight WeightBasis
	// GlobalValue is the unfiltered portfolio value, used with WeightGlobal.
	GlobalValue float64
	// ContribEpsilon is the total return, relative to the invested capital,
	// under which contributions to the total gain are undefined.
	// Zero or negative values mean DefaultContribEpsilon.
	ContribEpsilon float64
}

func (o AggregateOptions) epsilon() float64 {
	if o.ContribEpsilon <= 0 {
		return DefaultContribEpsilon
	}
	return o.ContribEpsilon
}

// Aggregate folds rows into groups defined by key.
//
// Sums are exact, so the result does not depend on the order of rows.
// Rows with a non finite invested amount or value are ignored.
// Groups are returned by value descending, then by key.
func Aggregate(rows []PricedRow, key KeyFunc, opts AggregateOptions) ([]AggregateRow, Totals) {
	type acc struct {
		invested, value decimal.Decimal
		txns            int
	}
	groups := make(map[string]*acc)
	var keys []string
	for _, r := range rows {
		k := key(r)
		if k == "" || !finite(r.Invested) || !finite(r.Value) {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
			keys = append(keys, k)
		}
		g.invested = g.invested.Add(decimal.NewFromFloat(r.Invested))
		g.value = g.value.Add(decimal.NewFromFloat(r.Value))
		g.txns++
	}

	var totalInvested, totalValue decimal.Decimal
	var totals Totals
	for _, g := range groups {
		totalInvested = totalInvested.Add(g.invested)
		totalValue = totalValue.Add(g.value)
		totals.Txns += g.txns
	}
	totals.Invested = totalInvested.InexactFloat64()
	totals.Value = totalValue.InexactFloat64()
	totals.Gain = totalValue.Sub(totalInvested).InexactFloat64()
	totals.ReturnPct = ratio(totals.Gain, totals.Invested)

	weightBase := totals.Value
	if opts.Weight == WeightGlobal {
		weightBase = opts.GlobalValue
	}
	contribDefined := !negligible(totals.Gain, totals.Invested, opts.epsilon())

	res := make([]AggregateRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		r := AggregateRow{
			Key:        k,
			Invested:   g.invested.InexactFloat64(),
			Value:      g.value.InexactFloat64(),
			Gain:       g.value.Sub(g.invested).InexactFloat64(),
			Txns:       g.txns,
			ContribPct: math.NaN(),
		}
		r.GainPct = ratio(r.Gain, r.Invested)
		r.Weight = ratio(r.Value, weightBase)
		if contribDefined {
			r.ContribPct = r.Gain / totals.Gain
		}
		res = append(res, r)
	}
	slices.SortFunc(res, func(a, b AggregateRow) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return res, totals
}

// negligible reports whether gain is within eps of zero, relative to
// invested (or absolutely when nothing is invested).
func negligible(gain, invested, eps float64) bool {
	if invested == 0 {
		return math.Abs(gain) <= eps
	}
	return math.Abs(gain) <= eps*math.Abs(invested)
}

// Best returns the row with the highest GainPct: the first of a stable sort
// by GainPct descending, so ties go to the earliest row.
func Best[T Fielder](rows []T) (best T, ok bool) {
	if len(rows) == 0 {
		return best, false
	}
	return SortRows(rows, "gainPct", Desc)[0], true
}

// Worst returns the row with the lowest GainPct: the first of a stable sort
// by GainPct ascending, so ties go to the earliest row.
func Worst[T Fielder](rows []T) (worst T, ok bool) {
	if len(rows) == 0 {
		return worst, false
	}
	return SortRows(rows, "gainPct", Asc)[0], true
}
