package folio

import (
	"cmp"
	"math"
	"slices"

	"github.com/etnz/folio/date"
)

// Cashflow is an amount of money at a whole month offset from a reference
// month. Contributions are negative, the ending value is positive.
type Cashflow struct {
	Offset int
	Amount float64
}

// Bisection parameters of the IRR solver. The search is bounded so that the
// solver cost is fixed whatever the input.
const (
	irrLow       = -0.95 // -95% per month
	irrHigh      = 10.0  // +1000% per month
	irrWideHigh  = 50.0  // upper bound when [irrLow, irrHigh] has no sign change.
	irrMaxIter   = 120
	irrPrecision = 1e-8
)

// npv returns the net present value of cashflows at the monthly rate r.
func npv(r float64, cashflows []Cashflow) float64 {
	var s float64
	for _, cf := range cashflows {
		s += cf.Amount / math.Pow(1+r, float64(cf.Offset))
	}
	return s
}

// IRR returns the annualized money-weighted rate of return of cashflows.
//
// The monthly rate is found by bisection of the net present value, then
// compounded over 12 months. ok is false when there is no solution: fewer
// than two cashflows, no negative or no positive amount, no sign change in
// the search interval, or a non finite net present value.
func IRR(cashflows []Cashflow) (annual float64, ok bool) {
	if len(cashflows) < 2 {
		return 0, false
	}
	var hasNeg, hasPos bool
	for _, cf := range cashflows {
		hasNeg = hasNeg || cf.Amount < 0
		hasPos = hasPos || cf.Amount > 0
	}
	if !hasNeg || !hasPos {
		return 0, false
	}

	low, high := irrLow, irrHigh
	fLow, fHigh := npv(low, cashflows), npv(high, cashflows)
	if !finite(fLow) || !finite(fHigh) {
		return 0, false
	}
	if fLow*fHigh > 0 {
		// widen once, no unbounded search.
		high = irrWideHigh
		fHigh = npv(high, cashflows)
		if !finite(fHigh) || fLow*fHigh > 0 {
			return 0, false
		}
	}

	for k := 0; k < irrMaxIter; k++ {
		mid := (low + high) / 2
		fMid := npv(mid, cashflows)
		if !finite(fMid) {
			return 0, false
		}
		if math.Abs(fMid) < irrPrecision {
			low, high = mid, mid
			break
		}
		if fLow*fMid <= 0 {
			high = mid
		} else {
			low, fLow = mid, fMid
		}
	}
	monthly := (low + high) / 2
	annual = math.Pow(1+monthly, 12) - 1
	if !finite(annual) {
		return 0, false
	}
	return annual, true
}

// BuildCashflows returns the cashflows of rows valued at asOf.
//
// Each month's invested amount is a contribution (a negative cashflow) at its
// offset from the earliest month; the total value of rows is a single
// positive cashflow at the asOf offset. Rows without a valid month are
// ignored. It returns nil when no row has a valid month.
func BuildCashflows(rows []PricedRow, asOf date.Month) []Cashflow {
	var dated []PricedRow
	for _, r := range rows {
		if r.Month.Valid() {
			dated = append(dated, r)
		}
	}
	if len(dated) == 0 || !asOf.Valid() {
		return nil
	}
	months, totals := Aggregate(dated, ByMonth, AggregateOptions{})
	start := date.Month(months[0].Key)
	for _, m := range months {
		if date.Month(m.Key) < start {
			start = date.Month(m.Key)
		}
	}

	cashflows := make([]Cashflow, 0, len(months)+1)
	for _, m := range months {
		if m.Invested == 0 {
			continue
		}
		cashflows = append(cashflows, Cashflow{Offset: date.Month(m.Key).Sub(start), Amount: -m.Invested})
	}
	slices.SortFunc(cashflows, func(a, b Cashflow) int { return cmp.Compare(a.Offset, b.Offset) })
	return append(cashflows, Cashflow{Offset: asOf.Sub(start), Amount: totals.Value})
}
