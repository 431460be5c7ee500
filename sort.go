package folio

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Fielder is a row whose fields can be read by name, for sorting and filtering.
// Field returns nil for unknown names.
type Fielder interface {
	Field(name string) any
}

// fieldName normalizes field names so that "avg_cost", "avgCost" and
// "AvgCost" are the same.
func fieldName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}

// Field implements Fielder.
func (r PricedRow) Field(name string) any {
	switch fieldName(name) {
	case "ticker":
		return r.Ticker
	case "month":
		return string(r.Month)
	case "shares":
		return r.Shares
	case "avgcost":
		return r.AvgCost
	case "price":
		return r.Price
	case "invested":
		return r.Invested
	case "value":
		return r.Value
	case "gain":
		return r.Gain
	case "gainpct":
		return r.GainPct
	}
	return nil
}

// Field implements Fielder. The key is reachable as "key", "ticker" and "month".
func (r AggregateRow) Field(name string) any {
	switch fieldName(name) {
	case "key", "ticker", "month":
		return r.Key
	case "invested":
		return r.Invested
	case "value":
		return r.Value
	case "gain":
		return r.Gain
	case "gainpct":
		return r.GainPct
	case "weight":
		return r.Weight
	case "contribpct":
		return r.ContribPct
	case "txns":
		return float64(r.Txns)
	}
	return nil
}

// Direction is a sort direction.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) String() string {
	if d == Asc {
		return "asc"
	}
	return "desc"
}

// ParseDirection parses "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "", "desc":
		return Desc, nil
	default:
		return Desc, fmt.Errorf("unknown sort direction %q, want asc or desc", s)
	}
}

// SortRows returns a copy of rows stably sorted by field.
//
// Strings are compared lexicographically and numbers numerically. NaN values
// always come last, whatever the direction. An unknown field keeps the order.
func SortRows[T Fielder](rows []T, field string, dir Direction) []T {
	res := slices.Clone(rows)
	slices.SortStableFunc(res, func(a, b T) int {
		return compareFields(a.Field(field), b.Field(field), dir)
	})
	return res
}

func compareFields(av, bv any, dir Direction) int {
	sign := 1
	if dir == Desc {
		sign = -1
	}
	as, aStr := av.(string)
	bs, bStr := bv.(string)
	if aStr || bStr {
		if !aStr {
			as = fmt.Sprint(av)
		}
		if !bStr {
			bs = fmt.Sprint(bv)
		}
		return sign * strings.Compare(as, bs)
	}
	an, bn := asFloat(av), asFloat(bv)
	switch {
	case math.IsNaN(an) && math.IsNaN(bn):
		return 0
	case math.IsNaN(an):
		return 1
	case math.IsNaN(bn):
		return -1
	}
	return sign * cmp.Compare(an, bn)
}

func asFloat(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return math.NaN()
}

// FilterTicker returns the rows whose ticker contains query, case
// insensitively. An empty query returns all rows.
func FilterTicker[T Fielder](rows []T, query string) []T {
	q := CanonicalTicker(query)
	if q == "" {
		return rows
	}
	var res []T
	for _, r := range rows {
		if t, ok := r.Field("ticker").(string); ok && strings.Contains(t, q) {
			res = append(res, r)
		}
	}
	return res
}
