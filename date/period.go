package date

import (
	"fmt"
	"strings"
)

// PeriodKey identifies a reporting period relative to an as-of month.
type PeriodKey string

const (
	MTD PeriodKey = "MTD" // month to date
	QTD PeriodKey = "QTD" // quarter to date
	YTD PeriodKey = "YTD" // year to date
	LM  PeriodKey = "LM"  // last month
	LQ  PeriodKey = "LQ"  // last completed quarter
	LTM PeriodKey = "LTM" // last twelve months
	SI  PeriodKey = "SI"  // since inception
)

// PeriodKeys lists all the known period keys in display order.
var PeriodKeys = []PeriodKey{MTD, QTD, YTD, LM, LQ, LTM, SI}

// ParsePeriodKey parses a period key, case-insensitively.
func ParsePeriodKey(s string) (PeriodKey, error) {
	k := PeriodKey(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range PeriodKeys {
		if p == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown period %q, want one of %v", s, PeriodKeys)
}

// Label returns the long name of the period.
func (p PeriodKey) Label() string {
	switch p {
	case MTD:
		return "Month-to-Date"
	case QTD:
		return "Quarter-to-Date"
	case YTD:
		return "Year-to-Date"
	case LM:
		return "Last Month"
	case LQ:
		return "Last Quarter"
	case LTM:
		return "Last 12 Months"
	default:
		return "Since Inception"
	}
}

// Resolve returns the inclusive range of months covered by period p for the
// as-of month asOf. Unknown keys resolve like SI.
func Resolve(p PeriodKey, asOf Month) Range {
	switch p {
	case MTD:
		return Range{Start: asOf, End: asOf}
	case QTD:
		return Range{Start: asOf.QuarterStart(), End: asOf}
	case YTD:
		return Range{Start: asOf.YearStart(), End: asOf}
	case LM:
		lm := asOf.Add(-1)
		return Range{Start: lm, End: lm}
	case LQ:
		// the quarter that ended right before the current one.
		end := asOf.QuarterStart().Add(-1)
		return Range{Start: end.Add(-2), End: end}
	case LTM:
		return Range{Start: asOf.Add(-11), End: asOf}
	default:
		return Range{End: asOf}
	}
}
