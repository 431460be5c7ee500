// Package date provides the calendar arithmetic used to bucket and select
// transactions: months in their canonical "YYYY-MM" form, and the reporting
// periods (MTD, QTD, YTD, ...) resolved from an as-of month.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the canonical, zero-padded representation of a Month.
const MonthFormat = "2006-01"

// Month is a calendar month in the "YYYY-MM" format.
//
// Because the format is zero-padded, the lexicographic order of Months is the
// chronological order, so Months can be compared with the usual operators.
// The empty Month means "no month".
type Month string

// NewMonth returns the normalized Month for year and month. Out of range
// months roll over into adjacent years, like time.Date does.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month(t.Format(MonthFormat))
}

// ParseMonth parses "YYYY-MM". It is lenient and accepts "2025-3".
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	ys, ms, ok := strings.Cut(str, "-")
	if !ok {
		return "", fmt.Errorf("invalid month %q want format %q", str, MonthFormat)
	}
	y, err := strconv.Atoi(ys)
	if err != nil || len(ys) != 4 {
		return "", fmt.Errorf("invalid year in month %q", str)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return "", fmt.Errorf("invalid month number in %q", str)
	}
	return NewMonth(y, time.Month(m)), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MonthOf returns the month of an ISO-ish date string ("2025-03-14",
// "2025-03-14T10:00:00Z", ...). Only the first 7 characters are used.
func MonthOf(iso string) Month {
	s := strings.TrimSpace(iso)
	if len(s) > 7 {
		s = s[:7]
	}
	return Month(s)
}

// split returns the year and month number. ok is false if m is not a valid month.
func (m Month) split() (year int, month time.Month, ok bool) {
	p, err := ParseMonth(string(m))
	if err != nil || p != m {
		return 0, 0, false
	}
	y, _ := strconv.Atoi(string(m[:4]))
	mo, _ := strconv.Atoi(string(m[5:]))
	return y, time.Month(mo), true
}

// Valid reports whether m is a canonical "YYYY-MM" month.
func (m Month) Valid() bool {
	_, _, ok := m.split()
	return ok
}

// Add returns m shifted by n months (n can be negative).
// An invalid m is returned unchanged.
func (m Month) Add(n int) Month {
	y, mo, ok := m.split()
	if !ok {
		return m
	}
	return NewMonth(y, mo+time.Month(n))
}

// Sub returns the number of whole months from x to m (m - x).
func (m Month) Sub(x Month) int {
	y1, m1, _ := m.split()
	y0, m0, _ := x.split()
	return (y1-y0)*12 + int(m1-m0)
}

// QuarterStart returns the first month of the quarter containing m.
func (m Month) QuarterStart() Month {
	y, mo, ok := m.split()
	if !ok {
		return m
	}
	return NewMonth(y, (mo-1)/3*3+1)
}

// YearStart returns January of m's year.
func (m Month) YearStart() Month {
	y, _, ok := m.split()
	if !ok {
		return m
	}
	return NewMonth(y, time.January)
}

// Label returns a human readable label like "Jan 2025". Invalid months are
// returned as is.
func (m Month) Label() string {
	y, mo, ok := m.split()
	if !ok {
		return string(m)
	}
	return fmt.Sprintf("%s %d", mo.String()[:3], y)
}

func (m Month) String() string { return string(m) }
