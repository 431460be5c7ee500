package date

import "fmt"

// Range is an inclusive range of months.
// An empty Start means the range is unbounded in the past.
type Range struct{ Start, End Month }

// Single returns the range made of one month.
func Single(m Month) Range { return Range{Start: m, End: m} }

// Unbounded reports whether the range has no lower bound.
func (r Range) Unbounded() bool { return r.Start == "" }

// Contains reports whether m is in the range, boundaries included.
// The empty month is never contained.
func (r Range) Contains(m Month) bool {
	if m == "" {
		return false
	}
	if !r.Unbounded() && m < r.Start {
		return false
	}
	return m <= r.End
}

// String formats the range like "Jan 2025 → Mar 2025", or "start → Mar 2025"
// when unbounded.
func (r Range) String() string {
	start := "start"
	if !r.Unbounded() {
		start = r.Start.Label()
	}
	return fmt.Sprintf("%s → %s", start, r.End.Label())
}
