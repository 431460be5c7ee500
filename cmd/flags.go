package cmd

import (
	"fmt"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
)

// SortFields lists the fields tables can be sorted by.
var SortFields = []string{"ticker", "month", "shares", "avg_cost", "price", "invested", "value", "gain", "gain_pct", "weight", "contrib_pct", "txns"}

// sortState validates the sort flags of a command. row is a sample of the
// rows to be sorted.
func sortState(field string, asc bool, row folio.Fielder) (folio.SortState, error) {
	if row.Field(field) == nil {
		return folio.SortState{}, fmt.Errorf("cannot sort by %q", field)
	}
	s := folio.SortState{Field: field, Dir: folio.Desc}
	if asc {
		s.Dir = folio.Asc
	}
	return s, nil
}

// parseMonth parses an optional month flag.
func parseMonth(s string) (date.Month, error) {
	if s == "" {
		return "", nil
	}
	return date.ParseMonth(s)
}
