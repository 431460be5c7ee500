// Package renderer renders dashboards as markdown documents.
package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Undefined is displayed in place of values that cannot be computed.
const Undefined = "—"

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Money formats an amount in the currency cur, like "$1,234.50".
func Money(v float64, cur string) string {
	if !finite(v) {
		return Undefined
	}
	// to get a never nil currency I need to call the Money constructor
	c := *money.New(0, cur).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// Pct formats a ratio as a percentage: 0.40625 is "40.63%".
func Pct(ratio float64) string {
	if !finite(ratio) {
		return Undefined
	}
	// rounds half away from zero.
	return decimal.NewFromFloat(ratio).Shift(2).StringFixed(2) + "%"
}

// Shares formats a number of shares with up to 6 decimals.
func Shares(v float64) string {
	if !finite(v) {
		return Undefined
	}
	return decimal.NewFromFloat(v).Round(6).String()
}

// cell escapes the characters that would break a markdown table cell.
func cell(s string) string {
	if s == "" {
		return Undefined
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// table writes a markdown table. align holds one of "l", "r", "c" per column.
func table(b *strings.Builder, align string, header []string, rows [][]string) {
	fmt.Fprintf(b, "| %s |\n", strings.Join(header, " | "))
	seps := make([]string, len(header))
	for i := range seps {
		switch {
		case i < len(align) && align[i] == 'r':
			seps[i] = "---:"
		case i < len(align) && align[i] == 'c':
			seps[i] = ":---:"
		default:
			seps[i] = ":---"
		}
	}
	fmt.Fprintf(b, "|%s|\n", strings.Join(seps, "|"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = cell(c)
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
	}
	b.WriteString("\n")
}

// asOf writes the as-of line.
func asOf(b *strings.Builder, s string) {
	if s == "" {
		s = Undefined
	}
	fmt.Fprintf(b, "*As of: %s*\n\n", s)
}

// missing writes the diagnostic line listing the lots that could not be priced.
func missing(b *strings.Builder, tickers []string) {
	if len(tickers) == 0 {
		return
	}
	fmt.Fprintf(b, "> ⚠ Missing: %d lot(s) without a valid price or with invalid numbers: %s\n\n", len(tickers), strings.Join(tickers, ", "))
}
