package folio

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/etnz/folio/date"
)

const bom = "\uFEFF"

var (
	lineBreak  = regexp.MustCompile(`\r?\n`)
	whitespace = regexp.MustCompile(`\s+`)
)

// ParseCSVLine splits a single CSV line into trimmed fields.
//
// A double quote toggles the quoted mode, in which commas are literal and two
// consecutive double quotes stand for one literal double quote.
func ParseCSVLine(line string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	out = append(out, cur.String())
	for i, v := range out {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// NormKey normalizes a header cell into a lookup key: "Total Cost" becomes
// "total_cost".
func NormKey(k string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(k)), "_")
}

// DecodeTransactions reads the transactions CSV.
//
// The first line is the header, matched case and spacing insensitively.
// Recognized columns are ticker, shares, total_cost, month and date (used
// for the month when the month column is empty). Blank lines are skipped,
// missing fields read as empty.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions: %w", err)
	}
	text := strings.TrimSpace(strings.TrimPrefix(string(content), bom))
	if text == "" {
		return nil, nil
	}
	lines := lineBreak.Split(text, -1)

	headers := ParseCSVLine(lines[0])
	for i, h := range headers {
		headers[i] = NormKey(h)
	}

	var txs []Transaction
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := ParseCSVLine(line)
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(parts) {
				row[h] = parts[i]
			}
		}
		txs = append(txs, Transaction{
			Ticker:    strings.TrimSpace(row["ticker"]),
			Shares:    ToNumber(row["shares"]),
			TotalCost: ToNumber(row["total_cost"]),
			Month:     normMonth(row["month"], row["date"]),
		})
	}
	return txs, nil
}

// normMonth returns the canonical month from the month column, or from the
// date column when the former is empty. Either column can hold a full ISO
// date. Unparsable text is kept trimmed.
func normMonth(month, isoDate string) date.Month {
	s := strings.TrimSpace(month)
	if s == "" {
		s = string(date.MonthOf(isoDate))
	}
	if m, err := date.ParseMonth(s); err == nil {
		return m
	}
	if m, err := date.ParseMonth(string(date.MonthOf(s))); err == nil {
		return m
	}
	return date.Month(s)
}
