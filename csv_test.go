package folio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/etnz/folio/date"
	"github.com/google/go-cmp/cmp"
)

func TestParseCSVLine(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{`a,b,c`, []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"a""b",c`, []string{`a"b`, "c"}},
		{` x , y ,`, []string{"x", "y", ""}},
		{`"$1,234.50", AAPL`, []string{"$1,234.50", "AAPL"}},
		{``, []string{""}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, ParseCSVLine(tc.in)); diff != "" {
			t.Errorf("ParseCSVLine(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestNormKey(t *testing.T) {
	for in, want := range map[string]string{
		"Total Cost":       "total_cost",
		"  TICKER ":        "ticker",
		"total \t  cost":   "total_cost",
		"month":            "month",
		"Purchase   Date ": "purchase_date",
	} {
		if got := NormKey(in); got != want {
			t.Errorf("NormKey(%q) = %q, want %q", in, got, want)
		}
	}
}

// equateNaN makes NaN equal to NaN in cmp.Diff.
var equateNaN = cmp.Comparer(func(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
})

func TestDecodeTransactions(t *testing.T) {
	content := "\uFEFFTicker, Shares ,Total Cost,Month\r\n" +
		"aapl,10,\"$1,000.00\",2025-01\r\n" +
		"\r\n" +
		"  \n" +
		"MSFT,5,(600),2025-2\n" +
		"\"BRK,B\",x,100,\n" +
		"GOOG,3\n"

	got, err := DecodeTransactions(strings.NewReader(content))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	want := []Transaction{
		{Ticker: "aapl", Shares: 10, TotalCost: 1000, Month: "2025-01"},
		{Ticker: "MSFT", Shares: 5, TotalCost: -600, Month: "2025-02"},
		{Ticker: "BRK,B", Shares: math.NaN(), TotalCost: 100, Month: ""},
		{Ticker: "GOOG", Shares: 3, TotalCost: math.NaN(), Month: ""},
	}
	if diff := cmp.Diff(want, got, equateNaN); diff != "" {
		t.Errorf("DecodeTransactions() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTransactionsMonthFromDate(t *testing.T) {
	content := "ticker,shares,total_cost,date\nAAPL,1,100,2025-03-14\nAAPL,1,100,\n"
	got, err := DecodeTransactions(strings.NewReader(content))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Month != "2025-03" {
		t.Errorf("Month = %q, want 2025-03", got[0].Month)
	}
	if got[1].Month != "" {
		t.Errorf("Month = %q, want empty", got[1].Month)
	}
}

func TestDecodeTransactionsEmpty(t *testing.T) {
	for _, content := range []string{"", "\uFEFF", "ticker,shares,total_cost\n\n"} {
		got, err := DecodeTransactions(strings.NewReader(content))
		if err != nil {
			t.Errorf("DecodeTransactions(%q) error = %v", content, err)
		}
		if len(got) != 0 {
			t.Errorf("DecodeTransactions(%q) = %v, want none", content, got)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestDecodeTransactionsReadError(t *testing.T) {
	if _, err := DecodeTransactions(failingReader{}); err == nil {
		t.Errorf("DecodeTransactions() want error")
	}
}

func TestDecodeTransactionsMonthColumnDate(t *testing.T) {
	content := "ticker,shares,total_cost,month\nAAPL,1,100,2025-03-14\nAAPL,1,100,2025-03-14T10:00:00Z\nAAPL,1,100,March\n"
	got, err := DecodeTransactions(strings.NewReader(content))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	var months []string
	for _, tx := range got {
		months = append(months, string(tx.Month))
	}
	if diff := cmp.Diff([]string{"2025-03", "2025-03", "March"}, months); diff != "" {
		t.Errorf("Month mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]date.Month{"2025-03"}, Months(got)); diff != "" {
		t.Errorf("Months() mismatch (-want +got):\n%s", diff)
	}
}
