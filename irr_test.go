package folio

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIRR(t *testing.T) {
	testCases := []struct {
		name      string
		cashflows []Cashflow
		want      float64
	}{
		{
			name:      "ten percent in a year",
			cashflows: []Cashflow{{0, -1000}, {12, 1100}},
			want:      0.10,
		},
		{
			name:      "loss",
			cashflows: []Cashflow{{0, -1000}, {12, 800}},
			want:      -0.20,
		},
		{
			name:      "doubled in six months",
			cashflows: []Cashflow{{0, -100}, {6, 200}},
			want:      3, // (2^(1/6))^12 - 1
		},
		{
			name:      "two contributions",
			cashflows: []Cashflow{{0, -1000}, {12, -1000}, {24, 2310}},
			want:      0.10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := IRR(tc.cashflows)
			if !ok {
				t.Fatalf("IRR() is undefined")
			}
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("IRR() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIRRUndefined(t *testing.T) {
	testCases := map[string][]Cashflow{
		"empty":        nil,
		"single":       {{0, -1000}},
		"all positive": {{0, 1000}, {12, 1100}},
		"all negative": {{0, -1000}, {12, -1100}},
		"all zero":     {{0, 0}, {12, 0}},
		"no root":      {{0, -1000}, {0, 1}},
		"infinite npv": {{0, -1}, {400, 1}},
	}
	for name, cashflows := range testCases {
		t.Run(name, func(t *testing.T) {
			if got, ok := IRR(cashflows); ok {
				t.Errorf("IRR() = %v, want undefined", got)
			}
		})
	}
}

func TestIRRWidening(t *testing.T) {
	// +2000% in one month is beyond the initial +1000% per month bound.
	got, ok := IRR([]Cashflow{{0, -1}, {1, 21}})
	if !ok {
		t.Fatalf("IRR() is undefined")
	}
	if want := math.Pow(21, 12) - 1; math.Abs(got-want)/want > 1e-6 {
		t.Errorf("IRR() = %v, want %v", got, want)
	}
}

func TestBuildCashflows(t *testing.T) {
	rows := []PricedRow{
		newPricedRow("A", "2025-01", 10, 1000, 150),
		newPricedRow("B", "2025-01", 1, 100, 90),
		newPricedRow("A", "2025-03", 5, 600, 150),
		newPricedRow("A", "", 5, 600, 150),
		newPricedRow("A", "garbage", 5, 600, 150),
	}
	got := BuildCashflows(rows, "2025-06")
	want := []Cashflow{{0, -1100}, {2, -600}, {5, 2340}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildCashflows() mismatch (-want +got):\n%s", diff)
	}

	if got := BuildCashflows([]PricedRow{newPricedRow("A", "", 1, 1, 1)}, "2025-06"); got != nil {
		t.Errorf("BuildCashflows() = %v, want nil without months", got)
	}
}
