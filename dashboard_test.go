package folio

import (
	"math"
	"testing"

	"github.com/etnz/folio/date"
	"github.com/google/go-cmp/cmp"
)

// testDataset is a small portfolio valued at the end of March 2025.
func testDataset() Dataset {
	return Dataset{
		Transactions: []Transaction{
			{Ticker: "AAPL", Shares: 10, TotalCost: 1000, Month: "2024-11"},
			{Ticker: "AAPL", Shares: 5, TotalCost: 600, Month: "2025-01"},
			{Ticker: "MSFT", Shares: 2, TotalCost: 700, Month: "2025-02"},
			{Ticker: "VT", Shares: 4, TotalCost: 400, Month: "2025-03"},
			{Ticker: "NOPE", Shares: 1, TotalCost: 10, Month: "2025-03"},
			{Ticker: "AAPL", Shares: 1, TotalCost: 100, Month: ""},
		},
		Prices: PriceFile{
			AsOf:   "2025-03-31",
			Prices: PriceMap{"AAPL": 150, "MSFT": 300, "VT": 110},
		},
	}
}

func TestComputeDashboardYTD(t *testing.T) {
	ds := testDataset()
	res := ComputeDashboard(ds.Transactions, ds.Prices, Selection{Period: date.YTD}, AggregateOptions{})

	if res.Label != "Year-to-Date: Jan 2025 → Mar 2025" {
		t.Errorf("Label = %q", res.Label)
	}
	if res.Transactions != 4 {
		t.Errorf("Transactions = %d, want 4", res.Transactions)
	}
	if diff := cmp.Diff([]string{"NOPE"}, res.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
	want := Totals{Invested: 1700, Value: 750 + 600 + 440, Gain: 90, ReturnPct: 90.0 / 1700, Txns: 3}
	if diff := cmp.Diff(want, res.Totals); diff != "" {
		t.Errorf("Totals mismatch (-want +got):\n%s", diff)
	}
	if res.UniqueTickers != 3 {
		t.Errorf("UniqueTickers = %d, want 3", res.UniqueTickers)
	}
	// AAPL +150/600, MSFT -100/700, VT +40/400
	if res.Best.Key != "AAPL" || res.Worst.Key != "MSFT" {
		t.Errorf("Best = %s, Worst = %s, want AAPL and MSFT", res.Best.Key, res.Worst.Key)
	}
	if !res.IRROK || res.IRR <= 0 {
		t.Errorf("IRR = %v, %v, want a positive rate", res.IRR, res.IRROK)
	}
}

func TestComputeDashboardSelections(t *testing.T) {
	ds := testDataset()
	testCases := []struct {
		name string
		sel  Selection
		txns int
	}{
		{"all", Selection{}, 6},
		{"since inception", Selection{Period: date.SI}, 5},
		{"last month", Selection{Period: date.LM}, 1},
		{"last quarter", Selection{Period: date.LQ}, 1},
		{"single month", Selection{Month: "2025-01"}, 1},
		{"empty month", Selection{Month: "2023-01"}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ComputeDashboard(ds.Transactions, ds.Prices, tc.sel, AggregateOptions{})
			if res.Transactions != tc.txns {
				t.Errorf("Transactions = %d, want %d", res.Transactions, tc.txns)
			}
		})
	}
}

func TestComputeDashboardEmpty(t *testing.T) {
	res := ComputeDashboard(nil, PriceFile{}, Selection{Period: date.YTD}, AggregateOptions{})
	if res.IRROK || res.UniqueTickers != 0 || res.Totals != (Totals{}) {
		t.Errorf("empty dashboard = %+v", res)
	}
}

func TestComputeDashboardGlobalWeight(t *testing.T) {
	ds := testDataset()
	res := ComputeDashboard(ds.Transactions, ds.Prices, Selection{Month: "2025-02"}, AggregateOptions{Weight: WeightGlobal})
	// global value: AAPL 16*150 + MSFT 600 + VT 440
	if len(res.ByTicker) != 1 {
		t.Fatalf("ByTicker = %v", res.ByTicker)
	}
	if want := 600.0 / (2400 + 600 + 440); math.Abs(res.ByTicker[0].Weight-want) > 1e-12 {
		t.Errorf("Weight = %v, want %v", res.ByTicker[0].Weight, want)
	}
}

func TestRenderContext(t *testing.T) {
	ds := testDataset()
	ctx := NewRenderContext(ds, Selection{}, SortState{}, "a", AggregateOptions{})
	if ctx.Sort != DefaultSort {
		t.Errorf("Sort = %v, want the default sort", ctx.Sort)
	}
	rows := ctx.Rows()
	if len(rows) != 1 || rows[0].Key != "AAPL" {
		t.Errorf("Rows() = %v, want only AAPL", rows)
	}
	lots := ctx.HoldingRows()
	if len(lots) != 3 || lots[0].Value != 1500 {
		t.Errorf("HoldingRows() = %v, want the 3 AAPL lots by value", lots)
	}
}

func TestTimeline(t *testing.T) {
	ds := testDataset()
	got := Timeline(ds.Transactions, ds.Prices.Prices, "2025-02")
	var months []string
	for _, m := range got {
		months = append(months, m.Key)
	}
	if diff := cmp.Diff([]string{"2024-11", "2025-01", "2025-02"}, months); diff != "" {
		t.Errorf("Timeline() months mismatch (-want +got):\n%s", diff)
	}
	if got[0].Invested != 1000 || got[0].Value != 1500 {
		t.Errorf("Timeline()[0] = %+v", got[0])
	}
	if all := Timeline(ds.Transactions, ds.Prices.Prices, ""); len(all) != 4 {
		t.Errorf("len(Timeline()) = %d, want 4", len(all))
	}
}
