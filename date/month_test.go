package date

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2025-03", want: "2025-03"},
		{in: "2025-3", want: "2025-03"},
		{in: " 2025-12 ", want: "2025-12"},
		{in: "2025-13", wantErr: true},
		{in: "2025-00", wantErr: true},
		{in: "25-01", wantErr: true},
		{in: "March", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonthAdd(t *testing.T) {
	testCases := []struct {
		m    Month
		n    int
		want Month
	}{
		{"2025-01", -1, "2024-12"},
		{"2024-12", 1, "2025-01"},
		{"2025-04", -11, "2024-05"},
		{"2025-06", 0, "2025-06"},
		{"2025-06", 30, "2027-12"},
		{"2025-06", -30, "2022-12"},
	}
	for _, tc := range testCases {
		if got := tc.m.Add(tc.n); got != tc.want {
			t.Errorf("%q.Add(%d) = %q, want %q", tc.m, tc.n, got, tc.want)
		}
	}
}

func TestMonthSub(t *testing.T) {
	if got := Month("2025-02").Sub("2024-11"); got != 3 {
		t.Errorf("Sub() = %d, want 3", got)
	}
	if got := Month("2024-11").Sub("2025-02"); got != -3 {
		t.Errorf("Sub() = %d, want -3", got)
	}
}

func TestQuarterStart(t *testing.T) {
	for in, want := range map[Month]Month{
		"2025-01": "2025-01",
		"2025-03": "2025-01",
		"2025-04": "2025-04",
		"2025-08": "2025-07",
		"2025-12": "2025-10",
	} {
		if got := in.QuarterStart(); got != want {
			t.Errorf("%q.QuarterStart() = %q, want %q", in, got, want)
		}
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2025-03-14T10:00:00Z"); got != "2025-03" {
		t.Errorf("MonthOf() = %q, want 2025-03", got)
	}
	if got := MonthOf(""); got != "" {
		t.Errorf("MonthOf(\"\") = %q, want empty", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := NewMonth(2025, time.January).Label(); got != "Jan 2025" {
		t.Errorf("Label() = %q, want %q", got, "Jan 2025")
	}
	if got := Month("garbage").Label(); got != "garbage" {
		t.Errorf("Label() = %q, want it unchanged", got)
	}
}

func TestMustParseMonth(t *testing.T) {
	if got := MustParseMonth("2025-7"); got != "2025-07" {
		t.Errorf("MustParseMonth() = %q, want 2025-07", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParseMonth(March) did not panic")
		}
	}()
	MustParseMonth("March")
}
