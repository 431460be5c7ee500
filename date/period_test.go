package date

import "testing"

func TestResolve(t *testing.T) {
	testCases := []struct {
		name string
		key  PeriodKey
		asOf Month
		want Range
	}{
		{"MTD", MTD, "2025-05", Range{"2025-05", "2025-05"}},
		{"QTD", QTD, "2025-05", Range{"2025-04", "2025-05"}},
		{"YTD", YTD, "2025-05", Range{"2025-01", "2025-05"}},
		{"LM", LM, "2025-05", Range{"2025-04", "2025-04"}},
		{"LM across a year", LM, "2025-01", Range{"2024-12", "2024-12"}},
		{"LQ in Q1", LQ, "2025-02", Range{"2024-10", "2024-12"}},
		{"LQ in Q2", LQ, "2025-04", Range{"2025-01", "2025-03"}},
		{"LQ in Q4", LQ, "2025-12", Range{"2025-07", "2025-09"}},
		{"LTM", LTM, "2025-05", Range{"2024-06", "2025-05"}},
		{"SI", SI, "2025-05", Range{"", "2025-05"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.key, tc.asOf); got != tc.want {
				t.Errorf("Resolve(%s, %s) = %v, want %v", tc.key, tc.asOf, got, tc.want)
			}
		})
	}
}

func TestParsePeriodKey(t *testing.T) {
	for _, s := range []string{"ytd", "YTD", " Ltm "} {
		if _, err := ParsePeriodKey(s); err != nil {
			t.Errorf("ParsePeriodKey(%q) unexpected error %v", s, err)
		}
	}
	if _, err := ParsePeriodKey("weekly"); err == nil {
		t.Errorf("ParsePeriodKey(%q) want error", "weekly")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: "2025-01", End: "2025-03"}
	for m, want := range map[Month]bool{
		"2024-12": false,
		"2025-01": true,
		"2025-02": true,
		"2025-03": true,
		"2025-04": false,
		"":        false,
	} {
		if got := r.Contains(m); got != want {
			t.Errorf("Contains(%q) = %v, want %v", m, got, want)
		}
	}

	si := Range{End: "2025-03"}
	if !si.Contains("1999-01") {
		t.Errorf("unbounded range must contain old months")
	}
	if si.Contains("2025-04") {
		t.Errorf("unbounded range must not contain months after its end")
	}
}

func TestRangeString(t *testing.T) {
	if got, want := (Range{"2025-01", "2025-03"}).String(), "Jan 2025 → Mar 2025"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (Range{End: "2025-03"}).String(), "start → Mar 2025"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
