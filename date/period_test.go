package date

import (
	"slices"
	"testing"
	"time"
)

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Daily Identifier", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"Weekly Identifier", NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{"Weekly Identifier Next ISO Year", NewRange(New(2024, time.December, 31), Weekly), "2025-W01"},
		{"Weekly Identifier Previous ISO Year", NewRange(New(2021, time.January, 1), Weekly), "2020-W53"},
		{"Monthly Identifier", NewRange(New(2025, time.September, 1), Monthly), "2025-09"},
		{"Leap Month Identifier", NewRange(New(2024, time.February, 29), Monthly), "2024-02"},
		{"Quarterly Identifier", NewRange(New(2025, time.July, 1), Quarterly), "2025-Q3"},
		{"Yearly Identifier", NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: New(2024, 2, 27), To: New(2024, 3, 1)}
	got := slices.Collect(r.Days())
	want := []Date{New(2024, 2, 27), New(2024, 2, 28), New(2024, 2, 29), New(2024, 3, 1)}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if !r.Contains(New(2024, 2, 29)) || r.Contains(New(2024, 3, 2)) {
		t.Errorf("Contains() disagrees with Days() on %v", r)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"yearly", Yearly, false},
		{"unknown", Daily, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
