package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// time.Time are usually not comparable (there is a pointer for the timezone) this
		// checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, time.February, 30), New(2024, time.March, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
	if got, want := New(2023, 13, 1), New(2024, time.January, 1); got != want {
		t.Errorf("New(2023, 13, 1) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2023-01-05", New(2023, 1, 5), false},
		{"2023-1-5", New(2023, 1, 5), false},
		{" 2023-01-05 ", New(2023, 1, 5), false},
		{"2023-01", New(2023, 1, 1), false},
		{"2023-01-05T22:30:00Z", New(2023, 1, 5), false},
		{"2023-01-05T22:30:00-05:00", New(2023, 1, 5), false},
		{"2023-01-05T10:00:00", New(2023, 1, 5), false},
		{"2023/01/05", New(2023, 1, 5), false},
		{"Jan 5, 2023", New(2023, 1, 5), false},
		{"not a date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2023, 1, 31), New(2023, 2, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) is not a total order", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After disagree with Compare for %v and %v", a, b)
	}
}

func TestStartEndOf(t *testing.T) {
	d := New(2025, time.May, 21) // a Wednesday
	testCases := []struct {
		period     Period
		start, end Date
	}{
		{Daily, d, d},
		{Weekly, New(2025, time.May, 19), New(2025, time.May, 25)},
		{Monthly, New(2025, time.May, 1), New(2025, time.May, 31)},
		{Quarterly, New(2025, time.April, 1), New(2025, time.June, 30)},
		{Yearly, New(2025, time.January, 1), New(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := d.StartOf(tc.period); got != tc.start {
				t.Errorf("StartOf(%v) = %v, want %v", tc.period, got, tc.start)
			}
			if got := d.EndOf(tc.period); got != tc.end {
				t.Errorf("EndOf(%v) = %v, want %v", tc.period, got, tc.end)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var got struct{ On Date }
	if err := json.Unmarshal([]byte(`{"On":"2024-3-9"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := New(2024, time.March, 9); got.On != want {
		t.Errorf("Unmarshal() = %v, want %v", got.On, want)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"On":"2024-03-09"}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
}
