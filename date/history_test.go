package date

import (
	"slices"
	"testing"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Appending two values in reverse order must keep the history sorted.
	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}
	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}
	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// Same date overwrites.
	h.Append(d1, "again")
	if v, _ := h.Get(d1); v != "again" || h.Len() != 2 {
		t.Errorf("Append(d1) twice: Get(d1) = %q, Len() = %d want \"again\", 2", v, h.Len())
	}
}

func TestValueAsOf(t *testing.T) {
	var h History[int]
	h.Append(New(2023, 1, 1), 10).Append(New(2023, 3, 1), 30)

	testCases := []struct {
		on     Date
		want   int
		wantOK bool
	}{
		{New(2022, 12, 31), 0, false},
		{New(2023, 1, 1), 10, true},
		{New(2023, 2, 15), 10, true},
		{New(2023, 3, 1), 30, true},
		{New(2024, 1, 1), 30, true},
	}
	for _, tc := range testCases {
		got, ok := h.ValueAsOf(tc.on)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tc.on, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestIterate(t *testing.T) {
	var a, b History[int]
	a.Append(New(2023, 1, 1), 1).Append(New(2023, 1, 3), 3)
	b.Append(New(2023, 1, 2), 2).Append(New(2023, 1, 3), 3).Append(New(2023, 1, 5), 5)

	got := slices.Collect(Iterate(&a, &b))
	want := []Date{New(2023, 1, 1), New(2023, 1, 2), New(2023, 1, 3), New(2023, 1, 5)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v, want %v", got, want)
	}
}
