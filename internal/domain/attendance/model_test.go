package attendance

import (
	"testing"
	"time"
)

func TestMonthlyTotal(t *testing.T) {
	days := []Day{
		{Date: "2024-06-01", Members: map[string]bool{"m1": true, "m2": false}},
		{Date: "2024-06-02", Members: map[string]bool{"m1": true}},
		{Date: "2024-06-03", Members: map[string]bool{"m2": true}},
		{Date: "2024-06-04", Members: nil},
	}

	if got := MonthlyTotal("m1", days); got != 2 {
		t.Errorf("m1 total = %d, want 2", got)
	}
	if got := MonthlyTotal("m2", days); got != 1 {
		t.Errorf("m2 total = %d, want 1", got)
	}
	// Unknown members and nil day maps count as not present, never error.
	if got := MonthlyTotal("ghost", days); got != 0 {
		t.Errorf("unknown member total = %d, want 0", got)
	}
	if got := MonthlyTotal("m1", nil); got != 0 {
		t.Errorf("no days total = %d, want 0", got)
	}
}

func TestDayKeyAndMonthRange(t *testing.T) {
	if got := DayKey(time.Date(2024, time.June, 5, 23, 0, 0, 0, time.UTC)); got != "2024-06-05" {
		t.Errorf("DayKey = %q", got)
	}

	start, end := MonthRange(2024, time.February)
	if start != "2024-02-01" || end != "2024-02-31" {
		t.Errorf("MonthRange = %q..%q", start, end)
	}
	// The padded "-31" bound sorts after every real day key of the month.
	if !(DayKey(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) <= end) {
		t.Error("leap day should fall inside the range bound")
	}
}
