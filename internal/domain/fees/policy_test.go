package fees

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueBoundaries(t *testing.T) {
	today := date(2024, time.March, 15)

	if got := Due(today, today); got != StatusUpcoming {
		t.Errorf("due today: got %q, want upcoming", got)
	}
	if got := Due(today.AddDate(0, 0, -1), today); got != StatusOverdue {
		t.Errorf("due yesterday: got %q, want overdue", got)
	}
	if got := Due(today.AddDate(0, 0, 1), today); got != StatusUpcoming {
		t.Errorf("due tomorrow: got %q, want upcoming", got)
	}
}

func TestAdvanceDueDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid month", date(2024, time.March, 15), date(2024, time.April, 15)},
		{"day preserved across 31->30", date(2024, time.March, 31), date(2024, time.May, 1)},
		{"jan 31 leap year", date(2024, time.January, 31), date(2024, time.March, 2)},
		{"jan 31 non leap year", date(2023, time.January, 31), date(2023, time.March, 3)},
		{"dec rolls into next year", date(2023, time.December, 10), date(2024, time.January, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdvanceDueDate(tt.in); !got.Equal(tt.want) {
				t.Errorf("AdvanceDueDate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdvanceTwiceEqualsTwoMonths(t *testing.T) {
	join := date(2024, time.January, 31)
	once := AdvanceDueDate(join)
	twice := AdvanceDueDate(once)
	// First advance normalizes Feb 31 to Mar 2; the second is a plain
	// month step from there.
	if want := date(2024, time.April, 2); !twice.Equal(want) {
		t.Errorf("double advance from %v = %v, want %v", join, twice, want)
	}
}

func TestReminderEligible(t *testing.T) {
	today := date(2024, time.June, 1)

	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"10 days overdue", today.AddDate(0, 0, -10), true},
		{"due today", today, true},
		{"due in 7 days", today.AddDate(0, 0, 7), true},
		{"due in 8 days", today.AddDate(0, 0, 8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReminderEligible(tt.due, today, ReminderWindowDays); got != tt.want {
				t.Errorf("ReminderEligible(due=%v) = %v, want %v", tt.due, got, tt.want)
			}
		})
	}
}

func TestSixDayReminderEligible(t *testing.T) {
	today := date(2024, time.June, 1)

	for days, want := range map[int]bool{5: false, 6: true, 7: false} {
		if got := SixDayReminderEligible(today.AddDate(0, 0, days), today); got != want {
			t.Errorf("due in %d days: got %v, want %v", days, got, want)
		}
	}

	// Exact-match policy compares calendar dates, not durations: a due date
	// later the same calendar day still matches.
	due := today.AddDate(0, 0, 6).Add(23 * time.Hour)
	if !SixDayReminderEligible(due, today) {
		t.Error("same calendar day six days out should match regardless of time of day")
	}
}

func TestDaysUntilRoundsUp(t *testing.T) {
	today := date(2024, time.June, 1)
	due := today.Add(36 * time.Hour) // a day and a half ahead
	if got := DaysUntil(due, today); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
	if got := DaysUntil(today.AddDate(0, 0, -10), today); got != -10 {
		t.Errorf("DaysUntil overdue = %d, want -10", got)
	}
}
