package fees

import (
	"math"
	"time"
)

// DueStatus classifies a member's fee against today's date.
type DueStatus string

const (
	StatusOverdue  DueStatus = "overdue"
	StatusUpcoming DueStatus = "upcoming"
)

// ReminderWindowDays is the inclusive look-ahead window used by the manual
// reminder path.
const ReminderWindowDays = 7

// scheduledReminderLeadDays is the exact lead time used by the scheduled
// (cron) reminder path.
const scheduledReminderLeadDays = 6

// Due returns the status of a due date relative to today. A fee due today is
// still Upcoming; there is no grace period beyond that.
func Due(dueDate, today time.Time) DueStatus {
	if dueDate.Before(today) {
		return StatusOverdue
	}
	return StatusUpcoming
}

// AdvanceDueDate adds exactly one calendar month. Month overflow follows
// time.Time.AddDate normalization: Jan 31 + 1 month is Mar 2 (Mar 3 in
// non-leap years), since Feb 31 does not exist.
func AdvanceDueDate(d time.Time) time.Time {
	return d.AddDate(0, 1, 0)
}

// DaysUntil is the day-difference between a due date and today, rounded up.
// Negative for overdue members.
func DaysUntil(dueDate, today time.Time) int {
	diff := dueDate.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// ReminderEligible reports whether a member should receive a manually
// triggered fee reminder: the due date is within the next windowDays days,
// overdue members included (a negative day-count is <= the window).
func ReminderEligible(dueDate, today time.Time, windowDays int) bool {
	return DaysUntil(dueDate, today) <= windowDays
}

// SixDayReminderEligible reports whether the due date falls exactly six
// calendar days ahead of today. This is the scheduled job's policy and is
// intentionally stricter than ReminderEligible: the cron sweep fires once,
// on the one day the exact match holds, while the manual path catches
// everyone in the window.
func SixDayReminderEligible(dueDate, today time.Time) bool {
	target := today.AddDate(0, 0, scheduledReminderLeadDays)
	y1, m1, d1 := dueDate.Date()
	y2, m2, d2 := target.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
