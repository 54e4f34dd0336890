package challenge

import (
	"strconv"
	"time"
)

// TotalDays is the length of the challenge.
const TotalDays = 75

// TaskIDs are the fixed daily tasks. Every one must be checked off for a
// day to count.
var TaskIDs = []string{
	"workout1",
	"workout2",
	"diet",
	"noAlcohol",
	"progressPhoto",
	"water",
	"read",
}

// Challenge tracks one user's run. Days maps a day number (as a string,
// "1".."75") to that day's task checklist.
type Challenge struct {
	StartDate        time.Time                  `firestore:"startDate" json:"startDate"`
	LastCompletedDay int                        `firestore:"lastCompletedDay" json:"lastCompletedDay"`
	Days             map[string]map[string]bool `firestore:"days,omitempty" json:"days,omitempty"`
}

// CurrentDay is the 1-based day the user is on. Day 1 starts at StartDate.
func CurrentDay(start, now time.Time) int {
	if now.Before(start) {
		return 1
	}
	d := int(now.Sub(start).Hours()/24) + 1
	if d > TotalDays {
		return TotalDays
	}
	return d
}

// AllDone reports whether every fixed task is checked.
func AllDone(tasks map[string]bool) bool {
	for _, id := range TaskIDs {
		if !tasks[id] {
			return false
		}
	}
	return true
}

// ValidTask reports whether id is one of the fixed tasks.
func ValidTask(id string) bool {
	for _, t := range TaskIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Advance returns the new last-completed day. It only moves forward, and
// only when the day's tasks are all done.
func Advance(lastCompleted, day int, tasks map[string]bool) int {
	if AllDone(tasks) && day > lastCompleted {
		return day
	}
	return lastCompleted
}

// DayTasks returns the checklist for a day, never nil.
func (c *Challenge) DayTasks(day int) map[string]bool {
	if c.Days == nil {
		return map[string]bool{}
	}
	tasks, ok := c.Days[strconv.Itoa(day)]
	if !ok {
		return map[string]bool{}
	}
	return tasks
}

// Completed reports whether the full run is finished.
func (c *Challenge) Completed() bool {
	return c.LastCompletedDay >= TotalDays
}
