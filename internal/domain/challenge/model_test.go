package challenge

import (
	"testing"
	"time"
)

func allTasks(done bool) map[string]bool {
	m := make(map[string]bool, len(TaskIDs))
	for _, id := range TaskIDs {
		m[id] = done
	}
	return m
}

func TestCurrentDay(t *testing.T) {
	start := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at start", start, 1},
		{"same day later", start.Add(10 * time.Hour), 1},
		{"next day", start.Add(25 * time.Hour), 2},
		{"before start", start.Add(-time.Hour), 1},
		{"day 75", start.AddDate(0, 0, 74), 75},
		{"past the end stays 75", start.AddDate(0, 0, 100), 75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentDay(start, tc.now); got != tc.want {
				t.Errorf("CurrentDay = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	done := allTasks(true)
	partial := allTasks(true)
	partial["water"] = false

	cases := []struct {
		name  string
		last  int
		day   int
		tasks map[string]bool
		want  int
	}{
		{"all done advances", 3, 4, done, 4},
		{"incomplete day holds", 3, 4, partial, 3},
		{"already counted day holds", 4, 4, done, 4},
		{"never moves backwards", 10, 4, done, 10},
		{"first day", 0, 1, done, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Advance(tc.last, tc.day, tc.tasks); got != tc.want {
				t.Errorf("Advance = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAllDoneRequiresEveryTask(t *testing.T) {
	if AllDone(map[string]bool{}) {
		t.Error("empty checklist counted as done")
	}
	for _, id := range TaskIDs {
		tasks := allTasks(true)
		tasks[id] = false
		if AllDone(tasks) {
			t.Errorf("done with %s unchecked", id)
		}
	}
	if !AllDone(allTasks(true)) {
		t.Error("full checklist not counted as done")
	}
}

func TestValidTask(t *testing.T) {
	if !ValidTask("progressPhoto") {
		t.Error("progressPhoto rejected")
	}
	if ValidTask("sleep") {
		t.Error("unknown task accepted")
	}
}

func TestCompleted(t *testing.T) {
	c := Challenge{LastCompletedDay: 74}
	if c.Completed() {
		t.Error("completed at day 74")
	}
	c.LastCompletedDay = 75
	if !c.Completed() {
		t.Error("not completed at day 75")
	}
}
