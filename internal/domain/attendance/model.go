package attendance

import (
	"fmt"
	"time"
)

// Day holds one day's presence bitmap for a gym, keyed by an ISO date
// string. Absent entries mean not present; day documents are never deleted.
type Day struct {
	Date    string          `json:"date"`
	Members map[string]bool `json:"members"`
}

// DayKey formats the document key for a date: YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthRange returns the inclusive document-key bounds covering a month.
// "-31" is a safe upper bound for every month under lexicographic
// comparison of zero-padded day strings.
func MonthRange(year int, month time.Month) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	end = fmt.Sprintf("%04d-%02d-31", year, month)
	return
}

// MonthlyTotal counts the days on which the member was marked present.
// Missing days and missing member entries count as not present.
func MonthlyTotal(memberID string, days []Day) int {
	total := 0
	for _, d := range days {
		if d.Members[memberID] {
			total++
		}
	}
	return total
}

type ToggleInput struct {
	GymID    string `json:"gymId"`
	Date     string `json:"date"` // YYYY-MM-DD
	MemberID string `json:"memberId"`
	Present  bool   `json:"present"`
}
