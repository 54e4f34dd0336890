package subscription

import (
	"testing"
	"time"
)

func TestGate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		user User
		want Access
	}{
		{"active always allowed", User{SubscriptionStatus: StatusActive}, Allowed},
		{"active allowed even with stale trial date", User{SubscriptionStatus: StatusActive, TrialEndDate: now.Add(-time.Hour)}, Allowed},
		{"trial before end date", User{SubscriptionStatus: StatusTrial, TrialEndDate: now.Add(time.Hour)}, Allowed},
		{"trial past end date", User{SubscriptionStatus: StatusTrial, TrialEndDate: now.Add(-time.Hour)}, Blocked},
		{"trial ending exactly now", User{SubscriptionStatus: StatusTrial, TrialEndDate: now}, Blocked},
		{"canceled", User{SubscriptionStatus: StatusCanceled, TrialEndDate: now.Add(time.Hour)}, Blocked},
		{"unset status", User{}, Blocked},
		{"unknown status", User{SubscriptionStatus: "paused"}, Blocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gate(tt.user, now); got != tt.want {
				t.Errorf("Gate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHoursRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	u := User{SubscriptionStatus: StatusTrial, TrialEndDate: now.Add(time.Hour)}
	if got := HoursRemaining(u, now); got != 1 {
		t.Errorf("one hour left: got %d, want 1", got)
	}

	u.TrialEndDate = now.Add(90 * time.Minute)
	if got := HoursRemaining(u, now); got != 2 {
		t.Errorf("ninety minutes left rounds up: got %d, want 2", got)
	}

	u.TrialEndDate = now.Add(-time.Hour)
	if got := HoursRemaining(u, now); got != 0 {
		t.Errorf("expired trial: got %d, want 0", got)
	}

	if got := HoursRemaining(User{SubscriptionStatus: StatusActive, TrialEndDate: now.Add(time.Hour)}, now); got != 0 {
		t.Errorf("active user: got %d, want 0", got)
	}
}
