package subscription

import (
	"math"
	"time"
)

// Access is the gate's decision for a user at a point in time.
type Access string

const (
	Allowed Access = "allowed"
	Blocked Access = "blocked"
)

// Gate derives the access decision: active users are always allowed, trial
// users only while the trial end date is still ahead, everyone else
// (canceled, unknown, unset) is blocked.
func Gate(u User, now time.Time) Access {
	switch u.SubscriptionStatus {
	case StatusActive:
		return Allowed
	case StatusTrial:
		if u.TrialEndDate.After(now) {
			return Allowed
		}
		return Blocked
	default:
		return Blocked
	}
}

// HoursRemaining is the whole hours left in an unexpired trial, rounded up.
// Zero for any user the gate would block and for non-trial users.
func HoursRemaining(u User, now time.Time) int {
	if u.SubscriptionStatus != StatusTrial || !u.TrialEndDate.After(now) {
		return 0
	}
	return int(math.Ceil(u.TrialEndDate.Sub(now).Hours()))
}
