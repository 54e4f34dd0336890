package subscription

import (
	"strings"
	"time"
)

const (
	StatusTrial    = "trial"
	StatusActive   = "active"
	StatusCanceled = "canceled"

	RoleUser     = "user"
	RoleGymOwner = "gym-owner"

	PlanStandard = "Standard User"
	PlanOwner    = "Gym Owner"
)

// TrialDays is the length of the free trial granted at signup.
const TrialDays = 3

// User is an account document. Trial expiry is never written back: it is
// derived at read time from TrialEndDate, so two readers sharing a clock
// always agree.
type User struct {
	UID                string    `firestore:"uid" json:"uid"`
	Name               string    `firestore:"name" json:"name"`
	Email              string    `firestore:"email" json:"email"`
	Role               string    `firestore:"role" json:"role"`
	SubscriptionStatus string    `firestore:"subscriptionStatus" json:"subscriptionStatus"`
	TrialEndDate       time.Time `firestore:"trialEndDate" json:"trialEndDate"`
	CreatedAt          time.Time `firestore:"createdAt" json:"createdAt"`
}

type CreateAccountInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (in *CreateAccountInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
}

type SubscribeInput struct {
	PlanName string `json:"planName"`
}

func (in *SubscribeInput) Trim() {
	in.PlanName = strings.TrimSpace(in.PlanName)
}
