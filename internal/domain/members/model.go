package members

import (
	"strings"
	"time"
)

// Member is a gym member record. FeeDueDate is initialized to one calendar
// month after JoinDate and afterwards mutated only by the fee engine on
// payment confirmation.
type Member struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Email      string    `firestore:"email" json:"email"`
	Phone      string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	UserID     string    `firestore:"userId,omitempty" json:"userId,omitempty"`
	GymName    string    `firestore:"gymName,omitempty" json:"gymName,omitempty"`
	JoinDate   time.Time `firestore:"joinDate" json:"joinDate"`
	FeeDueDate time.Time `firestore:"feeDueDate" json:"feeDueDate"`
}

// JoinRequest is a prospective member's pending request. Resolving it
// (approve or deny) removes the document; approval and member creation are
// a single transaction.
type JoinRequest struct {
	ID           string    `firestore:"-" json:"id"`
	UserID       string    `firestore:"userId" json:"userId"`
	UserName     string    `firestore:"userName" json:"userName"`
	UserEmail    string    `firestore:"userEmail" json:"userEmail"`
	Status       string    `firestore:"status" json:"status"`
	RequestDate  time.Time `firestore:"requestDate" json:"requestDate"`
	PlanDuration string    `firestore:"planDuration,omitempty" json:"planDuration,omitempty"`
	PlanPrice    int64     `firestore:"planPrice,omitempty" json:"planPrice,omitempty"`
}

const (
	RequestPending = "pending"
)

type DirectAddInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"` // 10-digit local number, country code added on intake
	JoinDate string `json:"joinDate,omitempty"`
}

func (in *DirectAddInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.JoinDate = strings.TrimSpace(in.JoinDate)
}

type UpdateMemberInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type CreateJoinRequestInput struct {
	UserName     string `json:"userName"`
	UserEmail    string `json:"userEmail"`
	PlanDuration string `json:"planDuration,omitempty"`
	PlanPrice    int64  `json:"planPrice,omitempty"`
}

func (in *CreateJoinRequestInput) Trim() {
	in.UserName = strings.TrimSpace(in.UserName)
	in.UserEmail = strings.TrimSpace(in.UserEmail)
	in.PlanDuration = strings.TrimSpace(in.PlanDuration)
}
