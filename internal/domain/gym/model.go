package gym

import (
	"strings"
	"time"
)

// PlanFees holds the monthly plan prices a gym offers, in whole rupees.
type PlanFees struct {
	Monthly    int64 `firestore:"monthly" json:"monthly"`
	Quarterly  int64 `firestore:"quarterly" json:"quarterly"`
	HalfYearly int64 `firestore:"halfYearly" json:"halfYearly"`
	Yearly     int64 `firestore:"yearly" json:"yearly"`
}

type Gym struct {
	ID        string    `firestore:"id" json:"id"`
	OwnerUID  string    `firestore:"ownerUid" json:"ownerUid"`
	Name      string    `firestore:"gymName" json:"gymName"`
	NameLower string    `firestore:"nameLower" json:"-"`
	Slug      string    `firestore:"slug" json:"slug"`
	Address   string    `firestore:"address,omitempty" json:"address,omitempty"`
	Images    []string  `firestore:"images,omitempty" json:"images,omitempty"`
	Fees      PlanFees  `firestore:"fees" json:"fees"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type RegisterInput struct {
	Name    string   `json:"gymName"`
	Address string   `json:"address,omitempty"`
	Fees    PlanFees `json:"fees"`
}

func (in *RegisterInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
}

type UpdateFeesInput struct {
	Fees PlanFees `json:"fees"`
}
