package classes

import (
	"strings"
	"time"
)

// Class is a scheduled group session at a gym.
type Class struct {
	ID         string    `firestore:"-" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Instructor string    `firestore:"instructor" json:"instructor"`
	DateTime   time.Time `firestore:"dateTime" json:"dateTime"`
}

type CreateClassInput struct {
	Name       string `json:"name"`
	Instructor string `json:"instructor"`
	DateTime   string `json:"dateTime"`
}

func (in *CreateClassInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Instructor = strings.TrimSpace(in.Instructor)
	in.DateTime = strings.TrimSpace(in.DateTime)
}

type UpdateClassInput struct {
	Name       *string `json:"name,omitempty"`
	Instructor *string `json:"instructor,omitempty"`
	DateTime   *string `json:"dateTime,omitempty"`
}
