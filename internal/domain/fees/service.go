package fees

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

func (s *Service) membersCol(gymID string) *firestore.CollectionRef {
	return s.client.Collection("gyms").Doc(gymID).Collection("members")
}

// MemberFeeStatus is one row of the fee dashboard.
type MemberFeeStatus struct {
	MemberID   string    `json:"memberId"`
	Name       string    `json:"name"`
	FeeDueDate time.Time `json:"feeDueDate"`
	Status     DueStatus `json:"status"`
}

// MarkPaid advances the member's due date by one calendar month and persists
// it. This is the only write the fee engine performs.
func (s *Service) MarkPaid(ctx context.Context, gymID, memberID string) (time.Time, error) {
	gymID = strings.TrimSpace(gymID)
	memberID = strings.TrimSpace(memberID)
	if gymID == "" || memberID == "" {
		return time.Time{}, fmt.Errorf("%w: gymId and memberId are required", ErrBadRequest)
	}

	doc, err := s.membersCol(gymID).Doc(memberID).Get(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: member not found", ErrNotFound)
	}

	due, ok := doc.Data()["feeDueDate"].(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: member %s", ErrNoDueDate, memberID)
	}

	next := AdvanceDueDate(due)
	_, err = s.membersCol(gymID).Doc(memberID).Set(ctx, map[string]interface{}{
		"feeDueDate": next,
	}, firestore.MergeAll)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to update due date: %w", err)
	}
	return next, nil
}

// Dashboard lists all members of a gym with a tracked due date, ordered by
// due date, each classified overdue or upcoming. Members without a due date
// are excluded entirely.
func (s *Service) Dashboard(ctx context.Context, gymID string, today time.Time) ([]MemberFeeStatus, error) {
	gymID = strings.TrimSpace(gymID)
	if gymID == "" {
		return nil, fmt.Errorf("%w: gymId is required", ErrBadRequest)
	}

	iter := s.membersCol(gymID).OrderBy("feeDueDate", firestore.Asc).Documents(ctx)
	var out []MemberFeeStatus
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		data := doc.Data()
		due, ok := data["feeDueDate"].(time.Time)
		if !ok {
			continue
		}
		name, _ := data["name"].(string)

		out = append(out, MemberFeeStatus{
			MemberID:   doc.Ref.ID,
			Name:       name,
			FeeDueDate: due,
			Status:     Due(due, today),
		})
	}
	return out, nil
}
