package attendance

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) attendanceCol(gymID string) *firestore.CollectionRef {
	return r.client.Collection("gyms").Doc(gymID).Collection("attendance")
}

// SetPresence merges a single member's boolean into the day document without
// touching other members' entries. The first toggle for a new day creates
// the document.
func (r *Repo) SetPresence(ctx context.Context, gymID, dateKey, memberID string, present bool) error {
	_, err := r.attendanceCol(gymID).Doc(dateKey).Set(ctx, map[string]interface{}{
		"date": time.Now().UTC(),
		"members": map[string]interface{}{
			memberID: present,
		},
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

// ListMonth loads every day document whose key falls inside the month, via
// a document-ID range query on the date-string keys.
func (r *Repo) ListMonth(ctx context.Context, gymID string, year int, month time.Month) ([]Day, error) {
	start, end := MonthRange(year, month)

	iter := r.attendanceCol(gymID).
		Where(firestore.DocumentID, ">=", r.attendanceCol(gymID).Doc(start)).
		Where(firestore.DocumentID, "<=", r.attendanceCol(gymID).Doc(end)).
		Documents(ctx)

	var days []Day
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance: %w", err)
		}

		day := Day{Date: doc.Ref.ID, Members: map[string]bool{}}
		if raw, ok := doc.Data()["members"].(map[string]interface{}); ok {
			for memberID, v := range raw {
				if b, ok := v.(bool); ok && b {
					day.Members[memberID] = true
				}
			}
		}
		days = append(days, day)
	}
	return days, nil
}
