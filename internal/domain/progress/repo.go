package progress

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Repo persists BMI readings under the user document and workout entries
// in a flat collection keyed by userId.
type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) bmiCol(uid string) *firestore.CollectionRef {
	return r.fs.Collection("users").Doc(uid).Collection("bmiRecords")
}

func (r *Repo) workoutsCol() *firestore.CollectionRef {
	return r.fs.Collection("workouts")
}

func (r *Repo) CreateBMI(ctx context.Context, uid string, rec BMIRecord) (*BMIRecord, error) {
	ref := r.bmiCol(uid).NewDoc()
	if _, err := ref.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create bmi record: %w", err)
	}
	rec.ID = ref.ID
	return &rec, nil
}

func (r *Repo) ListBMI(ctx context.Context, uid string) ([]BMIRecord, error) {
	it := r.bmiCol(uid).OrderBy("date", firestore.Desc).Documents(ctx)
	defer it.Stop()

	out := make([]BMIRecord, 0)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list bmi records: %w", err)
		}
		var rec BMIRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode bmi record: %w", err)
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}

// LatestBMI returns the most recent reading, or nil when none is logged.
func (r *Repo) LatestBMI(ctx context.Context, uid string) (*BMIRecord, error) {
	it := r.bmiCol(uid).OrderBy("date", firestore.Desc).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest bmi record: %w", err)
	}
	var rec BMIRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("decode bmi record: %w", err)
	}
	rec.ID = doc.Ref.ID
	return &rec, nil
}

func (r *Repo) CreateWorkout(ctx context.Context, e WorkoutEntry) (*WorkoutEntry, error) {
	ref := r.workoutsCol().NewDoc()
	if _, err := ref.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create workout entry: %w", err)
	}
	e.ID = ref.ID
	return &e, nil
}

func (r *Repo) ListWorkouts(ctx context.Context, uid string) ([]WorkoutEntry, error) {
	it := r.workoutsCol().
		Where("userId", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	out := make([]WorkoutEntry, 0)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list workout entries: %w", err)
		}
		var e WorkoutEntry
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode workout entry: %w", err)
		}
		e.ID = doc.Ref.ID
		out = append(out, e)
	}
	return out, nil
}
