package classes

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col(gymID string) *firestore.CollectionRef {
	return r.fs.Collection("gyms").Doc(gymID).Collection("classes")
}

func (r *Repo) Create(ctx context.Context, gymID string, c Class) (*Class, error) {
	ref := r.col(gymID).NewDoc()
	if _, err := ref.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	c.ID = ref.ID
	return &c, nil
}

func (r *Repo) List(ctx context.Context, gymID string) ([]Class, error) {
	it := r.col(gymID).OrderBy("dateTime", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := make([]Class, 0)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list classes: %w", err)
		}
		var c Class
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, gymID, classID string, fields map[string]any) error {
	if _, err := r.col(gymID).Doc(classID).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, gymID, classID string) error {
	if _, err := r.col(gymID).Doc(classID).Delete(ctx); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}
