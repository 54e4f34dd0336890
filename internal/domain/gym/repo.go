package gym

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) Create(ctx context.Context, g Gym) (*Gym, error) {
	ref := r.fs.Collection("gyms").NewDoc()
	g.ID = ref.ID
	if _, err := ref.Create(ctx, g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repo) Get(ctx context.Context, gymID string) (*Gym, error) {
	doc, err := r.fs.Collection("gyms").Doc(gymID).Get(ctx)
	if err != nil {
		return nil, err
	}
	var g Gym
	if err := doc.DataTo(&g); err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = gymID
	}
	return &g, nil
}

// GetByOwner returns the owner's gym, or nil when they have none.
func (r *Repo) GetByOwner(ctx context.Context, ownerUID string) (*Gym, error) {
	it := r.fs.Collection("gyms").Where("ownerUid", "==", ownerUID).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var g Gym
	if err := doc.DataTo(&g); err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = doc.Ref.ID
	}
	return &g, nil
}

func (r *Repo) SearchByNamePrefix(ctx context.Context, q string, limit int64) ([]Gym, error) {
	q = strings.TrimSpace(strings.ToLower(q))
	col := r.fs.Collection("gyms")

	// if q empty, return recent gyms
	var it *firestore.DocumentIterator
	if q == "" {
		it = col.OrderBy("createdAt", firestore.Desc).Limit(int(limit)).Documents(ctx)
	} else {
		// prefix search on nameLower
		hi := q + "\uf8ff"
		it = col.Where("nameLower", ">=", q).
			Where("nameLower", "<", hi).
			OrderBy("nameLower", firestore.Asc).
			Limit(int(limit)).
			Documents(ctx)
	}

	out := []Gym{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var g Gym
		if err := doc.DataTo(&g); err != nil {
			return nil, err
		}
		if g.ID == "" {
			g.ID = doc.Ref.ID
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, gymID string, fields map[string]any) error {
	_, err := r.fs.Collection("gyms").Doc(gymID).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *Repo) AppendImage(ctx context.Context, gymID, url string) error {
	_, err := r.fs.Collection("gyms").Doc(gymID).Update(ctx, []firestore.Update{
		{Path: "images", Value: firestore.ArrayUnion(url)},
	})
	return err
}
