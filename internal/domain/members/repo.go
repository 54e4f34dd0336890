package members

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Repo persists members and join requests under a gym document.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) membersCol(gymID string) *firestore.CollectionRef {
	return r.client.Collection("gyms").Doc(gymID).Collection("members")
}

func (r *Repo) requestsCol(gymID string) *firestore.CollectionRef {
	return r.client.Collection("gyms").Doc(gymID).Collection("joinRequests")
}

func (r *Repo) CreateMember(ctx context.Context, gymID string, m Member) (*Member, error) {
	ref := r.membersCol(gymID).NewDoc()
	if _, err := ref.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	m.ID = ref.ID
	return &m, nil
}

func (r *Repo) GetMember(ctx context.Context, gymID, memberID string) (*Member, error) {
	snap, err := r.membersCol(gymID).Doc(memberID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: member %s", ErrNotFound, memberID)
	}
	var m Member
	if err := snap.DataTo(&m); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}

func (r *Repo) ListMembers(ctx context.Context, gymID string) ([]Member, error) {
	iter := r.membersCol(gymID).OrderBy("joinDate", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]Member, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		var m Member
		if err := snap.DataTo(&m); err != nil {
			return nil, fmt.Errorf("decode member: %w", err)
		}
		m.ID = snap.Ref.ID
		out = append(out, m)
	}
	return out, nil
}

func (r *Repo) UpdateMember(ctx context.Context, gymID, memberID string, fields map[string]any) error {
	_, err := r.membersCol(gymID).Doc(memberID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (r *Repo) DeleteMember(ctx context.Context, gymID, memberID string) error {
	if _, err := r.membersCol(gymID).Doc(memberID).Delete(ctx); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func (r *Repo) CreateJoinRequest(ctx context.Context, gymID string, req JoinRequest) (*JoinRequest, error) {
	ref := r.requestsCol(gymID).NewDoc()
	if _, err := ref.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create join request: %w", err)
	}
	req.ID = ref.ID
	return &req, nil
}

func (r *Repo) GetJoinRequest(ctx context.Context, gymID, requestID string) (*JoinRequest, error) {
	snap, err := r.requestsCol(gymID).Doc(requestID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: join request %s", ErrNotFound, requestID)
	}
	var req JoinRequest
	if err := snap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("decode join request: %w", err)
	}
	req.ID = snap.Ref.ID
	return &req, nil
}

func (r *Repo) ListJoinRequests(ctx context.Context, gymID string) ([]JoinRequest, error) {
	iter := r.requestsCol(gymID).Where("status", "==", RequestPending).Documents(ctx)
	defer iter.Stop()

	out := make([]JoinRequest, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list join requests: %w", err)
		}
		var req JoinRequest
		if err := snap.DataTo(&req); err != nil {
			return nil, fmt.Errorf("decode join request: %w", err)
		}
		req.ID = snap.Ref.ID
		out = append(out, req)
	}
	return out, nil
}

// ConvertJoinRequest creates the member document and deletes the join
// request in one transaction, so a failure leaves the request untouched
// and no member behind.
func (r *Repo) ConvertJoinRequest(ctx context.Context, gymID string, req JoinRequest, m Member) (*Member, error) {
	memberRef := r.membersCol(gymID).NewDoc()
	reqRef := r.requestsCol(gymID).Doc(req.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(reqRef); err != nil {
			return fmt.Errorf("%w: join request %s", ErrNotFound, req.ID)
		}
		if err := tx.Create(memberRef, m); err != nil {
			return err
		}
		return tx.Delete(reqRef)
	})
	if err != nil {
		return nil, fmt.Errorf("approve join request: %w", err)
	}
	m.ID = memberRef.ID
	return &m, nil
}

func (r *Repo) DeleteJoinRequest(ctx context.Context, gymID, requestID string) error {
	if _, err := r.requestsCol(gymID).Doc(requestID).Delete(ctx); err != nil {
		return fmt.Errorf("delete join request: %w", err)
	}
	return nil
}
