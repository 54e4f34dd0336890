package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
)

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

func (s *Service) usersCol() *firestore.CollectionRef {
	return s.client.Collection("users")
}

// CreateAccount writes the account document for a freshly signed-up auth
// user: role "user", a trial subscription, and a trial end date three days
// out.
func (s *Service) CreateAccount(ctx context.Context, uid string, in CreateAccountInput) (*User, error) {
	in.Trim()
	uid = strings.TrimSpace(uid)
	if uid == "" || in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: uid, name and email are required", ErrBadRequest)
	}

	now := time.Now().UTC()
	u := User{
		UID:                uid,
		Name:               in.Name,
		Email:              in.Email,
		Role:               RoleUser,
		SubscriptionStatus: StatusTrial,
		TrialEndDate:       now.AddDate(0, 0, TrialDays),
		CreatedAt:          now,
	}

	if _, err := s.usersCol().Doc(uid).Set(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &u, nil
}

func (s *Service) Get(ctx context.Context, uid string) (*User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	doc, err := s.usersCol().Doc(uid).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	if u.UID == "" {
		u.UID = doc.Ref.ID
	}
	return &u, nil
}

// Activate handles the payment-confirmed callback: the standard plan sets
// the subscription active, the owner plan additionally promotes the role to
// gym-owner. The callback is client-trusted; there is no server-side
// verification against the payment processor, which is a known weakness of
// the current design.
func (s *Service) Activate(ctx context.Context, uid string, in SubscribeInput) (*User, error) {
	in.Trim()
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	updates := map[string]interface{}{
		"subscriptionStatus": StatusActive,
	}
	switch in.PlanName {
	case PlanOwner:
		updates["role"] = RoleGymOwner
	case PlanStandard:
		// status change only
	default:
		return nil, fmt.Errorf("%w: unknown plan %q", ErrBadRequest, in.PlanName)
	}

	if _, err := s.usersCol().Doc(uid).Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}
	return s.Get(ctx, uid)
}

// Cancel marks the subscription canceled. Nothing in this component can
// reverse it; re-subscribing goes back through the payment path.
func (s *Service) Cancel(ctx context.Context, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	_, err := s.usersCol().Doc(uid).Set(ctx, map[string]interface{}{
		"subscriptionStatus": StatusCanceled,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}
