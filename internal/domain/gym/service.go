package gym

import (
	"context"
	"fmt"
	"time"

	"gym-manager/backend/internal/utils"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Register creates the owner's gym profile. An owner has at most one gym.
func (s *Service) Register(ctx context.Context, ownerUID string, in RegisterInput) (*Gym, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: gymName is required", ErrBadRequest)
	}

	existing, err := s.repo.GetByOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: owner already has a registered gym", ErrBadRequest)
	}

	now := time.Now().UTC()
	g := Gym{
		OwnerUID:  ownerUID,
		Name:      in.Name,
		NameLower: utils.NormalizeNameLower(in.Name),
		Slug:      utils.Slugify(in.Name),
		Address:   in.Address,
		Fees:      in.Fees,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, g)
}

func (s *Service) Get(ctx context.Context, gymID string) (*Gym, error) {
	g, err := s.repo.Get(ctx, gymID)
	if err != nil {
		return nil, fmt.Errorf("%w: gym %s", ErrNotFound, gymID)
	}
	return g, nil
}

// Mine returns the gym owned by the caller.
func (s *Service) Mine(ctx context.Context, ownerUID string) (*Gym, error) {
	g, err := s.repo.GetByOwner(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: no gym registered for this owner", ErrNotFound)
	}
	return g, nil
}

func (s *Service) Browse(ctx context.Context, q string, limit int64) ([]Gym, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.repo.SearchByNamePrefix(ctx, q, limit)
}

// UpdateFees replaces the gym's plan prices.
func (s *Service) UpdateFees(ctx context.Context, ownerUID, gymID string, in UpdateFeesInput) error {
	if err := s.requireOwner(ctx, ownerUID, gymID); err != nil {
		return err
	}
	return s.repo.Update(ctx, gymID, map[string]any{
		"fees":      in.Fees,
		"updatedAt": time.Now().UTC(),
	})
}

// AddImage records an uploaded image URL on the gym profile.
func (s *Service) AddImage(ctx context.Context, ownerUID, gymID, url string) error {
	if url == "" {
		return fmt.Errorf("%w: image url required", ErrBadRequest)
	}
	if err := s.requireOwner(ctx, ownerUID, gymID); err != nil {
		return err
	}
	return s.repo.AppendImage(ctx, gymID, url)
}

func (s *Service) requireOwner(ctx context.Context, ownerUID, gymID string) error {
	g, err := s.Get(ctx, gymID)
	if err != nil {
		return err
	}
	if g.OwnerUID != ownerUID {
		return fmt.Errorf("%w: only the gym owner can do this", ErrUnauthorized)
	}
	return nil
}
