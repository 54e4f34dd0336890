package classes

import (
	"context"
	"fmt"

	"gym-manager/backend/internal/utils"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, gymID string, in CreateClassInput) (*Class, error) {
	in.Trim()
	if in.Name == "" || in.Instructor == "" || in.DateTime == "" {
		return nil, fmt.Errorf("%w: name, instructor and dateTime are required", ErrBadRequest)
	}
	at, err := utils.ParseTime(in.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTime: %v", ErrBadRequest, err)
	}
	return s.repo.Create(ctx, gymID, Class{
		Name:       in.Name,
		Instructor: in.Instructor,
		DateTime:   at.UTC(),
	})
}

func (s *Service) List(ctx context.Context, gymID string) ([]Class, error) {
	return s.repo.List(ctx, gymID)
}

func (s *Service) Update(ctx context.Context, gymID, classID string, in UpdateClassInput) error {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Instructor != nil {
		fields["instructor"] = *in.Instructor
	}
	if in.DateTime != nil {
		at, err := utils.ParseTime(*in.DateTime)
		if err != nil {
			return fmt.Errorf("%w: dateTime: %v", ErrBadRequest, err)
		}
		fields["dateTime"] = at.UTC()
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	return s.repo.Update(ctx, gymID, classID, fields)
}

func (s *Service) Delete(ctx context.Context, gymID, classID string) error {
	return s.repo.Delete(ctx, gymID, classID)
}
