package progress

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// LogBMI computes and stores a reading from raw height and weight.
func (s *Service) LogBMI(ctx context.Context, uid string, in LogBMIInput) (*BMIRecord, error) {
	if in.Height <= 0 || in.Weight <= 0 {
		return nil, fmt.Errorf("%w: height and weight must be positive", ErrBadRequest)
	}
	rec := BMIRecord{
		Height: in.Height,
		Weight: in.Weight,
		BMI:    ComputeBMI(in.Weight, in.Height),
		Date:   time.Now().UTC(),
	}
	return s.repo.CreateBMI(ctx, uid, rec)
}

func (s *Service) BMIHistory(ctx context.Context, uid string) ([]BMIRecord, error) {
	return s.repo.ListBMI(ctx, uid)
}

// LatestBMI is the reading the workout-plan generator folds into its
// prompt. Nil when the user has never logged one.
func (s *Service) LatestBMI(ctx context.Context, uid string) (*BMIRecord, error) {
	return s.repo.LatestBMI(ctx, uid)
}

// LogWorkout stores one exercise entry.
func (s *Service) LogWorkout(ctx context.Context, uid string, in LogWorkoutInput) (*WorkoutEntry, error) {
	in.Trim()
	if in.Exercise == "" || in.Weight <= 0 {
		return nil, fmt.Errorf("%w: exercise and a positive weight are required", ErrBadRequest)
	}
	e := WorkoutEntry{
		UserID:    uid,
		Exercise:  in.Exercise,
		Weight:    in.Weight,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.CreateWorkout(ctx, e)
}

func (s *Service) Workouts(ctx context.Context, uid string) ([]WorkoutEntry, error) {
	return s.repo.ListWorkouts(ctx, uid)
}
