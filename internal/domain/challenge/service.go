package challenge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
)

type Service struct {
	fs *firestore.Client
}

func NewService(fs *firestore.Client) *Service {
	return &Service{fs: fs}
}

func (s *Service) doc(uid string) *firestore.DocumentRef {
	return s.fs.Collection("challenges").Doc(uid)
}

// Start begins a fresh run, wiping any previous progress.
func (s *Service) Start(ctx context.Context, uid string) (*Challenge, error) {
	c := Challenge{
		StartDate:        time.Now().UTC(),
		LastCompletedDay: 0,
		Days:             map[string]map[string]bool{},
	}
	if _, err := s.doc(uid).Set(ctx, c); err != nil {
		return nil, fmt.Errorf("start challenge: %w", err)
	}
	return &c, nil
}

// Restart is Start under a name the client uses after a failed run.
func (s *Service) Restart(ctx context.Context, uid string) (*Challenge, error) {
	return s.Start(ctx, uid)
}

func (s *Service) Get(ctx context.Context, uid string) (*Challenge, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: no challenge for user", ErrNotFound)
	}
	var c Challenge
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}
	return &c, nil
}

// ToggleTask sets one task's state for the current day, then advances
// lastCompletedDay if the day is now fully done.
func (s *Service) ToggleTask(ctx context.Context, uid, taskID string, done bool) (*Challenge, error) {
	if !ValidTask(taskID) {
		return nil, fmt.Errorf("%w: unknown task %q", ErrBadRequest, taskID)
	}

	c, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	day := CurrentDay(c.StartDate, time.Now().UTC())

	tasks := c.DayTasks(day)
	tasks[taskID] = done
	if c.Days == nil {
		c.Days = map[string]map[string]bool{}
	}
	c.Days[strconv.Itoa(day)] = tasks
	c.LastCompletedDay = Advance(c.LastCompletedDay, day, tasks)

	_, err = s.doc(uid).Set(ctx, map[string]any{
		"days": map[string]any{
			strconv.Itoa(day): tasks,
		},
		"lastCompletedDay": c.LastCompletedDay,
	}, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("update challenge: %w", err)
	}
	return c, nil
}
