package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Toggle records a single member's presence for a day.
func (s *Service) Toggle(ctx context.Context, in ToggleInput) error {
	in.GymID = strings.TrimSpace(in.GymID)
	in.Date = strings.TrimSpace(in.Date)
	in.MemberID = strings.TrimSpace(in.MemberID)

	if in.GymID == "" || in.MemberID == "" {
		return fmt.Errorf("%w: gymId and memberId are required", ErrBadRequest)
	}
	if in.Date == "" {
		in.Date = DayKey(time.Now().UTC())
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}

	return s.repo.SetPresence(ctx, in.GymID, in.Date, in.MemberID, in.Present)
}

// MonthSummary is the month's day records plus each member's total.
type MonthSummary struct {
	Days   []Day          `json:"days"`
	Totals map[string]int `json:"totals"`
}

// Month loads a month of attendance and aggregates per-member totals.
func (s *Service) Month(ctx context.Context, gymID string, year int, month time.Month) (*MonthSummary, error) {
	gymID = strings.TrimSpace(gymID)
	if gymID == "" {
		return nil, fmt.Errorf("%w: gymId is required", ErrBadRequest)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range", ErrBadRequest)
	}

	days, err := s.repo.ListMonth(ctx, gymID, year, month)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	for _, d := range days {
		for memberID, present := range d.Members {
			if present {
				totals[memberID]++
			}
		}
	}

	return &MonthSummary{Days: days, Totals: totals}, nil
}
