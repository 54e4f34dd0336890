package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"

	"gym-manager/backend/internal/domain/fees"
)

// Service fans member-facing messages out to the messaging channel. It owns
// the retry policy, which is: none. A failed send is logged and counted
// against the aggregate; no per-recipient failure detail is retained.
type Service struct {
	client *firestore.Client
	sender Sender
	from   string
}

func NewService(client *firestore.Client, sender Sender, from string) *Service {
	return &Service{client: client, sender: sender, from: from}
}

// Contact is the slice of a member record the dispatcher needs.
type Contact struct {
	Name       string
	Phone      string
	FeeDueDate *time.Time
}

type outbound struct {
	to   string
	body string
}

// Broadcast sends one body to every member of a gym with a phone number.
// Sends are issued concurrently; individual failures do not abort the rest,
// and only the count of successful sends is reported.
func (s *Service) Broadcast(ctx context.Context, gymID, body string) (int, error) {
	gymID = strings.TrimSpace(gymID)
	if gymID == "" || strings.TrimSpace(body) == "" {
		return 0, fmt.Errorf("%w: gymId and message are required", ErrBadRequest)
	}

	contacts, err := s.gymContacts(ctx, gymID)
	if err != nil {
		return 0, err
	}

	var sent atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range contacts {
		if c.Phone == "" {
			continue
		}
		to := whatsapp(c.Phone)
		g.Go(func() error {
			if err := s.sender.Send(gctx, to, s.from, body); err != nil {
				log.Printf("broadcast send failed: %v", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(sent.Load()), nil
}

// ScheduledFeeReminders sweeps every gym and messages members whose fee is
// due exactly six days from today. Sends are sequential, one await at a
// time, to bound the outbound rate; this is deliberately different from
// Broadcast's fan-out.
func (s *Service) ScheduledFeeReminders(ctx context.Context, today time.Time) (int, error) {
	gyms := s.client.Collection("gyms").Documents(ctx)

	var queue []outbound
	for {
		gymDoc, err := gyms.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to list gyms: %w", err)
		}

		gymName, _ := gymDoc.Data()["gymName"].(string)
		contacts, err := s.gymContacts(ctx, gymDoc.Ref.ID)
		if err != nil {
			return 0, err
		}
		queue = append(queue, buildScheduledReminders(contacts, gymName, today)...)
	}

	return s.sendSequential(ctx, queue), nil
}

// ManualFeeReminders messages every member of one gym whose fee is overdue
// or due within the next seven days, with wording that branches on which
// side of today the due date falls. Sequential, like the scheduled path.
func (s *Service) ManualFeeReminders(ctx context.Context, gymID, gymName string, today time.Time) (int, error) {
	gymID = strings.TrimSpace(gymID)
	gymName = strings.TrimSpace(gymName)
	if gymID == "" || gymName == "" {
		return 0, fmt.Errorf("%w: gymId and gymName are required", ErrBadRequest)
	}

	contacts, err := s.gymContacts(ctx, gymID)
	if err != nil {
		return 0, err
	}

	return s.sendSequential(ctx, buildManualReminders(contacts, gymName, today)), nil
}

// Welcome sends the single templated greeting for a new member. Callers
// treat it as fire-and-forget; a failure here never affects the member
// record that triggered it.
func (s *Service) Welcome(ctx context.Context, name, phone, gymName string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	gymName = strings.TrimSpace(gymName)
	if name == "" || phone == "" || gymName == "" {
		return fmt.Errorf("%w: memberName, memberPhone and gymName are required", ErrBadRequest)
	}

	return s.sender.Send(ctx, whatsapp(phone), s.from, welcomeBody(name, gymName))
}

func buildScheduledReminders(contacts []Contact, gymName string, today time.Time) []outbound {
	var out []outbound
	for _, c := range contacts {
		if c.FeeDueDate == nil || c.Phone == "" {
			continue
		}
		if !fees.SixDayReminderEligible(*c.FeeDueDate, today) {
			continue
		}
		out = append(out, outbound{
			to:   whatsapp(c.Phone),
			body: upcomingFeeBody(c.Name, gymName, *c.FeeDueDate),
		})
	}
	return out
}

func buildManualReminders(contacts []Contact, gymName string, today time.Time) []outbound {
	var out []outbound
	for _, c := range contacts {
		if c.FeeDueDate == nil || c.Phone == "" {
			continue
		}
		if !fees.ReminderEligible(*c.FeeDueDate, today, fees.ReminderWindowDays) {
			continue
		}

		body := upcomingFeeBody(c.Name, gymName, *c.FeeDueDate)
		if fees.DaysUntil(*c.FeeDueDate, today) < 0 {
			body = overdueFeeBody(c.Name, gymName, *c.FeeDueDate)
		}
		out = append(out, outbound{to: whatsapp(c.Phone), body: body})
	}
	return out
}

func (s *Service) sendSequential(ctx context.Context, queue []outbound) int {
	sent := 0
	for _, msg := range queue {
		if err := s.sender.Send(ctx, msg.to, s.from, msg.body); err != nil {
			log.Printf("reminder send failed: %v", err)
			continue
		}
		sent++
	}
	return sent
}

func (s *Service) gymContacts(ctx context.Context, gymID string) ([]Contact, error) {
	iter := s.client.Collection("gyms").Doc(gymID).Collection("members").Documents(ctx)

	var contacts []Contact
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		data := doc.Data()
		c := Contact{}
		c.Name, _ = data["name"].(string)
		c.Phone, _ = data["phone"].(string)
		if due, ok := data["feeDueDate"].(time.Time); ok {
			c.FeeDueDate = &due
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
