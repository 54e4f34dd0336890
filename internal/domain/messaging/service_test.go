package messaging

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeSender struct {
	mu     sync.Mutex
	sent   []outbound
	failTo string // sends to this recipient fail
}

func (f *fakeSender) Send(_ context.Context, to, from, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo != "" && to == f.failTo {
		return errors.New("channel unavailable")
	}
	f.sent = append(f.sent, outbound{to: to, body: body})
	return nil
}

func due(t time.Time) *time.Time { return &t }

func TestBuildManualRemindersWindowAndWording(t *testing.T) {
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	gym := "Iron Paradise"

	contacts := []Contact{
		{Name: "Asha", Phone: "+911111111111", FeeDueDate: due(today.AddDate(0, 0, -10))}, // overdue
		{Name: "Ravi", Phone: "+912222222222", FeeDueDate: due(today.AddDate(0, 0, 3))},   // upcoming
		{Name: "Meena", Phone: "+913333333333", FeeDueDate: due(today.AddDate(0, 0, 8))},  // outside window
		{Name: "NoPhone", Phone: "", FeeDueDate: due(today)},                              // no phone
		{Name: "NoDue", Phone: "+914444444444"},                                           // no fee tracked
	}

	out := buildManualReminders(contacts, gym, today)
	if len(out) != 2 {
		t.Fatalf("got %d reminders, want 2", len(out))
	}
	if !strings.Contains(out[0].body, "was due") {
		t.Errorf("overdue wording missing: %q", out[0].body)
	}
	if !strings.Contains(out[1].body, "is due") {
		t.Errorf("upcoming wording missing: %q", out[1].body)
	}
	if out[0].to != "whatsapp:+911111111111" {
		t.Errorf("recipient = %q", out[0].to)
	}
}

func TestBuildScheduledRemindersExactMatch(t *testing.T) {
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	contacts := []Contact{
		{Name: "Exact", Phone: "+911111111111", FeeDueDate: due(today.AddDate(0, 0, 6))},
		{Name: "FiveDays", Phone: "+912222222222", FeeDueDate: due(today.AddDate(0, 0, 5))},
		{Name: "SevenDays", Phone: "+913333333333", FeeDueDate: due(today.AddDate(0, 0, 7))},
		{Name: "Overdue", Phone: "+914444444444", FeeDueDate: due(today.AddDate(0, 0, -1))},
	}

	out := buildScheduledReminders(contacts, "Iron Paradise", today)
	if len(out) != 1 {
		t.Fatalf("got %d reminders, want 1 exact match", len(out))
	}
	if !strings.Contains(out[0].body, "Exact") {
		t.Errorf("wrong recipient body: %q", out[0].body)
	}
}

func TestSendSequentialCountsOnlySuccesses(t *testing.T) {
	sender := &fakeSender{failTo: "whatsapp:+912222222222"}
	svc := NewService(nil, sender, "whatsapp:+10000000000")

	queue := []outbound{
		{to: "whatsapp:+911111111111", body: "a"},
		{to: "whatsapp:+912222222222", body: "b"},
		{to: "whatsapp:+913333333333", body: "c"},
	}

	sent := svc.sendSequential(context.Background(), queue)
	if sent != 2 {
		t.Errorf("sent = %d, want 2 (one failure skipped, not fatal)", sent)
	}
	// Sequential path preserves iteration order.
	if len(sender.sent) != 2 || sender.sent[0].to != queue[0].to || sender.sent[1].to != queue[2].to {
		t.Errorf("delivered = %+v", sender.sent)
	}
}

func TestWelcomeValidatesAndSends(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(nil, sender, "whatsapp:+10000000000")

	if err := svc.Welcome(context.Background(), "", "+911111111111", "Gym"); err == nil {
		t.Error("empty name should fail validation")
	}

	if err := svc.Welcome(context.Background(), "Asha", "+911111111111", "Iron Paradise"); err != nil {
		t.Fatalf("welcome failed: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("got %d sends, want 1", len(sender.sent))
	}
	got := sender.sent[0]
	if got.to != "whatsapp:+911111111111" {
		t.Errorf("to = %q", got.to)
	}
	if !strings.Contains(got.body, "Welcome to Iron Paradise, Asha!") {
		t.Errorf("body = %q", got.body)
	}
}
