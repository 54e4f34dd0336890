package members

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeStore struct {
	members  map[string]Member
	requests map[string]JoinRequest
	nextID   int

	failConvert bool
	failCreate  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		members:  map[string]Member{},
		requests: map[string]JoinRequest{},
	}
}

func (f *fakeStore) id() string {
	f.nextID++
	return fmt.Sprintf("doc-%d", f.nextID)
}

func (f *fakeStore) CreateMember(_ context.Context, _ string, m Member) (*Member, error) {
	if f.failCreate {
		return nil, errors.New("store unavailable")
	}
	m.ID = f.id()
	f.members[m.ID] = m
	return &m, nil
}

func (f *fakeStore) GetMember(_ context.Context, _ string, memberID string) (*Member, error) {
	m, ok := f.members[memberID]
	if !ok {
		return nil, fmt.Errorf("%w: member %s", ErrNotFound, memberID)
	}
	return &m, nil
}

func (f *fakeStore) ListMembers(_ context.Context, _ string) ([]Member, error) {
	out := make([]Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStore) UpdateMember(_ context.Context, _ string, memberID string, fields map[string]any) error {
	m, ok := f.members[memberID]
	if !ok {
		return fmt.Errorf("%w: member %s", ErrNotFound, memberID)
	}
	if v, ok := fields["name"]; ok {
		m.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		m.Email = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		m.Phone = v.(string)
	}
	f.members[memberID] = m
	return nil
}

func (f *fakeStore) DeleteMember(_ context.Context, _ string, memberID string) error {
	delete(f.members, memberID)
	return nil
}

func (f *fakeStore) CreateJoinRequest(_ context.Context, _ string, req JoinRequest) (*JoinRequest, error) {
	req.ID = f.id()
	f.requests[req.ID] = req
	return &req, nil
}

func (f *fakeStore) GetJoinRequest(_ context.Context, _ string, requestID string) (*JoinRequest, error) {
	req, ok := f.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: join request %s", ErrNotFound, requestID)
	}
	return &req, nil
}

func (f *fakeStore) ListJoinRequests(_ context.Context, _ string) ([]JoinRequest, error) {
	out := make([]JoinRequest, 0, len(f.requests))
	for _, req := range f.requests {
		if req.Status == RequestPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeStore) ConvertJoinRequest(_ context.Context, _ string, req JoinRequest, m Member) (*Member, error) {
	if f.failConvert {
		return nil, errors.New("transaction aborted")
	}
	if _, ok := f.requests[req.ID]; !ok {
		return nil, fmt.Errorf("%w: join request %s", ErrNotFound, req.ID)
	}
	m.ID = f.id()
	f.members[m.ID] = m
	delete(f.requests, req.ID)
	return &m, nil
}

func (f *fakeStore) DeleteJoinRequest(_ context.Context, _ string, requestID string) error {
	delete(f.requests, requestID)
	return nil
}

type fakeNotifier struct {
	sent chan string
}

func (f *fakeNotifier) Welcome(_ context.Context, name, phone, gymName string) error {
	f.sent <- fmt.Sprintf("%s|%s|%s", name, phone, gymName)
	return nil
}

func TestDirectAddValidation(t *testing.T) {
	svc := NewService(newFakeStore(), nil, "+91")
	ctx := context.Background()

	cases := []struct {
		name string
		in   DirectAddInput
	}{
		{"missing name", DirectAddInput{Email: "a@b.com", Phone: "9876543210"}},
		{"missing email", DirectAddInput{Name: "Ravi", Phone: "9876543210"}},
		{"missing phone", DirectAddInput{Name: "Ravi", Email: "a@b.com"}},
		{"short phone", DirectAddInput{Name: "Ravi", Email: "a@b.com", Phone: "98765"}},
		{"non-numeric phone", DirectAddInput{Name: "Ravi", Email: "a@b.com", Phone: "987654321x"}},
		{"phone with prefix", DirectAddInput{Name: "Ravi", Email: "a@b.com", Phone: "+9198765432"}},
		{"bad join date", DirectAddInput{Name: "Ravi", Email: "a@b.com", Phone: "9876543210", JoinDate: "01-02-2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.DirectAdd(ctx, "g1", "Iron Temple", tc.in); !errors.Is(err, ErrBadRequest) {
				t.Fatalf("want ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestDirectAddSetsDueDateAndPhone(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewService(store, notifier, "+91")

	m, err := svc.DirectAdd(context.Background(), "g1", "Iron Temple", DirectAddInput{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Phone:    "9876543210",
		JoinDate: "2026-01-15",
	})
	if err != nil {
		t.Fatalf("DirectAdd: %v", err)
	}
	if m.Phone != "+919876543210" {
		t.Errorf("phone = %q, want +919876543210", m.Phone)
	}
	wantDue := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if !m.FeeDueDate.Equal(wantDue) {
		t.Errorf("feeDueDate = %v, want %v", m.FeeDueDate, wantDue)
	}

	select {
	case got := <-notifier.sent:
		if got != "Ravi|+919876543210|Iron Temple" {
			t.Errorf("welcome = %q", got)
		}
	case <-time.After(time.Second):
		t.Error("welcome message was not sent")
	}
}

func TestDirectAddNoWelcomeOnStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreate = true
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewService(store, notifier, "+91")

	_, err := svc.DirectAdd(context.Background(), "g1", "Iron Temple", DirectAddInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210",
	})
	if err == nil {
		t.Fatal("want error")
	}
	select {
	case got := <-notifier.sent:
		t.Errorf("unexpected welcome %q after failed create", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestApproveConvertsRequest(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil, "+91")
	ctx := context.Background()

	req, err := svc.RequestToJoin(ctx, "g1", "user-7", CreateJoinRequestInput{
		UserName: "Meera", UserEmail: "meera@example.com", PlanDuration: "Quarterly", PlanPrice: 3000,
	})
	if err != nil {
		t.Fatalf("RequestToJoin: %v", err)
	}
	if req.Status != RequestPending {
		t.Fatalf("status = %q, want pending", req.Status)
	}

	m, err := svc.Approve(ctx, "g1", "Iron Temple", req.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if m.Name != "Meera" || m.UserID != "user-7" {
		t.Errorf("member = %+v", m)
	}
	if !m.FeeDueDate.After(m.JoinDate) {
		t.Errorf("feeDueDate %v not after joinDate %v", m.FeeDueDate, m.JoinDate)
	}
	if len(store.requests) != 0 {
		t.Errorf("request still present after approval")
	}
	if len(store.members) != 1 {
		t.Errorf("members = %d, want 1", len(store.members))
	}
}

func TestApproveFailureLeavesRequestIntact(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil, "+91")
	ctx := context.Background()

	req, err := svc.RequestToJoin(ctx, "g1", "user-7", CreateJoinRequestInput{
		UserName: "Meera", UserEmail: "meera@example.com",
	})
	if err != nil {
		t.Fatalf("RequestToJoin: %v", err)
	}

	store.failConvert = true
	if _, err := svc.Approve(ctx, "g1", "Iron Temple", req.ID); err == nil {
		t.Fatal("want error from failed conversion")
	}
	if len(store.members) != 0 {
		t.Errorf("members created despite failed approval: %d", len(store.members))
	}
	if _, ok := store.requests[req.ID]; !ok {
		t.Errorf("join request lost despite failed approval")
	}
}

func TestDenyRemovesRequestOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil, "+91")
	ctx := context.Background()

	req, _ := svc.RequestToJoin(ctx, "g1", "user-9", CreateJoinRequestInput{
		UserName: "Arjun", UserEmail: "arjun@example.com",
	})
	if err := svc.Deny(ctx, "g1", req.ID); err != nil {
		t.Fatalf("Deny: %v", err)
	}
	if len(store.requests) != 0 || len(store.members) != 0 {
		t.Errorf("deny left requests=%d members=%d", len(store.requests), len(store.members))
	}

	if err := svc.Deny(ctx, "g1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deny missing = %v, want ErrNotFound", err)
	}
}

func TestUpdateMemberPhoneValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil, "+91")
	ctx := context.Background()

	m, err := svc.DirectAdd(ctx, "g1", "Iron Temple", DirectAddInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210",
	})
	if err != nil {
		t.Fatalf("DirectAdd: %v", err)
	}

	bad := "12345"
	if err := svc.Update(ctx, "g1", m.ID, UpdateMemberInput{Phone: &bad}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("want ErrBadRequest, got %v", err)
	}

	good := "9123456789"
	if err := svc.Update(ctx, "g1", m.ID, UpdateMemberInput{Phone: &good}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := svc.Get(ctx, "g1", m.ID)
	if !strings.HasPrefix(got.Phone, "+91") {
		t.Errorf("phone = %q, want +91 prefix", got.Phone)
	}

	if err := svc.Update(ctx, "g1", m.ID, UpdateMemberInput{}); !errors.Is(err, ErrBadRequest) {
		t.Errorf("empty update = %v, want ErrBadRequest", err)
	}
}
