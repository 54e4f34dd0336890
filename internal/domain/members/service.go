package members

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"gym-manager/backend/internal/domain/fees"
)

// Store is the member record store the intake service writes through.
// *Repo is the Firestore implementation.
type Store interface {
	CreateMember(ctx context.Context, gymID string, m Member) (*Member, error)
	GetMember(ctx context.Context, gymID, memberID string) (*Member, error)
	ListMembers(ctx context.Context, gymID string) ([]Member, error)
	UpdateMember(ctx context.Context, gymID, memberID string, fields map[string]any) error
	DeleteMember(ctx context.Context, gymID, memberID string) error
	CreateJoinRequest(ctx context.Context, gymID string, req JoinRequest) (*JoinRequest, error)
	GetJoinRequest(ctx context.Context, gymID, requestID string) (*JoinRequest, error)
	ListJoinRequests(ctx context.Context, gymID string) ([]JoinRequest, error)
	ConvertJoinRequest(ctx context.Context, gymID string, req JoinRequest, m Member) (*Member, error)
	DeleteJoinRequest(ctx context.Context, gymID, requestID string) error
}

// Notifier sends the post-intake welcome message. A send failure never
// fails the intake itself.
type Notifier interface {
	Welcome(ctx context.Context, name, phone, gymName string) error
}

var localPhone = regexp.MustCompile(`^[0-9]{10}$`)

type Service struct {
	store       Store
	notifier    Notifier
	countryCode string
}

// NewService wires the intake service. notifier may be nil when no
// messaging provider is configured.
func NewService(store Store, notifier Notifier, countryCode string) *Service {
	return &Service{store: store, notifier: notifier, countryCode: countryCode}
}

// DirectAdd validates and creates a member record, then fires the welcome
// message in the background after the write has committed.
func (s *Service) DirectAdd(ctx context.Context, gymID, gymName string, in DirectAddInput) (*Member, error) {
	in.Trim()
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrBadRequest)
	}
	if !localPhone.MatchString(in.Phone) {
		return nil, fmt.Errorf("%w: phone must be a 10-digit number", ErrBadRequest)
	}

	joinDate := time.Now().UTC()
	if in.JoinDate != "" {
		d, err := time.Parse("2006-01-02", in.JoinDate)
		if err != nil {
			return nil, fmt.Errorf("%w: joinDate must be YYYY-MM-DD", ErrBadRequest)
		}
		joinDate = d
	}

	m := Member{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      s.countryCode + in.Phone,
		GymName:    gymName,
		JoinDate:   joinDate,
		FeeDueDate: fees.AdvanceDueDate(joinDate),
	}
	created, err := s.store.CreateMember(ctx, gymID, m)
	if err != nil {
		return nil, err
	}
	s.welcomeAsync(created.Name, created.Phone, gymName)
	return created, nil
}

func (s *Service) Get(ctx context.Context, gymID, memberID string) (*Member, error) {
	return s.store.GetMember(ctx, gymID, memberID)
}

func (s *Service) List(ctx context.Context, gymID string) ([]Member, error) {
	return s.store.ListMembers(ctx, gymID)
}

func (s *Service) Update(ctx context.Context, gymID, memberID string, in UpdateMemberInput) error {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		if !localPhone.MatchString(*in.Phone) {
			return fmt.Errorf("%w: phone must be a 10-digit number", ErrBadRequest)
		}
		fields["phone"] = s.countryCode + *in.Phone
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	return s.store.UpdateMember(ctx, gymID, memberID, fields)
}

func (s *Service) Delete(ctx context.Context, gymID, memberID string) error {
	return s.store.DeleteMember(ctx, gymID, memberID)
}

// RequestToJoin records a pending join request for the gym.
func (s *Service) RequestToJoin(ctx context.Context, gymID, userID string, in CreateJoinRequestInput) (*JoinRequest, error) {
	in.Trim()
	if userID == "" || in.UserName == "" || in.UserEmail == "" {
		return nil, fmt.Errorf("%w: userName and userEmail are required", ErrBadRequest)
	}
	req := JoinRequest{
		UserID:       userID,
		UserName:     in.UserName,
		UserEmail:    in.UserEmail,
		Status:       RequestPending,
		RequestDate:  time.Now().UTC(),
		PlanDuration: in.PlanDuration,
		PlanPrice:    in.PlanPrice,
	}
	return s.store.CreateJoinRequest(ctx, gymID, req)
}

func (s *Service) ListJoinRequests(ctx context.Context, gymID string) ([]JoinRequest, error) {
	return s.store.ListJoinRequests(ctx, gymID)
}

// Approve converts a join request into a member record. The conversion is
// atomic: on failure the request stays pending and no member is created.
// The welcome message goes out only after the conversion has committed.
func (s *Service) Approve(ctx context.Context, gymID, gymName, requestID string) (*Member, error) {
	req, err := s.store.GetJoinRequest(ctx, gymID, requestID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	m := Member{
		Name:       req.UserName,
		Email:      req.UserEmail,
		UserID:     req.UserID,
		GymName:    gymName,
		JoinDate:   now,
		FeeDueDate: fees.AdvanceDueDate(now),
	}
	created, err := s.store.ConvertJoinRequest(ctx, gymID, *req, m)
	if err != nil {
		return nil, err
	}
	s.welcomeAsync(created.Name, created.Phone, gymName)
	return created, nil
}

// Deny removes the join request without creating a member.
func (s *Service) Deny(ctx context.Context, gymID, requestID string) error {
	if _, err := s.store.GetJoinRequest(ctx, gymID, requestID); err != nil {
		return err
	}
	return s.store.DeleteJoinRequest(ctx, gymID, requestID)
}

func (s *Service) welcomeAsync(name, phone, gymName string) {
	if s.notifier == nil || phone == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.Welcome(ctx, name, phone, gymName); err != nil {
			log.Printf("welcome message to %s failed: %v", phone, err)
		}
	}()
}
