package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ironhall/gym-service/internal/auth"
	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/events"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// MemberService manages the membership ledger.
type MemberService struct {
	members    repository.MemberRepository
	passwords  auth.PasswordMatcher
	dispatcher events.Dispatcher
	clock      clock.Clock
	location   *time.Location
	soonDays   int
	logger     *zap.Logger
}

// MemberDependencies bundles collaborators for MemberService.
type MemberDependencies struct {
	MemberRepo repository.MemberRepository
	Passwords  auth.PasswordMatcher
	Dispatcher events.Dispatcher
	Clock      clock.Clock
	Location   *time.Location
	SoonDays   int
	Logger     *zap.Logger
}

// MemberCreateInput describes a new membership.
type MemberCreateInput struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	DurationMonths int
}

// MemberView is a member with its status at read time.
type MemberView struct {
	domain.Member
	Membership domain.Lifetime
}

// NewMemberService builds the service.
func NewMemberService(deps MemberDependencies) *MemberService {
	s := &MemberService{
		members:    deps.MemberRepo,
		passwords:  deps.Passwords,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		location:   deps.Location,
		soonDays:   deps.SoonDays,
		logger:     deps.Logger,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.soonDays <= 0 {
		s.soonDays = domain.MembershipSoonDays
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Create registers a member whose membership runs DurationMonths calendar
// months from today.
func (s *MemberService) Create(ctx context.Context, input MemberCreateInput) (*MemberView, error) {
	if input.DurationMonths <= 0 {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{
			"durationMonths": "must be greater than 0",
		})
	}

	now := s.clock.Now().In(s.location)
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	member := &domain.Member{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Password:      hash,
		MembershipEnd: domain.AddMonths(domain.CivilDate(now), input.DurationMonths),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventMemberCreated, now, events.MemberCreatedPayload{
			MemberID:      member.ID,
			MembershipEnd: member.MembershipEnd,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish member created", zap.Int64("member_id", member.ID), zap.Error(err))
		}
	}
	return &MemberView{Member: *member, Membership: member.Lifetime(now, s.soonDays)}, nil
}

// List returns members newest first with their current status.
func (s *MemberService) List(ctx context.Context) ([]MemberView, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	now := s.clock.Now().In(s.location)
	views := make([]MemberView, 0, len(members))
	for i := range members {
		views = append(views, MemberView{
			Member:     members[i],
			Membership: members[i].Lifetime(now, s.soonDays),
		})
	}
	return views, nil
}

// Delete removes a member.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", map[string]any{"member_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
