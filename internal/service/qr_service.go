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
	"github.com/ironhall/gym-service/internal/observability"
	"github.com/ironhall/gym-service/internal/qrtoken"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// QRService runs the entrance check-in protocol: a display polls for tokens
// and members redeem one together with their credentials.
type QRService struct {
	store      qrtoken.Store
	members    repository.MemberRepository
	passwords  auth.PasswordMatcher
	dispatcher events.Dispatcher
	clock      clock.Clock
	location   *time.Location
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// QRDependencies bundles collaborators for QRService.
type QRDependencies struct {
	Store      qrtoken.Store
	MemberRepo repository.MemberRepository
	Passwords  auth.PasswordMatcher
	Dispatcher events.Dispatcher
	Clock      clock.Clock
	Location   *time.Location
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewQRService builds the service.
func NewQRService(deps QRDependencies) *QRService {
	s := &QRService{
		store:      deps.Store,
		members:    deps.MemberRepo,
		passwords:  deps.Passwords,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		location:   deps.Location,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// IssueToken creates a fresh token. Earlier tokens stay valid until their
// own deadline.
func (s *QRService) IssueToken(ctx context.Context) (qrtoken.Token, error) {
	token, err := s.store.Issue(ctx)
	if err != nil {
		return qrtoken.Token{}, apperrors.NewInternalError(err)
	}
	s.metrics.QRIssued()
	return token, nil
}

// TokenTTL is the lifetime of issued tokens.
func (s *QRService) TokenTTL() time.Duration {
	return s.store.TTL()
}

// Login checks the token, authenticates the member and only then consumes
// the token. Credential or membership failures leave the token redeemable.
func (s *QRService) Login(ctx context.Context, tokenValue, email, password string) (*domain.MemberIdentity, error) {
	identity, err := s.login(ctx, tokenValue, email, password)
	s.metrics.QRLogin(loginOutcome(err))
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *QRService) login(ctx context.Context, tokenValue, email, password string) (*domain.MemberIdentity, error) {
	if err := s.store.Check(ctx, tokenValue); err != nil {
		return nil, tokenError(err)
	}

	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, apperrors.MapError(err)
	}
	if !s.passwords.Matches(member.Password, password) {
		return nil, ErrWrongPassword
	}
	now := s.clock.Now().In(s.location)
	if !member.IsActive(now) {
		return nil, ErrMembershipExpired
	}

	// A concurrent login may have consumed the token since Check.
	if err := s.store.Redeem(ctx, tokenValue); err != nil {
		return nil, tokenError(err)
	}

	identity := member.Identity()
	if s.dispatcher != nil {
		event := events.NewEvent(events.EventMemberCheckedIn, now, events.MemberCheckedInPayload{
			Member: identity,
			Method: domain.LoginMethodQR,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish check-in", zap.Int64("member_id", identity.ID), zap.Error(err))
		}
	}
	return &identity, nil
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, qrtoken.ErrNotFound):
		return ErrQRTokenNotFound
	case errors.Is(err, qrtoken.ErrExpired):
		return ErrQRTokenExpired
	default:
		return apperrors.NewInternalError(err)
	}
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrQRTokenNotFound):
		return "token_not_found"
	case errors.Is(err, ErrQRTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrMemberNotFound):
		return "member_not_found"
	case errors.Is(err, ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, ErrMembershipExpired):
		return "membership_expired"
	default:
		return "error"
	}
}
