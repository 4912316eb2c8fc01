package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/auth"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// AuthService issues admin sessions.
type AuthService struct {
	admins    repository.AdminRepository
	passwords auth.PasswordMatcher
	tokenMgr  *auth.TokenManager
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	Passwords    auth.PasswordMatcher
	TokenManager *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:    deps.AdminRepo,
		passwords: deps.Passwords,
		tokenMgr:  deps.TokenManager,
	}
}

// Login authenticates an admin. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AdminSession, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AdminSession{}, ErrInvalidCredentials
		}
		return domain.AdminSession{}, apperrors.MapError(err)
	}
	if !s.passwords.Matches(admin.Password, password) {
		return domain.AdminSession{}, ErrInvalidCredentials
	}

	session, err := s.tokenMgr.GenerateToken(domain.AdminIdentity{ID: admin.ID, Email: admin.Email})
	if err != nil {
		return domain.AdminSession{}, apperrors.NewInternalError(err)
	}
	return session, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
