package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/qrtoken"
)

// AdminAuthenticator issues admin sessions.
type AdminAuthenticator interface {
	Login(ctx context.Context, email, password string) (domain.AdminSession, error)
}

// QRCheckIn is the member check-in protocol.
type QRCheckIn interface {
	IssueToken(ctx context.Context) (qrtoken.Token, error)
	TokenTTL() time.Duration
	Login(ctx context.Context, tokenValue, email, password string) (*domain.MemberIdentity, error)
}

// AuthHandler exposes admin login and QR check-in.
type AuthHandler struct {
	admins AdminAuthenticator
	qr     QRCheckIn
}

// NewAuthHandler constructs handler.
func NewAuthHandler(admins AdminAuthenticator, qr QRCheckIn) *AuthHandler {
	return &AuthHandler{admins: admins, qr: qr}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	session, err := h.admins.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// QRToken handles GET /api/auth/qr-token.
func (h *AuthHandler) QRToken(c *fiber.Ctx) error {
	token, err := h.qr.IssueToken(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(dto.QRTokenResponse{
		Token:     token.Value,
		ExpiresIn: int(h.qr.TokenTTL() / time.Second),
	})
}

// QRLogin handles POST /api/auth/qr-login.
func (h *AuthHandler) QRLogin(c *fiber.Ctx) error {
	var req dto.QRLoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	member, err := h.qr.Login(c.UserContext(), req.Token, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.QRLoginResponse{
		Success: true,
		Message: "check-in successful",
		Member: dto.MemberIdentityResponse{
			ID:    member.ID,
			Name:  member.Name,
			Email: member.Email,
		},
	})
}
