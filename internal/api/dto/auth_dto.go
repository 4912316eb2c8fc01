package dto

import "time"

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the admin bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// QRTokenResponse is what the entrance display renders as a QR code.
type QRTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// QRLoginRequest is a member's check-in attempt.
type QRLoginRequest struct {
	Token    string `json:"token" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// QRLoginResponse confirms a check-in.
type QRLoginResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Member  MemberIdentityResponse `json:"member"`
}

// MemberIdentityResponse is the public view of a checked-in member.
type MemberIdentityResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
