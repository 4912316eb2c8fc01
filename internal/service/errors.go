package service

import (
	"net/http"

	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// Authentication failures. Admin login collapses every cause into
// ErrInvalidCredentials; QR login reports each cause separately.
var (
	ErrInvalidCredentials = apperrors.NewDomainError("UNAUTHORIZED", "invalid credentials", http.StatusUnauthorized, nil)

	ErrQRTokenNotFound   = apperrors.NewDomainError("QR_TOKEN_NOT_FOUND", "qr token not found", http.StatusUnauthorized, nil)
	ErrQRTokenExpired    = apperrors.NewDomainError("QR_TOKEN_EXPIRED", "qr token expired", http.StatusUnauthorized, nil)
	ErrMemberNotFound    = apperrors.NewDomainError("MEMBER_NOT_FOUND", "member not found", http.StatusUnauthorized, nil)
	ErrWrongPassword     = apperrors.NewDomainError("WRONG_PASSWORD", "wrong password", http.StatusUnauthorized, nil)
	ErrMembershipExpired = apperrors.NewDomainError("MEMBERSHIP_EXPIRED", "membership expired", http.StatusUnauthorized, nil)
)
