// Package qrtoken holds the short-lived one-time tokens shown as QR codes at
// the gym entrance.
package qrtoken

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// DefaultTTL is how long an issued token stays redeemable.
const DefaultTTL = 60 * time.Second

var (
	// ErrNotFound is returned for unknown or already consumed tokens.
	ErrNotFound = errors.New("qr token not found")
	// ErrExpired is returned for a token found past its deadline. The token
	// is deleted before the error is returned.
	ErrExpired = errors.New("qr token expired")
)

// Token is a pending QR token.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Store owns pending tokens and guarantees each is redeemed at most once.
type Store interface {
	// Issue sweeps expired entries, then creates and stores a fresh token.
	Issue(ctx context.Context) (Token, error)
	// Check reports whether value is live without consuming it.
	Check(ctx context.Context, value string) error
	// Redeem consumes value. It deletes any token it finds, expired or not.
	Redeem(ctx context.Context, value string) error
	// Sweep deletes all expired tokens and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
	// TTL is the lifetime given to issued tokens.
	TTL() time.Duration
}

// Generator produces opaque token values.
type Generator func() (string, error)

// RandomValue returns 32 bytes of crypto/rand entropy, hex encoded.
func RandomValue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate qr token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func expired(expiresAt, now time.Time) bool {
	return expiresAt.Before(now)
}
