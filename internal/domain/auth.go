package domain

import "time"

// AdminIdentity is the identity embedded in an admin bearer token.
type AdminIdentity struct {
	ID    int64
	Email string
}

// AdminSession describes an issued bearer credential. It is never stored.
type AdminSession struct {
	Identity  AdminIdentity
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
