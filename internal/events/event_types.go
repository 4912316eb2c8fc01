package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ironhall/gym-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberCheckedIn EventType = "member_checked_in"
	EventMemberCreated   EventType = "member_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewEvent stamps a payload with a fresh ID.
func NewEvent(eventType EventType, at time.Time, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: at,
		Payload:   payload,
	}
}

// MemberCheckedInPayload is published after a successful QR login.
type MemberCheckedInPayload struct {
	Member domain.MemberIdentity `json:"member"`
	Method domain.LoginMethod    `json:"method"`
}

// MemberCreatedPayload is published when an admin registers a member.
type MemberCreatedPayload struct {
	MemberID      int64     `json:"member_id"`
	MembershipEnd time.Time `json:"membership_end"`
}
