package dto

import "time"

// MemberCreateRequest registers a member.
type MemberCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Password       string `json:"password" validate:"required"`
	DurationMonths int    `json:"durationMonths" validate:"required,gt=0"`
}

// MemberResponse is a member with derived membership status. The password
// is never returned.
type MemberResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	MembershipEnd Date      `json:"membershipEnd"`
	CreatedAt     time.Time `json:"createdAt"`
	RemainingDays int       `json:"remainingDays"`
	Status        string    `json:"status"`
}
