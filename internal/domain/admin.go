package domain

import "time"

// Admin is the staff account allowed to use the dashboard.
type Admin struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
