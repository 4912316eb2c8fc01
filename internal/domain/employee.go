package domain

import "time"

// Employee is a gym staff member listed on the dashboard.
type Employee struct {
	ID      int64
	Name    string
	Role    string
	Phone   string
	Salary  int
	Active  bool
	HiredAt time.Time
}
