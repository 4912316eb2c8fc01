package domain

import "time"

// ExpiryStatus classifies a dated entity relative to today.
type ExpiryStatus string

const (
	ExpiryStatusActive       ExpiryStatus = "ACTIVE"
	ExpiryStatusExpiringSoon ExpiryStatus = "EXPIRING_SOON"
	ExpiryStatusExpired      ExpiryStatus = "EXPIRED"
)

const (
	// MembershipSoonDays is the warning window before a membership ends.
	MembershipSoonDays = 10
	// MaintenanceSoonDays is the warning window before equipment maintenance is due.
	MaintenanceSoonDays = 7
	// DefaultMaintenanceIntervalMonths applies when no interval is supplied.
	DefaultMaintenanceIntervalMonths = 3
)

const day = 24 * time.Hour

// AddMonths adds n calendar months to t. It is the only month arithmetic in
// the service: a day-of-month that does not exist in the target month
// normalises forward, so 2024-01-31 plus one month is 2024-03-02.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// DateOf truncates t to midnight of its calendar day in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CivilDate returns t's calendar day as UTC midnight, the form DATE columns
// are written and read in.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RemainingDays returns ceil((end - now) / 1 day), where end is read as a
// calendar date in now's location. Both sides are compared as civil dates so
// daylight saving shifts never change the count.
func RemainingDays(end, now time.Time) int {
	return int(CivilDate(end).Sub(CivilDate(now)) / day)
}

// Classify maps remaining days onto a status using an inclusive soon window.
func Classify(remainingDays, soonDays int) ExpiryStatus {
	switch {
	case remainingDays < 0:
		return ExpiryStatusExpired
	case remainingDays <= soonDays:
		return ExpiryStatusExpiringSoon
	default:
		return ExpiryStatusActive
	}
}

// Lifetime is the derived view of a dated entity at a point in time.
type Lifetime struct {
	RemainingDays int
	Status        ExpiryStatus
}

// LifetimeOf computes the remaining days and status of end at now.
func LifetimeOf(end, now time.Time, soonDays int) Lifetime {
	remaining := RemainingDays(end, now)
	return Lifetime{RemainingDays: remaining, Status: Classify(remaining, soonDays)}
}
