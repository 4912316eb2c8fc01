package domain

import "time"

// Member is a gym customer with a dated membership.
type Member struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	Password      string
	MembershipEnd time.Time
	CreatedAt     time.Time
}

// IsActive reports whether the membership still covers now. The end date is
// inclusive: a membership ending today is active for the whole day.
func (m *Member) IsActive(now time.Time) bool {
	return RemainingDays(m.MembershipEnd, now) >= 0
}

// Lifetime returns the membership status at now.
func (m *Member) Lifetime(now time.Time, soonDays int) Lifetime {
	return LifetimeOf(m.MembershipEnd, now, soonDays)
}

// MemberIdentity is the minimal member view returned by check-in.
type MemberIdentity struct {
	ID    int64
	Name  string
	Email string
}

// Identity projects the member onto its public identity.
func (m *Member) Identity() MemberIdentity {
	return MemberIdentity{ID: m.ID, Name: m.Name, Email: m.Email}
}

// MonthlyCount is a YYYY-MM bucket.
type MonthlyCount struct {
	Month string
	Count int
}

// MemberCounts summarises membership status for dashboards and gauges.
type MemberCounts struct {
	Total        int
	Active       int
	ExpiringSoon int
}
