package domain

import "time"

// LoginMethod records how a member checked in.
type LoginMethod string

const LoginMethodQR LoginMethod = "qr"

// LoginLog is one member check-in.
type LoginLog struct {
	ID        int64
	MemberID  *int64
	Method    LoginMethod
	CreatedAt time.Time
}

// DailyCount is a YYYY-MM-DD bucket.
type DailyCount struct {
	Day   string
	Count int
}

// HourlyCount is an hour-of-day bucket (0-23).
type HourlyCount struct {
	Hour  int
	Count int
}

// LoginAnalytics groups check-ins into histograms.
type LoginAnalytics struct {
	RangeMonths int
	Daily       []DailyCount
	Monthly     []MonthlyCount
	Hourly      []HourlyCount
}
