package dto

// MonthlyStat is a YYYY-MM bucket.
type MonthlyStat struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DailyStat is a YYYY-MM-DD bucket.
type DailyStat struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// HourlyStat is an hour-of-day bucket.
type HourlyStat struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DashboardResponse is the admin landing page.
type DashboardResponse struct {
	TotalMembers        int           `json:"totalMembers"`
	ActiveMembers       int           `json:"activeMembers"`
	ExpiringSoonMembers int           `json:"expiringSoonMembers"`
	Capacity            int           `json:"capacity"`
	OccupancyRate       int           `json:"occupancyRate"`
	MonthlyStats        []MonthlyStat `json:"monthlyStats"`
}

// AnalyticsQuery selects the analytics window in months.
type AnalyticsQuery struct {
	Range int `query:"range" json:"range" validate:"gte=0,lte=12"`
}

// LoginAnalyticsResponse groups check-ins into histograms.
type LoginAnalyticsResponse struct {
	RangeMonths int           `json:"rangeMonths"`
	Daily       []DailyStat   `json:"daily"`
	Monthly     []MonthlyStat `json:"monthly"`
	Hourly      []HourlyStat  `json:"hourly"`
}
