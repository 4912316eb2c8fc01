package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/service"
	"github.com/ironhall/gym-service/pkg/util/validate"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// DashboardReporter builds the admin landing page.
type DashboardReporter interface {
	Summary(ctx context.Context) (*service.DashboardSummary, error)
}

// LoginReporter builds check-in histograms.
type LoginReporter interface {
	Logins(ctx context.Context, rangeMonths int) (*domain.LoginAnalytics, error)
}

// ReportHandler exposes dashboard and analytics endpoints.
type ReportHandler struct {
	dashboard DashboardReporter
	analytics LoginReporter
}

// NewReportHandler constructs handler.
func NewReportHandler(dashboard DashboardReporter, analytics LoginReporter) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, analytics: analytics}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardResponse{
		TotalMembers:        summary.Counts.Total,
		ActiveMembers:       summary.Counts.Active,
		ExpiringSoonMembers: summary.Counts.ExpiringSoon,
		Capacity:            summary.Capacity,
		OccupancyRate:       summary.OccupancyRate,
		MonthlyStats:        monthlyStats(summary.MonthlyStats),
	})
}

// Logins handles GET /api/admin/analytics/logins?range=N.
func (h *ReportHandler) Logins(c *fiber.Ctx) error {
	var query dto.AnalyticsQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid query", map[string]any{"range": "must be an integer"})
	}
	if err := validate.Struct(&query); err != nil {
		return err
	}

	report, err := h.analytics.Logins(c.UserContext(), query.Range)
	if err != nil {
		return err
	}

	resp := dto.LoginAnalyticsResponse{
		RangeMonths: report.RangeMonths,
		Daily:       make([]dto.DailyStat, 0, len(report.Daily)),
		Monthly:     monthlyStats(report.Monthly),
		Hourly:      make([]dto.HourlyStat, 0, len(report.Hourly)),
	}
	for _, d := range report.Daily {
		resp.Daily = append(resp.Daily, dto.DailyStat{Day: d.Day, Count: d.Count})
	}
	for _, hr := range report.Hourly {
		resp.Hourly = append(resp.Hourly, dto.HourlyStat{Hour: hr.Hour, Count: hr.Count})
	}
	return c.JSON(resp)
}

func monthlyStats(in []domain.MonthlyCount) []dto.MonthlyStat {
	out := make([]dto.MonthlyStat, 0, len(in))
	for _, m := range in {
		out = append(out, dto.MonthlyStat{Month: m.Month, Count: m.Count})
	}
	return out
}
