package service

import (
	"context"

	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// Analytics range bounds, in months.
const (
	DefaultAnalyticsRange = 3
	MaxAnalyticsRange     = 12
)

// AnalyticsService reports check-in histograms.
type AnalyticsService struct {
	logins repository.LoginLogRepository
	clock  clock.Clock
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(logins repository.LoginLogRepository, clk clock.Clock) *AnalyticsService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &AnalyticsService{logins: logins, clock: clk}
}

// Logins groups check-ins of the last rangeMonths months by day, month and
// hour of day. Zero selects the default range.
func (s *AnalyticsService) Logins(ctx context.Context, rangeMonths int) (*domain.LoginAnalytics, error) {
	if rangeMonths == 0 {
		rangeMonths = DefaultAnalyticsRange
	}
	if rangeMonths < 1 || rangeMonths > MaxAnalyticsRange {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{
			"range": "must be between 1 and 12",
		})
	}

	since := domain.AddMonths(s.clock.Now(), -rangeMonths)
	daily, err := s.logins.Daily(ctx, since)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	monthly, err := s.logins.Monthly(ctx, since)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	hourly, err := s.logins.Hourly(ctx, since)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &domain.LoginAnalytics{
		RangeMonths: rangeMonths,
		Daily:       daily,
		Monthly:     monthly,
		Hourly:      hourly,
	}, nil
}

