package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

func TestAnalyticsService_Logins(t *testing.T) {
	now := time.Date(2024, time.May, 31, 10, 0, 0, 0, time.UTC)
	since := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC) // May 31 minus 3 months normalises forward

	logins := &mockLoginLogRepo{}
	logins.On("Daily", mock.Anything, since).Return([]domain.DailyCount{{Day: "2024-05-30", Count: 4}}, nil)
	logins.On("Monthly", mock.Anything, since).Return([]domain.MonthlyCount{{Month: "2024-05", Count: 4}}, nil)
	logins.On("Hourly", mock.Anything, since).Return([]domain.HourlyCount{{Hour: 18, Count: 4}}, nil)

	report, err := NewAnalyticsService(logins, clock.NewFake(now)).Logins(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultAnalyticsRange, report.RangeMonths)
	assert.Len(t, report.Daily, 1)
	assert.Len(t, report.Monthly, 1)
	assert.Len(t, report.Hourly, 1)
	logins.AssertExpectations(t)
}

func TestAnalyticsService_Logins_RejectsRange(t *testing.T) {
	svc := NewAnalyticsService(&mockLoginLogRepo{}, clock.NewFake(time.Now()))

	for _, r := range []int{-1, 13} {
		_, err := svc.Logins(context.Background(), r)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}
