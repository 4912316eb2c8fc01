package service

import (
	"context"
	"math"
	"time"

	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// SignupMonths is how many monthly signup buckets the dashboard shows.
const SignupMonths = 6

// DashboardSummary is the admin landing page.
type DashboardSummary struct {
	Counts        domain.MemberCounts
	Capacity      int
	OccupancyRate int
	MonthlyStats  []domain.MonthlyCount
}

// DashboardService aggregates member statistics.
type DashboardService struct {
	members  repository.MemberRepository
	clock    clock.Clock
	location *time.Location
	capacity int
	soonDays int
}

// DashboardDependencies bundles collaborators for DashboardService.
type DashboardDependencies struct {
	MemberRepo repository.MemberRepository
	Clock      clock.Clock
	Location   *time.Location
	Capacity   int
	SoonDays   int
}

// NewDashboardService builds the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	s := &DashboardService{
		members:  deps.MemberRepo,
		clock:    deps.Clock,
		location: deps.Location,
		capacity: deps.Capacity,
		soonDays: deps.SoonDays,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.soonDays <= 0 {
		s.soonDays = domain.MembershipSoonDays
	}
	return s
}

// MemberCounts returns totals using calendar dates in the gym's time zone.
func (s *DashboardService) MemberCounts(ctx context.Context) (domain.MemberCounts, error) {
	today := domain.CivilDate(s.clock.Now().In(s.location))
	counts, err := s.members.Counts(ctx, today, today.AddDate(0, 0, s.soonDays))
	if err != nil {
		return domain.MemberCounts{}, apperrors.MapError(err)
	}
	return counts, nil
}

// Summary builds the dashboard.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	counts, err := s.MemberCounts(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.members.MonthlySignups(ctx, SignupMonths)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &DashboardSummary{
		Counts:        counts,
		Capacity:      s.capacity,
		OccupancyRate: OccupancyRate(counts.Active, s.capacity),
		MonthlyStats:  monthly,
	}, nil
}

// OccupancyRate is active/capacity as a whole percentage capped at 100.
func OccupancyRate(active, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	rate := int(math.Round(float64(active) / float64(capacity) * 100))
	return min(100, rate)
}
