package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/events"
	"github.com/ironhall/gym-service/internal/repository"
)

// --- mocks ---

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}
func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if a, _ := args.Get(0).(*domain.Admin); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAdminRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockMemberRepo struct{ mock.Mock }

func (m *mockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}
func (m *mockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Member)
	return list, args.Error(1)
}
func (m *mockMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if mem, _ := args.Get(0).(*domain.Member); mem != nil {
		return mem, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMemberRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockMemberRepo) Counts(ctx context.Context, today, soonUntil time.Time) (domain.MemberCounts, error) {
	args := m.Called(ctx, today, soonUntil)
	return args.Get(0).(domain.MemberCounts), args.Error(1)
}
func (m *mockMemberRepo) MonthlySignups(ctx context.Context, months int) ([]domain.MonthlyCount, error) {
	args := m.Called(ctx, months)
	list, _ := args.Get(0).([]domain.MonthlyCount)
	return list, args.Error(1)
}

type mockStockRepo struct{ mock.Mock }

func (m *mockStockRepo) Create(ctx context.Context, item *domain.StockItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockStockRepo) List(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.StockItem)
	return list, args.Error(1)
}
func (m *mockStockRepo) GetByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	args := m.Called(ctx, id)
	if item, _ := args.Get(0).(*domain.StockItem); item != nil {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStockRepo) Update(ctx context.Context, id int64, changes repository.Changes) (*domain.StockItem, error) {
	args := m.Called(ctx, id, changes)
	if item, _ := args.Get(0).(*domain.StockItem); item != nil {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStockRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	return m.Called(ctx, e).Error(0)
}
func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Employee)
	return list, args.Error(1)
}
func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if e, _ := args.Get(0).(*domain.Employee); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEmployeeRepo) Toggle(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if e, _ := args.Get(0).(*domain.Employee); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEmployeeRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	return m.Called(ctx, e).Error(0)
}
func (m *mockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Equipment)
	return list, args.Error(1)
}
func (m *mockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if e, _ := args.Get(0).(*domain.Equipment); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEquipmentRepo) Update(ctx context.Context, id int64, changes repository.Changes) (*domain.Equipment, error) {
	args := m.Called(ctx, id, changes)
	if e, _ := args.Get(0).(*domain.Equipment); e != nil {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockEquipmentRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockLoginLogRepo struct{ mock.Mock }

func (m *mockLoginLogRepo) Create(ctx context.Context, log *domain.LoginLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *mockLoginLogRepo) Daily(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	args := m.Called(ctx, since)
	list, _ := args.Get(0).([]domain.DailyCount)
	return list, args.Error(1)
}
func (m *mockLoginLogRepo) Monthly(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error) {
	args := m.Called(ctx, since)
	list, _ := args.Get(0).([]domain.MonthlyCount)
	return list, args.Error(1)
}
func (m *mockLoginLogRepo) Hourly(ctx context.Context, since time.Time) ([]domain.HourlyCount, error) {
	args := m.Called(ctx, since)
	list, _ := args.Get(0).([]domain.HourlyCount)
	return list, args.Error(1)
}

// recordingDispatcher keeps published events for assertions.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}
func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
