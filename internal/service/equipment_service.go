package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// EquipmentService tracks maintenance schedules.
type EquipmentService struct {
	equipment       repository.EquipmentRepository
	clock           clock.Clock
	location        *time.Location
	soonDays        int
	defaultInterval int
}

// EquipmentDependencies bundles collaborators for EquipmentService.
type EquipmentDependencies struct {
	EquipmentRepo   repository.EquipmentRepository
	Clock           clock.Clock
	Location        *time.Location
	SoonDays        int
	DefaultInterval int
}

// EquipmentCreateInput describes a new machine.
type EquipmentCreateInput struct {
	Name            string
	Type            string
	LastMaintenance time.Time
	IntervalMonths  int
}

// EquipmentUpdateInput is a sparse update. Setting LastMaintenance
// recomputes the next maintenance date using IntervalMonths.
type EquipmentUpdateInput struct {
	Name            *string
	Type            *string
	Status          *string
	LastMaintenance *time.Time
	IntervalMonths  int
}

// EquipmentView is equipment with its maintenance status at read time.
type EquipmentView struct {
	domain.Equipment
	Maintenance domain.Lifetime
}

// NewEquipmentService builds the service.
func NewEquipmentService(deps EquipmentDependencies) *EquipmentService {
	s := &EquipmentService{
		equipment:       deps.EquipmentRepo,
		clock:           deps.Clock,
		location:        deps.Location,
		soonDays:        deps.SoonDays,
		defaultInterval: deps.DefaultInterval,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.soonDays <= 0 {
		s.soonDays = domain.MaintenanceSoonDays
	}
	if s.defaultInterval <= 0 {
		s.defaultInterval = domain.DefaultMaintenanceIntervalMonths
	}
	return s
}

// List returns equipment, most urgent maintenance first.
func (s *EquipmentService) List(ctx context.Context) ([]EquipmentView, error) {
	list, err := s.equipment.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	now := s.now()
	views := make([]EquipmentView, 0, len(list))
	for i := range list {
		views = append(views, s.view(&list[i], now))
	}
	return views, nil
}

// Create adds equipment with status Aktif.
func (s *EquipmentService) Create(ctx context.Context, input EquipmentCreateInput) (*EquipmentView, error) {
	e := &domain.Equipment{
		Name:   input.Name,
		Type:   input.Type,
		Status: domain.EquipmentStatusActive,
	}
	e.Schedule(domain.CivilDate(input.LastMaintenance), s.interval(input.IntervalMonths))
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, apperrors.MapError(err)
	}
	view := s.view(e, s.now())
	return &view, nil
}

// Update applies the non-nil fields of input.
func (s *EquipmentService) Update(ctx context.Context, id int64, input EquipmentUpdateInput) (*EquipmentView, error) {
	changes := repository.Changes{}
	if input.Name != nil {
		changes.Set(repository.EquipmentFieldName, *input.Name)
	}
	if input.Type != nil {
		changes.Set(repository.EquipmentFieldType, *input.Type)
	}
	if input.Status != nil {
		changes.Set(repository.EquipmentFieldStatus, *input.Status)
	}
	if input.LastMaintenance != nil {
		var e domain.Equipment
		e.Schedule(domain.CivilDate(*input.LastMaintenance), s.interval(input.IntervalMonths))
		changes.Set(repository.EquipmentFieldLastMaintenance, e.LastMaintenance)
		changes.Set(repository.EquipmentFieldNextMaintenance, e.NextMaintenance)
	}
	return s.update(ctx, id, changes)
}

// RecordMaintenance marks equipment as serviced today.
func (s *EquipmentService) RecordMaintenance(ctx context.Context, id int64, intervalMonths int) (*EquipmentView, error) {
	var e domain.Equipment
	e.Schedule(domain.CivilDate(s.now()), s.interval(intervalMonths))
	changes := repository.Changes{}.
		Set(repository.EquipmentFieldLastMaintenance, e.LastMaintenance).
		Set(repository.EquipmentFieldNextMaintenance, e.NextMaintenance)
	return s.update(ctx, id, changes)
}

// Delete removes equipment.
func (s *EquipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.equipment.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("equipment", map[string]any{"equipment_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *EquipmentService) update(ctx context.Context, id int64, changes repository.Changes) (*EquipmentView, error) {
	e, err := s.equipment.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("equipment", map[string]any{"equipment_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	view := s.view(e, s.now())
	return &view, nil
}

func (s *EquipmentService) view(e *domain.Equipment, now time.Time) EquipmentView {
	return EquipmentView{Equipment: *e, Maintenance: e.Lifetime(now, s.soonDays)}
}

func (s *EquipmentService) interval(months int) int {
	if months <= 0 {
		return s.defaultInterval
	}
	return months
}

func (s *EquipmentService) now() time.Time {
	return s.clock.Now().In(s.location)
}
