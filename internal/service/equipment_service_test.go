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
	"github.com/ironhall/gym-service/internal/repository"
)

func newEquipmentService(repo *mockEquipmentRepo, now time.Time) *EquipmentService {
	return NewEquipmentService(EquipmentDependencies{
		EquipmentRepo: repo,
		Clock:         clock.NewFake(now),
	})
}

func TestEquipmentService_Create_DefaultInterval(t *testing.T) {
	repo := &mockEquipmentRepo{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	view, err := newEquipmentService(repo, now).Create(context.Background(), EquipmentCreateInput{
		Name:            "Bench Press",
		Type:            "Ağırlık",
		LastMaintenance: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EquipmentStatusActive, view.Status)
	assert.Equal(t, time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC), view.NextMaintenance)
	assert.Equal(t, domain.ExpiryStatusActive, view.Maintenance.Status)
}

func TestEquipmentService_Update_RecomputesNextMaintenance(t *testing.T) {
	repo := &mockEquipmentRepo{}
	last := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	want := repository.Changes{
		repository.EquipmentFieldStatus:          "Bakımda",
		repository.EquipmentFieldLastMaintenance: last,
		repository.EquipmentFieldNextMaintenance: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
	repo.On("Update", mock.Anything, int64(2), want).
		Return(&domain.Equipment{ID: 2, LastMaintenance: last, NextMaintenance: want[repository.EquipmentFieldNextMaintenance].(time.Time)}, nil)

	status := "Bakımda"
	_, err := newEquipmentService(repo, last).Update(context.Background(), 2, EquipmentUpdateInput{
		Status:          &status,
		LastMaintenance: &last,
		IntervalMonths:  1,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEquipmentService_RecordMaintenance(t *testing.T) {
	repo := &mockEquipmentRepo{}
	now := time.Date(2024, time.June, 15, 17, 45, 0, 0, time.UTC)
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	want := repository.Changes{
		repository.EquipmentFieldLastMaintenance: today,
		repository.EquipmentFieldNextMaintenance: time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
	}
	repo.On("Update", mock.Anything, int64(1), want).
		Return(&domain.Equipment{ID: 1, LastMaintenance: today, NextMaintenance: want[repository.EquipmentFieldNextMaintenance].(time.Time)}, nil)

	view, err := newEquipmentService(repo, now).RecordMaintenance(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 92, view.Maintenance.RemainingDays)
	repo.AssertExpectations(t)
}

func TestEquipmentService_List_MaintenanceWindow(t *testing.T) {
	repo := &mockEquipmentRepo{}
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything).Return([]domain.Equipment{
		{ID: 1, NextMaintenance: time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)},
		{ID: 2, NextMaintenance: time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)},
	}, nil)

	views, err := newEquipmentService(repo, now).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ExpiryStatusExpiringSoon, views[0].Maintenance.Status)
	assert.Equal(t, domain.ExpiryStatusActive, views[1].Maintenance.Status)
}
