package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ironhall/gym-service/internal/auth"
	"github.com/ironhall/gym-service/internal/clock"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
)

// BootstrapService seeds an empty database with the rows the dashboard
// expects on first start.
type BootstrapService struct {
	admins    repository.AdminRepository
	stock     repository.StockRepository
	equipment repository.EquipmentRepository
	passwords auth.PasswordMatcher
	clock     clock.Clock
	location  *time.Location
	logger    *zap.Logger

	adminEmail    string
	adminPassword string
}

// BootstrapDependencies bundles collaborators for BootstrapService.
type BootstrapDependencies struct {
	AdminRepo     repository.AdminRepository
	StockRepo     repository.StockRepository
	EquipmentRepo repository.EquipmentRepository
	Passwords     auth.PasswordMatcher
	Clock         clock.Clock
	Location      *time.Location
	Logger        *zap.Logger
	AdminEmail    string
	AdminPassword string
}

type seedEquipment struct {
	name           string
	kind           string
	intervalMonths int
}

var (
	seedStock = []domain.StockItem{
		{Name: "Protein Tozu", Quantity: 10, MinQuantity: 3},
		{Name: "Kreatin", Quantity: 8, MinQuantity: 2},
		{Name: "BCAA", Quantity: 5, MinQuantity: 2},
	}
	seedEquipmentRows = []seedEquipment{
		{name: "Koşu Bandı 1", kind: "Kardiyovasküler", intervalMonths: 3},
		{name: "Dambıl Seti", kind: "Ağırlık", intervalMonths: 1},
		{name: "Bench Press", kind: "Ağırlık", intervalMonths: 3},
	}
)

// NewBootstrapService builds the service.
func NewBootstrapService(deps BootstrapDependencies) *BootstrapService {
	s := &BootstrapService{
		admins:        deps.AdminRepo,
		stock:         deps.StockRepo,
		equipment:     deps.EquipmentRepo,
		passwords:     deps.Passwords,
		clock:         deps.Clock,
		location:      deps.Location,
		logger:        deps.Logger,
		adminEmail:    deps.AdminEmail,
		adminPassword: deps.AdminPassword,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Seed fills each empty table. Tables that already hold rows are left alone,
// so Seed is safe on every start.
func (s *BootstrapService) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedStock(ctx); err != nil {
		return fmt.Errorf("seed stock: %w", err)
	}
	if err := s.seedEquipment(ctx); err != nil {
		return fmt.Errorf("seed equipment: %w", err)
	}
	return nil
}

func (s *BootstrapService) seedAdmin(ctx context.Context) error {
	n, err := s.admins.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	hash, err := s.passwords.Hash(s.adminPassword)
	if err != nil {
		return err
	}
	if err := s.admins.Create(ctx, &domain.Admin{Email: s.adminEmail, Password: hash}); err != nil {
		return err
	}
	s.logger.Info("default admin created", zap.String("email", s.adminEmail))
	return nil
}

func (s *BootstrapService) seedStock(ctx context.Context) error {
	n, err := s.stock.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, item := range seedStock {
		if err := s.stock.Create(ctx, &item); err != nil {
			return err
		}
	}
	s.logger.Info("stock seeded", zap.Int("items", len(seedStock)))
	return nil
}

func (s *BootstrapService) seedEquipment(ctx context.Context) error {
	n, err := s.equipment.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	today := domain.CivilDate(s.clock.Now().In(s.location))
	for _, row := range seedEquipmentRows {
		e := &domain.Equipment{Name: row.name, Type: row.kind, Status: domain.EquipmentStatusActive}
		e.Schedule(today, row.intervalMonths)
		if err := s.equipment.Create(ctx, e); err != nil {
			return err
		}
	}
	s.logger.Info("equipment seeded", zap.Int("items", len(seedEquipmentRows)))
	return nil
}
