package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// EmployeeService manages staff records.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// EmployeeCreateInput describes a new hire.
type EmployeeCreateInput struct {
	Name   string
	Role   string
	Phone  string
	Salary int
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// List returns employees, most recent hire first.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Create hires an employee; new employees start active.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name:   input.Name,
		Role:   input.Role,
		Phone:  input.Phone,
		Salary: input.Salary,
		Active: true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// Toggle flips an employee between active and inactive.
func (s *EmployeeService) Toggle(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"employee_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}
