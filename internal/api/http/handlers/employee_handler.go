package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/service"
)

// EmployeeManager manages staff records.
type EmployeeManager interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, input service.EmployeeCreateInput) (*domain.Employee, error)
	Toggle(ctx context.Context, id int64) (*domain.Employee, error)
}

// EmployeeHandler exposes /api/admin/employees.
type EmployeeHandler struct {
	employees EmployeeManager
}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler(employees EmployeeManager) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List handles GET /api/admin/employees.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.employees.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, employeeResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/admin/employees.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	e, err := h.employees.Create(c.UserContext(), service.EmployeeCreateInput{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Salary: req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(employeeResponse(e))
}

// Toggle handles PUT /api/admin/employees/:id/toggle.
func (h *EmployeeHandler) Toggle(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	e, err := h.employees.Toggle(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(e))
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:      e.ID,
		Name:    e.Name,
		Role:    e.Role,
		Phone:   e.Phone,
		Salary:  e.Salary,
		Active:  e.Active,
		HiredAt: e.HiredAt,
	}
}
