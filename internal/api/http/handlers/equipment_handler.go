package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/service"
)

// EquipmentManager tracks maintenance schedules.
type EquipmentManager interface {
	List(ctx context.Context) ([]service.EquipmentView, error)
	Create(ctx context.Context, input service.EquipmentCreateInput) (*service.EquipmentView, error)
	Update(ctx context.Context, id int64, input service.EquipmentUpdateInput) (*service.EquipmentView, error)
	RecordMaintenance(ctx context.Context, id int64, intervalMonths int) (*service.EquipmentView, error)
	Delete(ctx context.Context, id int64) error
}

// EquipmentHandler exposes /api/admin/equipment.
type EquipmentHandler struct {
	equipment EquipmentManager
}

// NewEquipmentHandler constructs handler.
func NewEquipmentHandler(equipment EquipmentManager) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

// List handles GET /api/admin/equipment.
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	list, err := h.equipment.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.EquipmentResponse, 0, len(list))
	for i := range list {
		resp = append(resp, equipmentResponse(&list[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/admin/equipment.
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var req dto.EquipmentCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	e, err := h.equipment.Create(c.UserContext(), service.EquipmentCreateInput{
		Name:            req.Name,
		Type:            req.Type,
		LastMaintenance: req.LastMaintenance.Time,
		IntervalMonths:  req.IntervalMonths,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(equipmentResponse(e))
}

// Update handles PUT /api/admin/equipment/:id.
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EquipmentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	input := service.EquipmentUpdateInput{
		Name:           req.Name,
		Type:           req.Type,
		Status:         req.Status,
		IntervalMonths: req.IntervalMonths,
	}
	if req.LastMaintenance != nil {
		last := req.LastMaintenance.Time
		input.LastMaintenance = &last
	}
	e, err := h.equipment.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(equipmentResponse(e))
}

// RecordMaintenance handles PUT /api/admin/equipment/:id/maintenance.
func (h *EquipmentHandler) RecordMaintenance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.MaintenanceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	e, err := h.equipment.RecordMaintenance(c.UserContext(), id, req.IntervalMonths)
	if err != nil {
		return err
	}
	return c.JSON(equipmentResponse(e))
}

// Delete handles DELETE /api/admin/equipment/:id.
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.equipment.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func equipmentResponse(e *service.EquipmentView) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:                e.ID,
		Name:              e.Name,
		Type:              e.Type,
		LastMaintenance:   dto.NewDate(e.LastMaintenance),
		NextMaintenance:   dto.NewDate(e.NextMaintenance),
		Status:            e.Status,
		RemainingDays:     e.Maintenance.RemainingDays,
		MaintenanceStatus: string(e.Maintenance.Status),
	}
}

