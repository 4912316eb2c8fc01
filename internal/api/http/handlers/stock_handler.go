package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ironhall/gym-service/internal/api/dto"
	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/service"
)

// StockManager manages front-desk stock.
type StockManager interface {
	List(ctx context.Context) ([]domain.StockItem, error)
	Create(ctx context.Context, input service.StockCreateInput) (*domain.StockItem, error)
	Update(ctx context.Context, id int64, input service.StockUpdateInput) (*domain.StockItem, error)
	Delete(ctx context.Context, id int64) error
}

// StockHandler exposes /api/admin/stock.
type StockHandler struct {
	stock StockManager
}

// NewStockHandler constructs handler.
func NewStockHandler(stock StockManager) *StockHandler {
	return &StockHandler{stock: stock}
}

// List handles GET /api/admin/stock.
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.stock.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.StockResponse, 0, len(items))
	for i := range items {
		resp = append(resp, stockResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Create handles POST /api/admin/stock.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req dto.StockCreateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.stock.Create(c.UserContext(), service.StockCreateInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(stockResponse(item))
}

// Update handles PUT /api/admin/stock/:id.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.StockUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := h.stock.Update(c.UserContext(), id, service.StockUpdateInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(stockResponse(item))
}

// Delete handles DELETE /api/admin/stock/:id.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.stock.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func stockResponse(item *domain.StockItem) dto.StockResponse {
	return dto.StockResponse{
		ID:          item.ID,
		Name:        item.Name,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		LowStock:    item.LowStock(),
	}
}
