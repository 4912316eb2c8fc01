package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

// StockService manages front-desk stock.
type StockService struct {
	stock repository.StockRepository
}

// StockCreateInput describes a new stock item. Nil quantities default to 0.
type StockCreateInput struct {
	Name        string
	Quantity    *int
	MinQuantity *int
}

// StockUpdateInput is a sparse update; nil fields are left unchanged.
type StockUpdateInput struct {
	Name        *string
	Quantity    *int
	MinQuantity *int
}

// NewStockService builds the service.
func NewStockService(stock repository.StockRepository) *StockService {
	return &StockService{stock: stock}
}

// List returns every stock item.
func (s *StockService) List(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.stock.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// Create adds a stock item.
func (s *StockService) Create(ctx context.Context, input StockCreateInput) (*domain.StockItem, error) {
	item := &domain.StockItem{
		Name:        input.Name,
		Quantity:    intOrZero(input.Quantity),
		MinQuantity: intOrZero(input.MinQuantity),
	}
	if err := s.stock.Create(ctx, item); err != nil {
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// Update applies the non-nil fields of input.
func (s *StockService) Update(ctx context.Context, id int64, input StockUpdateInput) (*domain.StockItem, error) {
	changes := repository.Changes{}
	if input.Name != nil {
		changes.Set(repository.StockFieldName, *input.Name)
	}
	if input.Quantity != nil {
		changes.Set(repository.StockFieldQuantity, *input.Quantity)
	}
	if input.MinQuantity != nil {
		changes.Set(repository.StockFieldMinQuantity, *input.MinQuantity)
	}

	item, err := s.stock.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("stock item", map[string]any{"stock_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return item, nil
}

// Delete removes a stock item.
func (s *StockService) Delete(ctx context.Context, id int64) error {
	if err := s.stock.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("stock item", map[string]any{"stock_id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
