package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
)

// StockRepository manages front-desk stock.
type StockRepository interface {
	Create(ctx context.Context, item *domain.StockItem) error
	List(ctx context.Context) ([]domain.StockItem, error)
	GetByID(ctx context.Context, id int64) (*domain.StockItem, error)
	Update(ctx context.Context, id int64, changes Changes) (*domain.StockItem, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Stock update fields.
const (
	StockFieldName        = "name"
	StockFieldQuantity    = "quantity"
	StockFieldMinQuantity = "minQuantity"
)

var stockUpdateColumns = map[string]string{
	StockFieldName:        "name",
	StockFieldQuantity:    "quantity",
	StockFieldMinQuantity: "min_quantity",
}

const stockColumns = `id, name, quantity, min_quantity`

type stockRepository struct {
	db Querier
}

// NewStockRepository builds the repository.
func NewStockRepository(db Querier) StockRepository {
	return &stockRepository{db: db}
}

func scanStockItem(row pgx.Row) (*domain.StockItem, error) {
	var item domain.StockItem
	if err := row.Scan(&item.ID, &item.Name, &item.Quantity, &item.MinQuantity); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockRepository) Create(ctx context.Context, item *domain.StockItem) error {
	const query = `
        INSERT INTO stock_items (name, quantity, min_quantity)
        VALUES ($1, $2, $3)
        RETURNING id`
	return r.db.QueryRow(ctx, query, item.Name, item.Quantity, item.MinQuantity).Scan(&item.ID)
}

func (r *stockRepository) List(ctx context.Context) ([]domain.StockItem, error) {
	rows, err := r.db.Query(ctx, `SELECT `+stockColumns+` FROM stock_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, rows.Err()
}

func (r *stockRepository) GetByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	return scanStockItem(r.db.QueryRow(ctx, `SELECT `+stockColumns+` FROM stock_items WHERE id=$1`, id))
}

// Update applies a sparse update. An empty change set returns the current row.
func (r *stockRepository) Update(ctx context.Context, id int64, changes Changes) (*domain.StockItem, error) {
	if changes.Empty() {
		return r.GetByID(ctx, id)
	}
	query, args, err := buildUpdate("stock_items", stockUpdateColumns, changes, id, stockColumns)
	if err != nil {
		return nil, err
	}
	return scanStockItem(r.db.QueryRow(ctx, query, args...))
}

func (r *stockRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM stock_items WHERE id=$1`, id)
}

func (r *stockRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM stock_items`)
}
