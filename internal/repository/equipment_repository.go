package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
)

// EquipmentRepository stores machines and their maintenance dates.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, id int64, changes Changes) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Equipment update fields.
const (
	EquipmentFieldName            = "name"
	EquipmentFieldType            = "type"
	EquipmentFieldStatus          = "status"
	EquipmentFieldLastMaintenance = "lastMaintenance"
	EquipmentFieldNextMaintenance = "nextMaintenance"
)

var equipmentUpdateColumns = map[string]string{
	EquipmentFieldName:            "name",
	EquipmentFieldType:            "type",
	EquipmentFieldStatus:          "status",
	EquipmentFieldLastMaintenance: "last_maintenance",
	EquipmentFieldNextMaintenance: "next_maintenance",
}

const equipmentColumns = `id, name, type, last_maintenance, next_maintenance, status`

type equipmentRepository struct {
	db Querier
}

// NewEquipmentRepository constructs the repository.
func NewEquipmentRepository(db Querier) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func scanEquipment(row pgx.Row) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.LastMaintenance,
		&e.NextMaintenance,
		&e.Status,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) error {
	const query = `
        INSERT INTO equipment (name, type, last_maintenance, next_maintenance, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.db.QueryRow(ctx, query,
		equipment.Name,
		equipment.Type,
		equipment.LastMaintenance,
		equipment.NextMaintenance,
		equipment.Status,
	).Scan(&equipment.ID)
}

// List returns equipment with the most urgent maintenance first.
func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY next_maintenance ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return scanEquipment(r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id=$1`, id))
}

func (r *equipmentRepository) Update(ctx context.Context, id int64, changes Changes) (*domain.Equipment, error) {
	if changes.Empty() {
		return r.GetByID(ctx, id)
	}
	query, args, err := buildUpdate("equipment", equipmentUpdateColumns, changes, id, equipmentColumns)
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.db.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM equipment WHERE id=$1`, id)
}

func (r *equipmentRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM equipment`)
}
