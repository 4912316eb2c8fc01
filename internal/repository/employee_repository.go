package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
)

// EmployeeRepository stores gym staff.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	// Toggle flips the active flag and returns the updated row.
	Toggle(ctx context.Context, id int64) (*domain.Employee, error)
	Count(ctx context.Context) (int, error)
}

type employeeRepository struct {
	db Querier
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db Querier) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, role, phone, salary, active, hired_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Role,
		&e.Phone,
		&e.Salary,
		&e.Active,
		&e.HiredAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, role, phone, salary, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, hired_at`

	return r.db.QueryRow(ctx, query,
		employee.Name,
		employee.Role,
		employee.Phone,
		employee.Salary,
		employee.Active,
	).Scan(&employee.ID, &employee.HiredAt)
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY hired_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id=$1`, id))
}

func (r *employeeRepository) Toggle(ctx context.Context, id int64) (*domain.Employee, error) {
	return scanEmployee(r.db.QueryRow(ctx,
		`UPDATE employees SET active = NOT active WHERE id=$1 RETURNING `+employeeColumns, id))
}

func (r *employeeRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM employees`)
}
