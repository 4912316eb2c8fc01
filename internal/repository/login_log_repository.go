package repository

import (
	"context"
	"time"

	"github.com/ironhall/gym-service/internal/domain"
)

// LoginLogRepository records member check-ins and aggregates them.
type LoginLogRepository interface {
	Create(ctx context.Context, log *domain.LoginLog) error
	Daily(ctx context.Context, since time.Time) ([]domain.DailyCount, error)
	Monthly(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error)
	Hourly(ctx context.Context, since time.Time) ([]domain.HourlyCount, error)
}

type loginLogRepository struct {
	db Querier
}

// NewLoginLogRepository constructs the repository.
func NewLoginLogRepository(db Querier) LoginLogRepository {
	return &loginLogRepository{db: db}
}

func (r *loginLogRepository) Create(ctx context.Context, log *domain.LoginLog) error {
	const query = `
        INSERT INTO login_logs (member_id, method)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, log.MemberID, string(log.Method)).Scan(&log.ID, &log.CreatedAt)
}

func (r *loginLogRepository) Daily(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	const query = `
        SELECT to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*)
        FROM login_logs
        WHERE created_at >= $1
        GROUP BY day
        ORDER BY day ASC`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.DailyCount{}
	for rows.Next() {
		var dc domain.DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

func (r *loginLogRepository) Monthly(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error) {
	const query = `
        SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*)
        FROM login_logs
        WHERE created_at >= $1
        GROUP BY month
        ORDER BY month ASC`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.MonthlyCount{}
	for rows.Next() {
		var mc domain.MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		result = append(result, mc)
	}
	return result, rows.Err()
}

func (r *loginLogRepository) Hourly(ctx context.Context, since time.Time) ([]domain.HourlyCount, error) {
	const query = `
        SELECT EXTRACT(HOUR FROM created_at)::int AS hour, COUNT(*)
        FROM login_logs
        WHERE created_at >= $1
        GROUP BY hour
        ORDER BY hour ASC`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.HourlyCount{}
	for rows.Next() {
		var hc domain.HourlyCount
		if err := rows.Scan(&hc.Hour, &hc.Count); err != nil {
			return nil, err
		}
		result = append(result, hc)
	}
	return result, rows.Err()
}
