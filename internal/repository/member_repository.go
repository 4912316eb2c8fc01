package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ironhall/gym-service/internal/domain"
)

// MemberRepository is the membership ledger.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	List(ctx context.Context) ([]domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	Delete(ctx context.Context, id int64) error
	// Counts returns totals where active means membership_end >= today and
	// expiring soon means today <= membership_end <= soonUntil.
	Counts(ctx context.Context, today, soonUntil time.Time) (domain.MemberCounts, error)
	MonthlySignups(ctx context.Context, months int) ([]domain.MonthlyCount, error)
}

type memberRepository struct {
	db Querier
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(db Querier) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, name, email, phone, password, membership_end, created_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Password,
		&m.MembershipEnd,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (name, email, phone, password, membership_end)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		member.Name,
		member.Email,
		member.Phone,
		member.Password,
		member.MembershipEnd,
	).Scan(&member.ID, &member.CreatedAt)
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, rows.Err()
}

// GetByEmail returns the newest member registered with email; emails are not
// unique because a lapsed member may be re-registered.
func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return scanMember(r.db.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE email=$1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		email))
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM members WHERE id=$1`, id)
}

func (r *memberRepository) Counts(ctx context.Context, today, soonUntil time.Time) (domain.MemberCounts, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE membership_end >= $1),
               COUNT(*) FILTER (WHERE membership_end >= $1 AND membership_end <= $2)
        FROM members`

	var counts domain.MemberCounts
	if err := r.db.QueryRow(ctx, query, today, soonUntil).Scan(
		&counts.Total,
		&counts.Active,
		&counts.ExpiringSoon,
	); err != nil {
		return domain.MemberCounts{}, err
	}
	return counts, nil
}

func (r *memberRepository) MonthlySignups(ctx context.Context, months int) ([]domain.MonthlyCount, error) {
	const query = `
        SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*)
        FROM members
        GROUP BY month
        ORDER BY month DESC
        LIMIT $1`

	rows, err := r.db.Query(ctx, query, months)
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
