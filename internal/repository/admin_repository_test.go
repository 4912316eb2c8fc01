package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/repository"
)

func TestAdminRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repository.NewAdminRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("create", func(t *testing.T) {
		a := &domain.Admin{Email: "admin@admin.com", Password: "123456"}
		mock.ExpectQuery("INSERT INTO admins").
			WithArgs("admin@admin.com", "123456").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

		require.NoError(t, r.Create(ctx, a))
		assert.Equal(t, int64(1), a.ID)
	})

	t.Run("get by email", func(t *testing.T) {
		mock.ExpectQuery("FROM admins WHERE email").
			WithArgs("admin@admin.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}).
				AddRow(int64(1), "admin@admin.com", "123456", now, now))

		a, err := r.GetByEmail(ctx, "admin@admin.com")
		require.NoError(t, err)
		assert.Equal(t, "123456", a.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		mock.ExpectQuery("FROM admins WHERE email").
			WithArgs("x@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.GetByEmail(ctx, "x@example.com")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admins")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
