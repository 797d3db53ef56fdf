package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func orderColumns() []string {
	return []string{"id", "user_id", "status", "total", "created_at", "updated_at"}
}

func TestOrderGormRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(42), int64(10), "PENDING", "1000.00", now, now))

	o, err := r.FindByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), o.ID)
	assert.Equal(t, int64(10), o.UserID)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(1000)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGormRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGormRepository_UpdateTotal(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.UpdateTotal(context.Background(), 42, decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGormRepository_UpdateTotal_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	// 0行更新は存在しない注文
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateTotal(context.Background(), 99, decimal.NewFromInt(1000))
	assert.ErrorIs(t, err, repo.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGormRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE user_id = $1`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(int64(2), int64(10), "PENDING", "1000.00", now, now).
			AddRow(int64(1), int64(10), "PAID", "3000.00", now.Add(-time.Hour), now.Add(-time.Hour)))

	orders, err := r.ListByUserID(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(1), orders[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGormRepository_UpdateTotal_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewOrderGormRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET`)).
		WillReturnError(sql.ErrConnDone)

	err := r.UpdateTotal(context.Background(), 42, decimal.NewFromInt(1000))
	require.Error(t, err)
	assert.False(t, errors.Is(err, repo.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
