package repository

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrProductNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrConflict},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrConflict},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
		{"anything else", errors.New("connection reset"), domain.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDBError(tt.in, domain.ErrProductNotFound)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateDBError_HidesDriverText(t *testing.T) {
	err := translateDBError(&pgconn.PgError{Code: "08006", Message: "password authentication failed for user postgres"}, domain.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, "A database error occurred", err.Error())
}

func TestUserRepository_PostgresUpstreamError(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

	_, err := repo.GetUserByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_PostgresDeleteMissing(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProduct(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(`UPDATE "products"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_products_name"})

	err := repo.UpdateProduct(context.Background(), &domain.Product{ID: uuid.NewString(), Name: "Chair", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
