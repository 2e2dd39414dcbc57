package service_test

import (
	"errors"
	"fmt"
	"testing"

	"go-postgres-optics/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapDBError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, service.WrapDBError(nil))
	})

	t.Run("unique violation becomes duplicate entry", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_stocks_frame_type"}
		err := service.WrapDBError(pgErr)
		assert.ErrorIs(t, err, service.ErrDuplicateEntry)
	})

	t.Run("wrapped unique violation still detected", func(t *testing.T) {
		inner := &pgconn.PgError{Code: "23505"}
		err := service.WrapDBError(fmt.Errorf("create failed: %w", inner))
		assert.ErrorIs(t, err, service.ErrDuplicateEntry)
	})

	t.Run("translated duplicated key becomes duplicate entry", func(t *testing.T) {
		err := service.WrapDBError(fmt.Errorf("create failed: %w", gorm.ErrDuplicatedKey))
		assert.ErrorIs(t, err, service.ErrDuplicateEntry)
	})

	t.Run("other pg errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"} // foreign key violation
		err := service.WrapDBError(pgErr)
		assert.NotErrorIs(t, err, service.ErrDuplicateEntry)
		assert.NotErrorIs(t, err, service.ErrConnection)
	})

	t.Run("generic errors pass through unchanged", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Equal(t, plain, service.WrapDBError(plain))
	})
}
