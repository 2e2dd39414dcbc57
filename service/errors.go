package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrConnection     = errors.New("database connection failed")
)

// WrapDBError folds driver errors into the closed set handlers switch on:
// duplicate key, connection failure, or the original error as-is.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, pgErr.ConstraintName)
	}

	// Drivers opened with TranslateError report unique violations as
	// gorm.ErrDuplicatedKey instead of a pg error.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicateEntry, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
