package postgres

import (
	"errors"
	"fmt"
	"realtors/pkg/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// translateError maps driver errors onto storage sentinels while keeping the
// original error in the chain. msg describes the failed operation.
func translateError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w (%s): %w", msg, storage.ErrUniqueViolation, pgErr.ConstraintName, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
