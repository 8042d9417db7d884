// Package postgres implements the store domain repositories against
// PostgreSQL. Driver errors never cross this boundary: every failure is
// reclassified into a domain sentinel or wrapped with query context.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	storedomain "github.com/ghuser/stockroom/services/store/domain"
)

// Postgres error codes this package cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// classify maps a driver error to a domain sentinel where one applies.
// Unique violations become ErrUsernameTaken, foreign-key violations become
// ErrUserNotFound (the only FK in the schema points at users), and
// connectivity or timeout failures become ErrStoreUnavailable so callers
// can decide retry policy. Anything else passes through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return storedomain.ErrUsernameTaken
		case codeForeignKeyViolation:
			return storedomain.ErrUserNotFound
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", storedomain.ErrStoreUnavailable, err)
	}

	return err
}
