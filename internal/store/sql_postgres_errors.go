package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to one of the sentinel errors of this package.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. The returned error wraps both
// the sentinel and the original driver error. [sql.ErrNoRows] is passed
// through untouched so repositories can map it to their own not-found
// sentinel.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel := ClassifyPgError(pgErr); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// ClassifyPgError maps a *pgconn.PgError to a sentinel error based on
// the PostgreSQL error code, or nil when the code has no dedicated sentinel.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 23 unique violation → [ErrDuplicate]
//   - Class 23 not-null and check violations, Class 22 data exceptions → [ErrInvalidData]
//   - Class 08 connection exceptions, 57P03 cannot connect now → [ErrStoreUnavailable]
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	// Class 23: integrity constraint violations
	case pgerrcode.UniqueViolation:
		return ErrDuplicate
	case pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return ErrInvalidData

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow: // 57P03
		return ErrStoreUnavailable
	}

	// Class 22: data exceptions (invalid text representation, numeric
	// value out of range, string data right truncation, ...)
	if pgerrcode.IsDataException(pgErr.Code) {
		return ErrInvalidData
	}

	return nil
}
