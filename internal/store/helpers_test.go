package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

const testTimeZone = "-08:00"

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	cfg := config.DB{TimeZone: testTimeZone, AcquireTimeout: time.Second}
	return NewDB(sqlx.NewDb(mockDB, "pgx"), cfg, logger.Nop()), mock
}

// expectSession registers the statements run by every Acquire.
func expectSession(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta(setStandardConformingStrings)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("SET SESSION TIME ZONE INTERVAL '-08:00' HOUR TO MINUTE")).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
