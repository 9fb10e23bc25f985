package postgresql_test

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// newMockDB wraps a pgxmock pool in database.DB and checks expectations on cleanup.
func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return database.New(mock), mock
}

var dayColumns = []string{
	"id", "organization_id", "employee_id", "date",
	"check_in", "check_in_latitude", "check_in_longitude",
	"check_out", "check_out_latitude", "check_out_longitude",
	"status", "device_id", "work_minutes", "created_at", "updated_at",
}

var breakColumns = []string{"id", "organization_id", "employee_id", "date", "break_start", "break_end", "created_at"}

func ptr[T any](v T) *T { return &v }

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
