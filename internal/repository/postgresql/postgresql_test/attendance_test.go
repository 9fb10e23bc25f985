package postgresql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_CreateCheckIn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	now := time.Date(2024, 3, 11, 2, 58, 0, 0, time.UTC)
	date := utcDate(2024, 3, 11)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance_days")).
		WithArgs("day-1", "org-1", "emp-1", date, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "present", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(dayColumns).AddRow(
			"day-1", "org-1", "emp-1", date,
			ptr(now), ptr(28.614), ptr(77.2091),
			nil, nil, nil,
			"present", ptr("device-1"), nil, now, now,
		))

	day, err := repo.CreateCheckIn(context.Background(), attendance.Day{
		ID:              "day-1",
		OrganizationID:  "org-1",
		EmployeeID:      "emp-1",
		Date:            date,
		CheckIn:         &now,
		CheckInLocation: &geo.Point{Latitude: 28.614, Longitude: 77.2091},
		Status:          attendance.StatusPresent,
		DeviceID:        ptr("device-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "day-1", day.ID)
	assert.Equal(t, attendance.StatusPresent, day.Status)
	require.NotNil(t, day.CheckInLocation)
	assert.Equal(t, 28.614, day.CheckInLocation.Latitude)
	assert.Nil(t, day.CheckOutLocation)
}

func TestAttendanceRepository_CreateCheckIn_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (organization_id, employee_id, date) DO NOTHING")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(dayColumns))

	now := time.Now()
	_, err := repo.CreateCheckIn(context.Background(), attendance.Day{
		ID: "day-2", OrganizationID: "org-1", EmployeeID: "emp-1",
		Date: utcDate(2024, 3, 11), CheckIn: &now, Status: attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_GetByEmployeeAndDate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_days")).
		WithArgs("org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnError(pgx.ErrNoRows)

	day, err := repo.GetByEmployeeAndDate(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 11))
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestAttendanceRepository_GetByEmployeeAndDate_CorruptStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_days")).
		WithArgs("org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnRows(pgxmock.NewRows(dayColumns).AddRow(
			"day-1", "org-1", "emp-1", utcDate(2024, 3, 11),
			ptr(now), nil, nil,
			nil, nil, nil,
			"PRESENT", nil, nil, now, now,
		))

	_, err := repo.GetByEmployeeAndDate(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 11))
	assert.ErrorIs(t, err, attendance.ErrCorruptRecord)
}

func TestAttendanceRepository_GetByEmployeeAndDate_HalfLocationIsCorrupt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance_days")).
		WithArgs("org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnRows(pgxmock.NewRows(dayColumns).AddRow(
			"day-1", "org-1", "emp-1", utcDate(2024, 3, 11),
			ptr(now), ptr(28.6), nil,
			nil, nil, nil,
			"present", nil, nil, now, now,
		))

	_, err := repo.GetByEmployeeAndDate(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 11))
	assert.ErrorIs(t, err, attendance.ErrCorruptRecord)
}

func TestAttendanceRepository_CloseCheckOut_AlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("AND check_out IS NULL")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			"org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnRows(pgxmock.NewRows(dayColumns))

	now := time.Now()
	_, err := repo.CloseCheckOut(context.Background(), attendance.Day{
		OrganizationID: "org-1", EmployeeID: "emp-1", Date: utcDate(2024, 3, 11),
		CheckOut: &now, WorkMinutes: ptr(480),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attendance_days WHERE organization_id = $1 AND employee_id = $2 AND date >= $3 AND status = $4")).
		WithArgs("org-1", "emp-1", "2024-03-01", "present").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date ASC")).
		WithArgs("org-1", "emp-1", "2024-03-01", "present", 2, 2).
		WillReturnRows(pgxmock.NewRows(dayColumns).AddRow(
			"day-3", "org-1", "emp-1", utcDate(2024, 3, 6),
			ptr(now), nil, nil,
			ptr(now.Add(8*time.Hour)), nil, nil,
			"present", nil, ptr(480), now, now,
		))

	filter := attendance.MyAttendanceFilter{
		StartDate: ptr("2024-03-01"),
		Status:    ptr("present"),
		Page:      2,
		Limit:     2,
		SortOrder: "asc",
	}
	days, total, err := repo.List(context.Background(), "org-1", "emp-1", filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, days, 1)
	assert.Equal(t, 480, *days[0].WorkMinutes)
}

func TestAttendanceRepository_ListByRange_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date ASC")).
		WithArgs("org-1", "emp-1", utcDate(2024, 3, 1), utcDate(2024, 3, 31)).
		WillReturnError(boom)

	_, err := repo.ListByRange(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 1), utcDate(2024, 3, 31))
	assert.ErrorIs(t, err, boom)
}

func TestAttendanceBreakRepository_Open_AlreadyActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceBreakRepository(db)

	start := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE break_end IS NULL DO NOTHING")).
		WithArgs("brk-2", "org-1", "emp-1", utcDate(2024, 3, 11), start).
		WillReturnRows(pgxmock.NewRows(breakColumns))

	_, err := repo.Open(context.Background(), attendance.Break{
		ID: "brk-2", OrganizationID: "org-1", EmployeeID: "emp-1", Date: utcDate(2024, 3, 11), Start: start,
	})
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyActive)
}

func TestAttendanceRepository_CreateCheckIn_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance_days")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	now := time.Now()
	_, err := repo.CreateCheckIn(context.Background(), attendance.Day{
		ID: "day-3", OrganizationID: "org-1", EmployeeID: "emp-1",
		Date: utcDate(2024, 3, 11), CheckIn: &now, Status: attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceBreakRepository_CloseActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceBreakRepository(db)

	start := time.Date(2024, 3, 11, 6, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE attendance_breaks")).
		WithArgs(end, "org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnRows(pgxmock.NewRows(breakColumns).AddRow(
			"brk-1", "org-1", "emp-1", utcDate(2024, 3, 11), start, ptr(end), start,
		))

	b, err := repo.CloseActive(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 11), end)
	require.NoError(t, err)
	assert.False(t, b.IsOpen())
	assert.Equal(t, end, *b.End)
}

func TestAttendanceBreakRepository_CloseActive_NoneOpen(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgresql.NewAttendanceBreakRepository(db)

	end := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE attendance_breaks")).
		WithArgs(end, "org-1", "emp-1", utcDate(2024, 3, 11)).
		WillReturnRows(pgxmock.NewRows(breakColumns))

	_, err := repo.CloseActive(context.Background(), "org-1", "emp-1", utcDate(2024, 3, 11), end)
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}
