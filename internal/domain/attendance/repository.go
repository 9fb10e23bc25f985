package attendance

import (
	"context"
	"time"
)

// DayRepository defines data access for attendance days.
// All methods include organizationID to prevent cross-tenant data access.
type DayRepository interface {
	// CreateCheckIn inserts the day row. A second row for the same
	// (organization, employee, date) fails with ErrAlreadyCheckedIn.
	CreateCheckIn(ctx context.Context, day Day) (Day, error)

	// GetByEmployeeAndDate returns nil when the employee has no row for date.
	GetByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (*Day, error)

	// CloseCheckOut sets the check-out fields on a row that is still open.
	// A row that was already closed fails with ErrAlreadyCheckedOut.
	CloseCheckOut(ctx context.Context, day Day) (Day, error)

	// ListByRange returns rows with from <= date <= to ordered by date.
	ListByRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]Day, error)

	// List returns a page of the employee's history and the total row count.
	List(ctx context.Context, organizationID, employeeID string, filter MyAttendanceFilter) ([]Day, int64, error)

	// Upsert writes an administrative manual entry, replacing any existing row.
	Upsert(ctx context.Context, day Day) (Day, error)
}

// BreakRepository defines data access for break intervals.
type BreakRepository interface {
	// Open inserts an open break. A second open break for the same
	// (organization, employee, date) fails with ErrBreakAlreadyActive.
	Open(ctx context.Context, b Break) (Break, error)

	// CloseActive closes the open break, failing with ErrNoActiveBreak when none exists.
	CloseActive(ctx context.Context, organizationID, employeeID string, date time.Time, end time.Time) (Break, error)

	ListByDay(ctx context.Context, organizationID, employeeID string, date time.Time) ([]Break, error)
	ListByRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]Break, error)
}
