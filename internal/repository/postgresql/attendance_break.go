package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const breakColumns = `id, organization_id, employee_id, date, break_start, break_end, created_at`

type attendanceBreakRepository struct {
	db *database.DB
}

func scanBreak(row rowScanner) (attendance.Break, error) {
	var b attendance.Break
	err := row.Scan(&b.ID, &b.OrganizationID, &b.EmployeeID, &b.Date, &b.Start, &b.End, &b.CreatedAt)
	if err != nil {
		return attendance.Break{}, err
	}
	if b.End != nil && b.End.Before(b.Start) {
		return attendance.Break{}, fmt.Errorf("%w: break %s ends before it starts", attendance.ErrCorruptRecord, b.ID)
	}
	return b, nil
}

// Open implements attendance.BreakRepository.
// The partial unique index on open breaks turns a concurrent second open into a no-op insert.
func (r *attendanceBreakRepository) Open(ctx context.Context, b attendance.Break) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_breaks (id, organization_id, employee_id, date, break_start)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (organization_id, employee_id, date) WHERE break_end IS NULL DO NOTHING
		RETURNING ` + breakColumns

	opened, err := scanBreak(q.QueryRow(ctx, query, b.ID, b.OrganizationID, b.EmployeeID, b.Date, b.Start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return attendance.Break{}, attendance.ErrBreakAlreadyActive
		}
		return attendance.Break{}, fmt.Errorf("failed to open break: %w", err)
	}

	return opened, nil
}

// CloseActive implements attendance.BreakRepository.
func (r *attendanceBreakRepository) CloseActive(ctx context.Context, organizationID, employeeID string, date time.Time, end time.Time) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_breaks
		SET break_end = GREATEST($1, break_start)
		WHERE organization_id = $2 AND employee_id = $3 AND date = $4
		  AND break_end IS NULL
		RETURNING ` + breakColumns

	closed, err := scanBreak(q.QueryRow(ctx, query, end, organizationID, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Break{}, attendance.ErrNoActiveBreak
		}
		return attendance.Break{}, fmt.Errorf("failed to close break: %w", err)
	}

	return closed, nil
}

// ListByDay implements attendance.BreakRepository.
func (r *attendanceBreakRepository) ListByDay(ctx context.Context, organizationID, employeeID string, date time.Time) ([]attendance.Break, error) {
	return r.ListByRange(ctx, organizationID, employeeID, date, date)
}

// ListByRange implements attendance.BreakRepository.
func (r *attendanceBreakRepository) ListByRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + breakColumns + `
		FROM attendance_breaks
		WHERE organization_id = $1 AND employee_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date ASC, break_start ASC
	`

	rows, err := q.Query(ctx, query, organizationID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query breaks: %w", err)
	}
	defer rows.Close()

	var breaks []attendance.Break
	for rows.Next() {
		b, err := scanBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate breaks: %w", err)
	}

	return breaks, nil
}

func NewAttendanceBreakRepository(db *database.DB) attendance.BreakRepository {
	return &attendanceBreakRepository{db: db}
}
