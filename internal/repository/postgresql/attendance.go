package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
	"github.com/jackc/pgx/v5"
)

const dayColumns = `id, organization_id, employee_id, date,
			check_in, check_in_latitude, check_in_longitude,
			check_out, check_out_latitude, check_out_longitude,
			status, device_id, work_minutes, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanDay converts a row into a validated Day. Half-filled coordinates and
// unknown statuses are rejected as corrupt.
func scanDay(row rowScanner) (attendance.Day, error) {
	var (
		d              attendance.Day
		status         string
		inLat, inLng   *float64
		outLat, outLng *float64
	)

	err := row.Scan(
		&d.ID, &d.OrganizationID, &d.EmployeeID, &d.Date,
		&d.CheckIn, &inLat, &inLng,
		&d.CheckOut, &outLat, &outLng,
		&status, &d.DeviceID, &d.WorkMinutes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return attendance.Day{}, err
	}

	d.Status, err = attendance.ParseStatus(status)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("%w: day %s: %v", attendance.ErrCorruptRecord, d.ID, err)
	}

	if d.CheckInLocation, err = toPoint(inLat, inLng); err != nil {
		return attendance.Day{}, fmt.Errorf("%w: day %s check-in location", attendance.ErrCorruptRecord, d.ID)
	}
	if d.CheckOutLocation, err = toPoint(outLat, outLng); err != nil {
		return attendance.Day{}, fmt.Errorf("%w: day %s check-out location", attendance.ErrCorruptRecord, d.ID)
	}
	if d.CheckIn != nil && d.CheckOut != nil && d.CheckOut.Before(*d.CheckIn) {
		return attendance.Day{}, fmt.Errorf("%w: day %s check-out before check-in", attendance.ErrCorruptRecord, d.ID)
	}

	return d, nil
}

func toPoint(lat, lng *float64) (*geo.Point, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, geo.ErrInvalidCoordinates
	}
	p := geo.Point{Latitude: *lat, Longitude: *lng}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func pointArgs(p *geo.Point) (*float64, *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.Latitude, &p.Longitude
}

// CreateCheckIn implements attendance.DayRepository.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_days (
			id, organization_id, employee_id, date,
			check_in, check_in_latitude, check_in_longitude,
			status, device_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (organization_id, employee_id, date) DO NOTHING
		RETURNING ` + dayColumns

	lat, lng := pointArgs(day.CheckInLocation)
	created, err := scanDay(q.QueryRow(ctx, query,
		day.ID, day.OrganizationID, day.EmployeeID, day.Date,
		day.CheckIn, lat, lng,
		string(day.Status), day.DeviceID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return attendance.Day{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Day{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.DayRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, organizationID, employeeID string, date time.Time) (*attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days
		WHERE organization_id = $1 AND employee_id = $2 AND date = $3
	`

	day, err := scanDay(q.QueryRow(ctx, query, organizationID, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return &day, nil
}

// CloseCheckOut implements attendance.DayRepository.
func (a *attendanceRepository) CloseCheckOut(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_days
		SET check_out = $1,
			check_out_latitude = $2,
			check_out_longitude = $3,
			device_id = COALESCE($4, device_id),
			work_minutes = $5,
			updated_at = NOW()
		WHERE organization_id = $6 AND employee_id = $7 AND date = $8
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING ` + dayColumns

	lat, lng := pointArgs(day.CheckOutLocation)
	closed, err := scanDay(q.QueryRow(ctx, query,
		day.CheckOut, lat, lng, day.DeviceID, day.WorkMinutes,
		day.OrganizationID, day.EmployeeID, day.Date,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Day{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Day{}, fmt.Errorf("failed to close check-out: %w", err)
	}

	return closed, nil
}

// ListByRange implements attendance.DayRepository.
func (a *attendanceRepository) ListByRange(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + dayColumns + `
		FROM attendance_days
		WHERE organization_id = $1 AND employee_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, organizationID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance days: %w", err)
	}
	defer rows.Close()

	return collectDays(rows)
}

func collectDays(rows pgx.Rows) ([]attendance.Day, error) {
	var days []attendance.Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance days: %w", err)
	}
	return days, nil
}

// List implements attendance.DayRepository.
func (a *attendanceRepository) List(ctx context.Context, organizationID, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Day, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "organization_id = $1 AND employee_id = $2"
	args := []any{organizationID, employeeID}
	argIdx := 3

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendance_days WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance days: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance_days
		WHERE %s
		ORDER BY date %s
		LIMIT $%d OFFSET $%d
	`, dayColumns, baseWhere, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := max(filter.Page, 1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance days: %w", err)
	}
	defer rows.Close()

	days, err := collectDays(rows)
	if err != nil {
		return nil, 0, err
	}

	return days, total, nil
}

// Upsert implements attendance.DayRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_days (
			id, organization_id, employee_id, date,
			check_in, check_in_latitude, check_in_longitude,
			check_out, check_out_latitude, check_out_longitude,
			status, device_id, work_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (organization_id, employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_in_latitude = EXCLUDED.check_in_latitude,
			check_in_longitude = EXCLUDED.check_in_longitude,
			check_out = EXCLUDED.check_out,
			check_out_latitude = EXCLUDED.check_out_latitude,
			check_out_longitude = EXCLUDED.check_out_longitude,
			status = EXCLUDED.status,
			device_id = EXCLUDED.device_id,
			work_minutes = EXCLUDED.work_minutes,
			updated_at = NOW()
		RETURNING ` + dayColumns

	inLat, inLng := pointArgs(day.CheckInLocation)
	outLat, outLng := pointArgs(day.CheckOutLocation)
	saved, err := scanDay(q.QueryRow(ctx, query,
		day.ID, day.OrganizationID, day.EmployeeID, day.Date,
		day.CheckIn, inLat, inLng,
		day.CheckOut, outLat, outLng,
		string(day.Status), day.DeviceID, day.WorkMinutes,
	))
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to upsert attendance day: %w", err)
	}

	return saved, nil
}

func NewAttendanceRepository(db *database.DB) attendance.DayRepository {
	return &attendanceRepository{db: db}
}
