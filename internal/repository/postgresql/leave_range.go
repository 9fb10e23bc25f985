package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
)

type leaveRangeRepository struct {
	db *database.DB
}

// ListApproved implements leave.RangeRepository.
func (r *leaveRangeRepository) ListApproved(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]leave.Range, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date
		FROM leave_requests
		WHERE organization_id = $1 AND employee_id = $2
		  AND status = 'approved'
		  AND start_date <= $4 AND end_date >= $3
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, organizationID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leaves: %w", err)
	}
	defer rows.Close()

	var ranges []leave.Range
	for rows.Next() {
		var lr leave.Range
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan leave range: %w", err)
		}
		ranges = append(ranges, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave ranges: %w", err)
	}

	return ranges, nil
}

func NewLeaveRangeRepository(db *database.DB) leave.RangeRepository {
	return &leaveRangeRepository{db: db}
}
