package leave

import (
	"context"
	"time"
)

// RangeRepository reads approved leave ranges from leave_requests.
type RangeRepository interface {
	// ListApproved returns approved ranges of the employee that intersect [from, to].
	ListApproved(ctx context.Context, organizationID, employeeID string, from, to time.Time) ([]Range, error)
}
