package leave

import "time"

// Range is an approved leave for one employee. StartDate and EndDate are
// calendar dates at midnight UTC and both ends are inclusive.
type Range struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
}

// Overlaps reports whether date falls inside the range.
func (r Range) Overlaps(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
