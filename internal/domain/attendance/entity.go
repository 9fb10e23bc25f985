package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
)

// Day is one attendance record per (organization, employee, date).
// Date is the local calendar day at midnight UTC; CheckIn and CheckOut are
// absolute instants.
type Day struct {
	ID               string
	OrganizationID   string
	EmployeeID       string
	Date             time.Time
	CheckIn          *time.Time
	CheckInLocation  *geo.Point
	CheckOut         *time.Time
	CheckOutLocation *geo.Point
	Status           Status
	DeviceID         *string
	WorkMinutes      *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// State derives the state machine position from the stored row.
func (d *Day) State() DayState {
	switch {
	case d == nil:
		return StateNotStarted
	case d.CheckOut != nil:
		return StateCheckedOut
	case d.CheckIn != nil:
		return StateCheckedIn
	default:
		// manual entries may create a row without a check-in
		return StateNotStarted
	}
}

// DayState is the position of a day in the check-in/check-out lifecycle.
type DayState int

const (
	StateNotStarted DayState = iota
	StateCheckedIn
	StateCheckedOut
)

func (s DayState) String() string {
	switch s {
	case StateCheckedIn:
		return "checked_in"
	case StateCheckedOut:
		return "checked_out"
	default:
		return "not_started"
	}
}

// Break is a rest interval inside a checked-in day. End is nil while open.
type Break struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	Date           time.Time
	Start          time.Time
	End            *time.Time
	CreatedAt      time.Time
}

func (b Break) IsOpen() bool {
	return b.End == nil
}

// DateOf truncates t to its calendar day in loc and returns it as midnight UTC,
// which is how dates are stored and compared.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
