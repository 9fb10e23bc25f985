package attendance

import "fmt"

// Status is the closed set of day statuses shared by check-in, the monthly
// calendar and analytics.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusWeekend Status = "weekend"
	StatusHoliday Status = "holiday"
	StatusHalfDay Status = "half_day"
	StatusLate    Status = "late"
)

var allStatuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLeave,
	StatusWeekend,
	StatusHoliday,
	StatusHalfDay,
	StatusLate,
}

// ParseStatus converts a stored or user-supplied value into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string {
	return string(s)
}
