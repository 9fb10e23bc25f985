package attendance

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS" (seconds are ignored).
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
}

// On returns the instant this clock time falls on for the given calendar date in loc.
func (c ClockTime) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, loc)
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ShiftPolicy is the process-wide shift configuration, loaded once at startup
// and passed explicitly to the state machine and analytics.
type ShiftPolicy struct {
	ShiftStart            ClockTime
	ShiftEnd              ClockTime
	LateToleranceMinutes  int
	EarlyToleranceMinutes int
	NormalWorkHoursPerDay float64
	Location              *time.Location
}

func (p ShiftPolicy) Validate() error {
	if p.ShiftEnd.minutes() <= p.ShiftStart.minutes() {
		return fmt.Errorf("shift end %s must be after shift start %s", p.ShiftEnd, p.ShiftStart)
	}
	if p.LateToleranceMinutes < 0 {
		return fmt.Errorf("late tolerance must not be negative")
	}
	if p.EarlyToleranceMinutes < 0 {
		return fmt.Errorf("early tolerance must not be negative")
	}
	if p.NormalWorkHoursPerDay <= 0 || p.NormalWorkHoursPerDay > 24 {
		return fmt.Errorf("normal work hours per day must be in (0, 24]")
	}
	if p.Location == nil {
		return fmt.Errorf("shift timezone is required")
	}
	return nil
}

// IsLate reports whether checkIn is after shift start plus the late tolerance
// on the given calendar date.
func (p ShiftPolicy) IsLate(date time.Time, checkIn time.Time) bool {
	limit := p.ShiftStart.On(date, p.Location).Add(time.Duration(p.LateToleranceMinutes) * time.Minute)
	return checkIn.After(limit)
}

// IsEarlyCheckout reports whether checkOut is before shift end minus the early
// tolerance on the given calendar date.
func (p ShiftPolicy) IsEarlyCheckout(date time.Time, checkOut time.Time) bool {
	limit := p.ShiftEnd.On(date, p.Location).Add(-time.Duration(p.EarlyToleranceMinutes) * time.Minute)
	return checkOut.Before(limit)
}

// Today returns the current calendar date in the policy's timezone.
func (p ShiftPolicy) Today(now time.Time) time.Time {
	return DateOf(now, p.Location)
}
