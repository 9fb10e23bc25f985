package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
)

// CalendarDay is one resolved day of a month. Day is nil when no row exists.
type CalendarDay struct {
	Date   time.Time
	Status attendance.Status
	Day    *attendance.Day
}

// MonthBounds returns the first and last calendar date of the month at midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time, error) {
	if year < 1970 || year > 9999 || month < time.January || month > time.December {
		return time.Time{}, time.Time{}, attendance.ErrInvalidMonth
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// BuildMonth resolves a status for every day of the month, in order.
// Priority: approved leave, then the recorded status, then weekend, then absent.
// Rows and leaves of other employees are ignored.
func BuildMonth(employeeID string, year int, month time.Month, days []attendance.Day, leaves []leave.Range) ([]CalendarDay, error) {
	first, last, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]*attendance.Day, len(days))
	for i := range days {
		if days[i].EmployeeID != employeeID {
			continue
		}
		byDate[days[i].Date] = &days[i]
	}

	ownLeaves := make([]leave.Range, 0, len(leaves))
	for _, l := range leaves {
		if l.EmployeeID == employeeID {
			ownLeaves = append(ownLeaves, l)
		}
	}

	result := make([]CalendarDay, 0, last.Day())
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		row := byDate[date]
		result = append(result, CalendarDay{
			Date:   date,
			Status: resolveStatus(date, row, ownLeaves),
			Day:    row,
		})
	}

	return result, nil
}

func resolveStatus(date time.Time, row *attendance.Day, leaves []leave.Range) attendance.Status {
	for _, l := range leaves {
		if l.Overlaps(date) {
			return attendance.StatusLeave
		}
	}
	if row != nil {
		return row.Status
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return attendance.StatusWeekend
	}
	return attendance.StatusAbsent
}
