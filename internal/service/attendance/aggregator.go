package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
)

// DailySummary is the read-time derivation of one attendance day.
type DailySummary struct {
	Work        time.Duration
	Break       time.Duration
	ActiveBreak bool
}

// WorkMinutes returns worked time in whole minutes, floored.
func (s DailySummary) WorkMinutes() int {
	return int(s.Work / time.Minute)
}

// BreakMinutes returns closed break time in whole minutes, floored.
func (s DailySummary) BreakMinutes() int {
	return int(s.Break / time.Minute)
}

// Aggregate computes worked and break time for a day. An open break adds
// nothing to Break but sets ActiveBreak. An open day is measured up to now.
// Work never goes below zero.
func Aggregate(day *attendance.Day, breaks []attendance.Break, now time.Time) DailySummary {
	var s DailySummary

	for _, b := range breaks {
		if b.IsOpen() {
			s.ActiveBreak = true
			continue
		}
		if d := b.End.Sub(b.Start); d > 0 {
			s.Break += d
		}
	}

	if day == nil || day.CheckIn == nil {
		return s
	}

	end := now
	if day.CheckOut != nil {
		end = *day.CheckOut
	}

	work := end.Sub(*day.CheckIn) - s.Break
	if work < 0 {
		work = 0
	}
	s.Work = work

	return s
}
