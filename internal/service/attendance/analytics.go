package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// DayMetrics is one calendar day fed to Analyze. Day is nil when no row exists.
type DayMetrics struct {
	Date    time.Time
	Status  attendance.Status
	Day     *attendance.Day
	Summary DailySummary
}

// DailyHours is the worked time of one day at full precision.
type DailyHours struct {
	Date  time.Time
	Hours decimal.Decimal
}

// Analytics holds unrounded metrics; Response rounds them for presentation.
type Analytics struct {
	TotalHours     decimal.Decimal
	OvertimeHours  decimal.Decimal
	LateArrivals   int
	EarlyCheckouts int
	BestStreak     int
	WorstStreak    int
	DailyHours     []DailyHours
}

var secondsPerHour = decimal.NewFromInt(3600)

// Analyze derives totals, overtime, lateness and streaks from a date-ordered
// sequence. Present days extend the best streak and absent days the worst
// streak; any other status ends both runs without counting toward either.
func Analyze(days []DayMetrics, policy attendance.ShiftPolicy) Analytics {
	normal := decimal.NewFromFloat(policy.NormalWorkHoursPerDay).Mul(secondsPerHour)

	a := Analytics{DailyHours: make([]DailyHours, 0, len(days))}

	// Sums are kept in seconds and converted once at the end.
	total, overtime := decimal.Zero, decimal.Zero
	var presentRun, absentRun int
	for _, d := range days {
		worked := decimal.NewFromInt(int64(d.Summary.Work / time.Second))
		a.DailyHours = append(a.DailyHours, DailyHours{Date: d.Date, Hours: worked.Div(secondsPerHour)})
		total = total.Add(worked)
		if extra := worked.Sub(normal); extra.IsPositive() {
			overtime = overtime.Add(extra)
		}

		if d.Day != nil {
			if d.Day.CheckIn != nil && policy.IsLate(d.Date, *d.Day.CheckIn) {
				a.LateArrivals++
			}
			if d.Day.CheckOut != nil && policy.IsEarlyCheckout(d.Date, *d.Day.CheckOut) {
				a.EarlyCheckouts++
			}
		}

		switch d.Status {
		case attendance.StatusPresent:
			presentRun++
			absentRun = 0
		case attendance.StatusAbsent:
			absentRun++
			presentRun = 0
		default:
			presentRun, absentRun = 0, 0
		}
		a.BestStreak = max(a.BestStreak, presentRun)
		a.WorstStreak = max(a.WorstStreak, absentRun)
	}

	a.TotalHours = total.Div(secondsPerHour)
	a.OvertimeHours = overtime.Div(secondsPerHour)
	return a
}

// Response rounds every hour value to one decimal.
func (a Analytics) Response() attendance.AnalyticsResponse {
	daily := make([]attendance.DailyHoursResponse, 0, len(a.DailyHours))
	for _, d := range a.DailyHours {
		daily = append(daily, attendance.DailyHoursResponse{
			Date:  d.Date.Format("2006-01-02"),
			Hours: d.Hours.Round(1).InexactFloat64(),
		})
	}

	return attendance.AnalyticsResponse{
		TotalHours:     a.TotalHours.Round(1).InexactFloat64(),
		OvertimeHours:  a.OvertimeHours.Round(1).InexactFloat64(),
		LateArrivals:   a.LateArrivals,
		EarlyCheckouts: a.EarlyCheckouts,
		BestStreak:     a.BestStreak,
		WorstStreak:    a.WorstStreak,
		DailyHours:     daily,
	}
}
