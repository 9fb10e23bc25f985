package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The acting employee and organization are taken from the session in ctx.
type AttendanceService interface {
	// CheckIn opens today's attendance day after validating the geofence
	CheckIn(ctx context.Context, req CheckInRequest) (GeofenceResponse, error)

	// CheckOut closes today's attendance day after validating the geofence
	CheckOut(ctx context.Context, req CheckOutRequest) (GeofenceResponse, error)

	BreakStart(ctx context.Context) (MessageResponse, error)
	BreakEnd(ctx context.Context) (MessageResponse, error)

	// GetToday returns today's record merged with its aggregates, or nil
	GetToday(ctx context.Context) (*TodayResponse, error)

	// GetMonth returns one status per calendar day of the requested month
	GetMonth(ctx context.Context, req MonthRequest) ([]CalendarDayResponse, error)

	// GetAnalytics derives totals, overtime, lateness and streaks for a month
	GetAnalytics(ctx context.Context, req AnalyticsRequest) (AnalyticsResponse, error)

	// GetMyAttendance retrieves paginated attendance history for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ManualEntry overwrites an employee's day (manager/owner) - for fixing wrong data
	ManualEntry(ctx context.Context, req ManualEntryRequest) (AttendanceResponse, error)
}
