package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Clock is the time source of the service.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type AttendanceServiceImpl struct {
	tx            database.Transactor
	days          attendance.DayRepository
	breaks        attendance.BreakRepository
	offices       organization.OfficeLocationRepository
	leaves        leave.RangeRepository
	policy        attendance.ShiftPolicy
	defaultRadius float64
	clock         Clock
}

// session is the identity the core trusts from the verified token.
type session struct {
	userID         string
	organizationID string
	employeeID     string
	role           user.Role
}

func sessionFromContext(ctx context.Context) (session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return session{}, fmt.Errorf("%w: %v", attendance.ErrSessionClaimsMissing, err)
	}

	var s session
	var ok bool
	if s.organizationID, ok = claims["company_id"].(string); !ok || s.organizationID == "" {
		return session{}, fmt.Errorf("%w: company_id", attendance.ErrSessionClaimsMissing)
	}
	if s.employeeID, ok = claims["employee_id"].(string); !ok || s.employeeID == "" {
		return session{}, fmt.Errorf("%w: employee_id", attendance.ErrSessionClaimsMissing)
	}
	s.userID, _ = claims["user_id"].(string)
	role, _ := claims["role"].(string)
	s.role = user.Role(role)

	return s, nil
}

func (a *AttendanceServiceImpl) formatTime(t time.Time) string {
	return t.In(a.policy.Location).Format(time.RFC3339)
}

func (a *AttendanceServiceImpl) formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := a.formatTime(*t)
	return &s
}

// checkGeofence resolves the organization's office and evaluates probe
// against it. A missing or unusable office location always fails.
func (a *AttendanceServiceImpl) checkGeofence(ctx context.Context, organizationID string, probe geo.Point) (geo.Result, error) {
	office, err := a.offices.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, organization.ErrOfficeLocationNotFound) {
			slog.WarnContext(ctx, "office location not configured", "organization_id", organizationID)
			return geo.Result{}, attendance.ErrOfficeLocationMissing
		}
		return geo.Result{}, fmt.Errorf("failed to get office location: %w", err)
	}

	center, err := office.Point()
	if err != nil {
		slog.WarnContext(ctx, "office location has invalid coordinates", "organization_id", organizationID)
		return geo.Result{}, attendance.ErrOfficeLocationMissing
	}

	radius := office.Radius(a.defaultRadius)
	result, err := geo.Evaluate(center, probe, radius)
	if err != nil {
		return geo.Result{}, err
	}
	if !result.WithinRadius {
		return result, &attendance.OutsideGeofenceError{
			DistanceMeters: result.DistanceMeters,
			RadiusMeters:   radius,
		}
	}

	return result, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GeofenceResponse{}, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.GeofenceResponse{}, err
	}

	now := a.clock.Now()
	date := a.policy.Today(now)

	// CreateCheckIn's ON CONFLICT insert is the real guard; this read only
	// rejects early before the geofence lookup.
	existing, err := a.days.GetByEmployeeAndDate(ctx, s.organizationID, s.employeeID, date)
	if err != nil {
		return attendance.GeofenceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.GeofenceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	probe := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	result, err := a.checkGeofence(ctx, s.organizationID, probe)
	if err != nil {
		return attendance.GeofenceResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.GeofenceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	_, err = a.days.CreateCheckIn(ctx, attendance.Day{
		ID:              id.String(),
		OrganizationID:  s.organizationID,
		EmployeeID:      s.employeeID,
		Date:            date,
		CheckIn:         &now,
		CheckInLocation: &probe,
		Status:          attendance.StatusPresent,
		DeviceID:        req.DeviceID,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.GeofenceResponse{}, err
		}
		return attendance.GeofenceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.GeofenceResponse{
		Message:        "Checked in successfully",
		DistanceMeters: geo.RoundMeters(result.DistanceMeters),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GeofenceResponse{}, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.GeofenceResponse{}, err
	}

	now := a.clock.Now()
	date := a.policy.Today(now)

	day, err := a.days.GetByEmployeeAndDate(ctx, s.organizationID, s.employeeID, date)
	if err != nil {
		return attendance.GeofenceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	switch day.State() {
	case attendance.StateNotStarted:
		return attendance.GeofenceResponse{}, attendance.ErrNotCheckedIn
	case attendance.StateCheckedOut:
		return attendance.GeofenceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	probe := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	result, err := a.checkGeofence(ctx, s.organizationID, probe)
	if err != nil {
		return attendance.GeofenceResponse{}, err
	}

	closed := *day
	closed.CheckOut = &now
	closed.CheckOutLocation = &probe
	if req.DeviceID != nil {
		closed.DeviceID = req.DeviceID
	}

	// The reads above only pick the error; CloseCheckOut's
	// UPDATE ... WHERE check_out IS NULL is what enforces the transition.
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		// A break still open at check-out ends with the day.
		_, err := a.breaks.CloseActive(txCtx, s.organizationID, s.employeeID, date, now)
		if err != nil && !errors.Is(err, attendance.ErrNoActiveBreak) {
			return fmt.Errorf("failed to close open break: %w", err)
		}

		breaks, err := a.breaks.ListByDay(txCtx, s.organizationID, s.employeeID, date)
		if err != nil {
			return fmt.Errorf("failed to list breaks: %w", err)
		}

		workMinutes := Aggregate(&closed, breaks, now).WorkMinutes()
		closed.WorkMinutes = &workMinutes

		if _, err := a.days.CloseCheckOut(txCtx, closed); err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
				return err
			}
			return fmt.Errorf("failed to close attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.GeofenceResponse{}, err
	}

	return attendance.GeofenceResponse{
		Message:        "Checked out successfully",
		DistanceMeters: geo.RoundMeters(result.DistanceMeters),
	}, nil
}

// BreakStart implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakStart(ctx context.Context) (attendance.MessageResponse, error) {
	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.MessageResponse{}, err
	}

	now := a.clock.Now()
	date := a.policy.Today(now)

	day, err := a.days.GetByEmployeeAndDate(ctx, s.organizationID, s.employeeID, date)
	if err != nil {
		return attendance.MessageResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	switch day.State() {
	case attendance.StateNotStarted:
		return attendance.MessageResponse{}, attendance.ErrNotCheckedIn
	case attendance.StateCheckedOut:
		return attendance.MessageResponse{}, attendance.ErrAlreadyCheckedOut
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.MessageResponse{}, fmt.Errorf("failed to generate break id: %w", err)
	}

	_, err = a.breaks.Open(ctx, attendance.Break{
		ID:             id.String(),
		OrganizationID: s.organizationID,
		EmployeeID:     s.employeeID,
		Date:           date,
		Start:          now,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrBreakAlreadyActive) {
			return attendance.MessageResponse{}, err
		}
		return attendance.MessageResponse{}, fmt.Errorf("failed to start break: %w", err)
	}

	return attendance.MessageResponse{Message: "Break started"}, nil
}

// BreakEnd implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakEnd(ctx context.Context) (attendance.MessageResponse, error) {
	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.MessageResponse{}, err
	}

	now := a.clock.Now()
	date := a.policy.Today(now)

	if _, err := a.breaks.CloseActive(ctx, s.organizationID, s.employeeID, date, now); err != nil {
		if errors.Is(err, attendance.ErrNoActiveBreak) {
			return attendance.MessageResponse{}, err
		}
		return attendance.MessageResponse{}, fmt.Errorf("failed to end break: %w", err)
	}

	return attendance.MessageResponse{Message: "Break ended"}, nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.TodayResponse, error) {
	s, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	date := a.policy.Today(now)

	day, err := a.days.GetByEmployeeAndDate(ctx, s.organizationID, s.employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if day == nil {
		return nil, nil
	}

	breaks, err := a.breaks.ListByDay(ctx, s.organizationID, s.employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}

	summary := Aggregate(day, breaks, now)

	breakResponses := make([]attendance.BreakResponse, 0, len(breaks))
	for _, b := range breaks {
		breakResponses = append(breakResponses, attendance.BreakResponse{
			ID:         b.ID,
			BreakStart: a.formatTime(b.Start),
			BreakEnd:   a.formatTimePtr(b.End),
		})
	}

	return &attendance.TodayResponse{
		AttendanceResponse: a.mapDayToResponse(*day),
		WorkMinutes:        summary.WorkMinutes(),
		BreakMinutes:       summary.BreakMinutes(),
		ActiveBreak:        summary.ActiveBreak,
		Breaks:             breakResponses,
	}, nil
}

// GetMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonth(ctx context.Context, req attendance.MonthRequest) ([]attendance.CalendarDayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	year, month := req.YearMonth()
	from, to, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	var days []attendance.Day
	var leaves []leave.Range

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		days, err = a.days.ListByRange(gCtx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list attendance days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = a.leaves.ListApproved(gCtx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	calendar, err := BuildMonth(s.employeeID, year, month, days, leaves)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.CalendarDayResponse, 0, len(calendar))
	for _, c := range calendar {
		result = append(result, attendance.CalendarDayResponse{
			Date:   c.Date.Format("2006-01-02"),
			Status: c.Status,
		})
	}

	return result, nil
}

// GetAnalytics implements attendance.AttendanceService.
// Days after today are left out so an unfinished month does not count future
// days as absent.
func (a *AttendanceServiceImpl) GetAnalytics(ctx context.Context, req attendance.AnalyticsRequest) (attendance.AnalyticsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	now := a.clock.Now()
	today := a.policy.Today(now)

	year, month := req.YearMonth()
	if year == 0 {
		year, month = today.Year(), today.Month()
	}
	from, to, err := MonthBounds(year, month)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	var days []attendance.Day
	var breaks []attendance.Break
	var leaves []leave.Range

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		days, err = a.days.ListByRange(gCtx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list attendance days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		breaks, err = a.breaks.ListByRange(gCtx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list breaks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = a.leaves.ListApproved(gCtx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	calendar, err := BuildMonth(s.employeeID, year, month, days, leaves)
	if err != nil {
		return attendance.AnalyticsResponse{}, err
	}

	breaksByDate := groupBreaks(breaks)
	metrics := make([]DayMetrics, 0, len(calendar))
	for _, c := range calendar {
		if c.Date.After(today) {
			break
		}
		metrics = append(metrics, DayMetrics{
			Date:    c.Date,
			Status:  c.Status,
			Day:     c.Day,
			Summary: Aggregate(c.Day, breaksByDate[c.Date], a.measureUntil(c.Date, today, now)),
		})
	}

	return Analyze(metrics, a.policy).Response(), nil
}

// measureUntil bounds a day that was never checked out. Today runs up to now,
// earlier days up to the end of their own calendar day.
func (a *AttendanceServiceImpl) measureUntil(date, today, now time.Time) time.Time {
	if date.Equal(today) {
		return now
	}
	next := date.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, a.policy.Location)
}

func groupBreaks(breaks []attendance.Break) map[time.Time][]attendance.Break {
	grouped := make(map[time.Time][]attendance.Break)
	for _, b := range breaks {
		grouped[b.Date] = append(grouped[b.Date], b)
	}
	return grouped
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	days, total, err := a.days.List(ctx, s.organizationID, s.employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	breaksByDate := map[time.Time][]attendance.Break{}
	if len(days) > 0 {
		from, to := days[0].Date, days[0].Date
		for _, d := range days[1:] {
			if d.Date.Before(from) {
				from = d.Date
			}
			if d.Date.After(to) {
				to = d.Date
			}
		}
		breaks, err := a.breaks.ListByRange(ctx, s.organizationID, s.employeeID, from, to)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list breaks: %w", err)
		}
		breaksByDate = groupBreaks(breaks)
	}

	now := a.clock.Now()
	today := a.policy.Today(now)

	// Map to response
	responses := make([]attendance.HistoryItemResponse, 0, len(days))
	for i := range days {
		summary := Aggregate(&days[i], breaksByDate[days[i].Date], a.measureUntil(days[i].Date, today, now))
		responses = append(responses, attendance.HistoryItemResponse{
			AttendanceResponse: a.mapDayToResponse(days[i]),
			WorkMinutes:        summary.WorkMinutes(),
			BreakMinutes:       summary.BreakMinutes(),
			ActiveBreak:        summary.ActiveBreak,
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// ManualEntry implements attendance.AttendanceService.
// A manual check-out also closes a break left open on that day.
func (a *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s, err := sessionFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !user.HasPermission(s.role, user.PermissionAttendanceManage) {
		return attendance.AttendanceResponse{}, user.ErrManagerAccessRequired
	}

	day, err := manualEntryToDay(req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	day.OrganizationID = s.organizationID

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	day.ID = id.String()

	var saved attendance.Day
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if day.CheckOut != nil {
			_, err := a.breaks.CloseActive(txCtx, day.OrganizationID, day.EmployeeID, day.Date, *day.CheckOut)
			if err != nil && !errors.Is(err, attendance.ErrNoActiveBreak) {
				return fmt.Errorf("failed to close open break: %w", err)
			}

			breaks, err := a.breaks.ListByDay(txCtx, day.OrganizationID, day.EmployeeID, day.Date)
			if err != nil {
				return fmt.Errorf("failed to list breaks: %w", err)
			}
			workMinutes := Aggregate(&day, breaks, *day.CheckOut).WorkMinutes()
			day.WorkMinutes = &workMinutes
		}

		var err error
		saved, err = a.days.Upsert(txCtx, day)
		if err != nil {
			return fmt.Errorf("failed to save manual entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.InfoContext(ctx, "attendance manual entry saved",
		"organization_id", s.organizationID,
		"employee_id", saved.EmployeeID,
		"date", saved.Date.Format("2006-01-02"),
		"by_user_id", s.userID,
	)

	return a.mapDayToResponse(saved), nil
}

func manualEntryToDay(req attendance.ManualEntryRequest) (attendance.Day, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to parse date: %w", err)
	}
	status, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.Day{}, err
	}

	day := attendance.Day{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     status,
		DeviceID:   req.DeviceID,
	}
	if req.CheckIn != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckIn)
		if err != nil {
			return attendance.Day{}, fmt.Errorf("failed to parse check_in: %w", err)
		}
		day.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			return attendance.Day{}, fmt.Errorf("failed to parse check_out: %w", err)
		}
		day.CheckOut = &t
	}
	if req.CheckInLatitude != nil && req.CheckInLongitude != nil {
		day.CheckInLocation = &geo.Point{Latitude: *req.CheckInLatitude, Longitude: *req.CheckInLongitude}
	}
	if req.CheckOutLatitude != nil && req.CheckOutLongitude != nil {
		day.CheckOutLocation = &geo.Point{Latitude: *req.CheckOutLatitude, Longitude: *req.CheckOutLongitude}
	}

	return day, nil
}

// mapDayToResponse converts a Day entity to AttendanceResponse
func (a *AttendanceServiceImpl) mapDayToResponse(d attendance.Day) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		Date:        d.Date.Format("2006-01-02"),
		CheckIn:     a.formatTimePtr(d.CheckIn),
		CheckOut:    a.formatTimePtr(d.CheckOut),
		Status:      d.Status,
		DeviceID:    d.DeviceID,
		WorkMinutes: d.WorkMinutes,
		CreatedAt:   a.formatTime(d.CreatedAt),
		UpdatedAt:   a.formatTime(d.UpdatedAt),
	}
	if d.CheckInLocation != nil {
		resp.CheckInLatitude = &d.CheckInLocation.Latitude
		resp.CheckInLongitude = &d.CheckInLocation.Longitude
	}
	if d.CheckOutLocation != nil {
		resp.CheckOutLatitude = &d.CheckOutLocation.Latitude
		resp.CheckOutLongitude = &d.CheckOutLocation.Longitude
	}
	return resp
}

func NewAttendanceService(
	tx database.Transactor,
	dayRepo attendance.DayRepository,
	breakRepo attendance.BreakRepository,
	officeRepo organization.OfficeLocationRepository,
	leaveRepo leave.RangeRepository,
	policy attendance.ShiftPolicy,
	defaultRadiusMeters float64,
	clock Clock,
) attendance.AttendanceService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AttendanceServiceImpl{
		tx:            tx,
		days:          dayRepo,
		breaks:        breakRepo,
		offices:       officeRepo,
		leaves:        leaveRepo,
		policy:        policy,
		defaultRadius: defaultRadiusMeters,
		clock:         clock,
	}
}
