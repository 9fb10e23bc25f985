package attendance

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	DeviceID  *string  `json:"device_id,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validateLocation(r.Latitude, r.Longitude, r.DeviceID)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lng"`
	DeviceID  *string  `json:"device_id,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validateLocation(r.Latitude, r.Longitude, r.DeviceID)
}

func validateLocation(lat, lng *float64, deviceID *string) error {
	var errs validator.ValidationErrors

	if lat == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat is required",
		})
	} else if !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}

	if lng == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng is required",
		})
	} else if !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "lng",
			Message: "lng must be between -180 and 180",
		})
	}

	if deviceID != nil && len(*deviceID) > 128 {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id must not exceed 128 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GeofenceResponse struct {
	Message        string `json:"message"`
	DistanceMeters int64  `json:"distance_meters"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ========================================
// RECORD DTOs
// ========================================

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	Date              string   `json:"date"`
	CheckIn           *string  `json:"check_in,omitempty"`
	CheckOut          *string  `json:"check_out,omitempty"`
	CheckInLatitude   *float64 `json:"check_in_lat,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_lng,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_lat,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_lng,omitempty"`
	Status            Status   `json:"status"`
	DeviceID          *string  `json:"device_id,omitempty"`
	WorkMinutes       *int     `json:"work_minutes,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type BreakResponse struct {
	ID         string  `json:"id"`
	BreakStart string  `json:"break_start"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

// TodayResponse is today's record merged with the daily aggregates.
type TodayResponse struct {
	AttendanceResponse
	WorkMinutes  int             `json:"work_minutes"`
	BreakMinutes int             `json:"break_minutes"`
	ActiveBreak  bool            `json:"active_break"`
	Breaks       []BreakResponse `json:"breaks"`
}

type HistoryItemResponse struct {
	AttendanceResponse
	WorkMinutes  int  `json:"work_minutes"`
	BreakMinutes int  `json:"break_minutes"`
	ActiveBreak  bool `json:"active_break"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                 `json:"total_count"`
	Page        int                   `json:"page"`
	Limit       int                   `json:"limit"`
	TotalPages  int                   `json:"total_pages"`
	Showing     string                `json:"showing"`
	Attendances []HistoryItemResponse `json:"attendances"`
}

// ========================================
// CALENDAR & ANALYTICS DTOs
// ========================================

type MonthRequest struct {
	Year  string `json:"year"`
	Month string `json:"month"`

	year  int
	month time.Month
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	} else if y, ok := parseYear(r.Year); !ok {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number between 1970 and 9999"})
	} else {
		r.year = y
	}

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	} else if m, ok := parseMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number between 1 and 12"})
	} else {
		r.month = m
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// YearMonth returns the parsed values; only meaningful after Validate succeeds.
func (r MonthRequest) YearMonth() (int, time.Month) {
	return r.year, r.month
}

// AnalyticsRequest selects the analysed month. Empty fields default to the current month.
type AnalyticsRequest struct {
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`

	year  int
	month time.Month
}

func (r *AnalyticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Year) {
		if y, ok := parseYear(r.Year); ok {
			r.year = y
		} else {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number between 1970 and 9999"})
		}
	}

	if !validator.IsEmpty(r.Month) {
		if m, ok := parseMonth(r.Month); ok {
			r.month = m
		} else {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number between 1 and 12"})
		}
	}

	if (r.year == 0) != (r.month == 0) && len(errs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "year and month must be provided together"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// YearMonth returns the parsed values, zero when the caller asked for the current month.
func (r AnalyticsRequest) YearMonth() (int, time.Month) {
	return r.year, r.month
}

func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 1970 || y > 9999 {
		return 0, false
	}
	return y, true
}

func parseMonth(s string) (time.Month, bool) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return time.Month(m), true
}

type CalendarDayResponse struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type DailyHoursResponse struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type AnalyticsResponse struct {
	TotalHours     float64              `json:"total_hours"`
	OvertimeHours  float64              `json:"overtime_hours"`
	LateArrivals   int                  `json:"late_arrivals"`
	EarlyCheckouts int                  `json:"early_checkouts"`
	BestStreak     int                  `json:"best_streak"`
	WorstStreak    int                  `json:"worst_streak"`
	DailyHours     []DailyHoursResponse `json:"daily_hours"`
}

// ========================================
// HISTORY FILTER
// ========================================

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortOrder string `json:"sort_order"` // asc, desc (by date)
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		if _, err := ParseStatus(*f.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: " + statusList(),
			})
		}
	}

	var start, end time.Time
	if f.StartDate != nil && *f.StartDate != "" {
		d, valid := validator.IsValidDate(*f.StartDate)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		start = d
	}

	if f.EndDate != nil && *f.EndDate != "" {
		d, valid := validator.IsValidDate(*f.EndDate)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		end = d
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // newest first
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// MANUAL ENTRY
// ========================================

// ManualEntryRequest lets a manager or owner write an employee's day with
// arbitrary fields, e.g. when the employee forgot to check out.
type ManualEntryRequest struct {
	EmployeeID        string   `json:"employee_id"`
	Date              string   `json:"date"`               // YYYY-MM-DD
	CheckIn           *string  `json:"check_in,omitempty"` // RFC3339
	CheckOut          *string  `json:"check_out,omitempty"`
	CheckInLatitude   *float64 `json:"check_in_lat,omitempty"`
	CheckInLongitude  *float64 `json:"check_in_lng,omitempty"`
	CheckOutLatitude  *float64 `json:"check_out_lat,omitempty"`
	CheckOutLongitude *float64 `json:"check_out_lng,omitempty"`
	Status            string   `json:"status"`
	DeviceID          *string  `json:"device_id,omitempty"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + statusList(),
		})
	}

	var checkIn, checkOut time.Time
	if r.CheckIn != nil {
		t, valid := validator.IsValidDateTime(*r.CheckIn)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp with timezone",
			})
		}
		checkIn = t
	}

	if r.CheckOut != nil {
		t, valid := validator.IsValidDateTime(*r.CheckOut)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp with timezone",
			})
		}
		checkOut = t
	}

	if r.CheckOut != nil && r.CheckIn == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in is required when check_out is set",
		})
	}

	if !checkIn.IsZero() && !checkOut.IsZero() && checkOut.Before(checkIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must not be before check_in",
		})
	}

	errs = append(errs, validateOptionalPoint("check_in", r.CheckInLatitude, r.CheckInLongitude)...)
	errs = append(errs, validateOptionalPoint("check_out", r.CheckOutLatitude, r.CheckOutLongitude)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateOptionalPoint(prefix string, lat, lng *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if (lat == nil) != (lng == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_lat",
			Message: prefix + "_lat and " + prefix + "_lng must be provided together",
		})
		return errs
	}
	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_lat",
			Message: prefix + "_lat must be between -90 and 90",
		})
	}
	if lng != nil && !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + "_lng",
			Message: prefix + "_lng must be between -180 and 180",
		})
	}
	return errs
}

func statusList() string {
	names := make([]string, 0, len(allStatuses))
	for _, s := range allStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
