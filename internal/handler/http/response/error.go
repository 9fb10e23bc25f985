package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var outside *attendance.OutsideGeofenceError
	if errors.As(err, &outside) {
		Error(w, http.StatusBadRequest, "OUTSIDE_GEOFENCE", outside.Error(), map[string]any{
			"distance_meters": geo.RoundMeters(outside.DistanceMeters),
			"radius_meters":   geo.RoundMeters(outside.RadiusMeters),
		})
		return
	}

	switch {
	// Attendance state conflicts
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Error(w, http.StatusBadRequest, "ALREADY_CHECKED_IN", err.Error(), nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Error(w, http.StatusBadRequest, "NOT_CHECKED_IN", err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Error(w, http.StatusBadRequest, "ALREADY_CHECKED_OUT", err.Error(), nil)
	case errors.Is(err, attendance.ErrBreakAlreadyActive):
		Error(w, http.StatusBadRequest, "BREAK_ALREADY_ACTIVE", err.Error(), nil)
	case errors.Is(err, attendance.ErrNoActiveBreak):
		Error(w, http.StatusBadRequest, "NO_ACTIVE_BREAK", err.Error(), nil)

	// Attendance input errors
	case errors.Is(err, attendance.ErrInvalidMonth):
		Error(w, http.StatusBadRequest, "INVALID_MONTH", err.Error(), nil)
	case errors.Is(err, geo.ErrInvalidCoordinates):
		Error(w, http.StatusBadRequest, "INVALID_COORDINATES", "Invalid coordinates", nil)

	// Tenant misconfiguration
	case errors.Is(err, attendance.ErrOfficeLocationMissing):
		Error(w, http.StatusInternalServerError, "OFFICE_LOCATION_MISSING", err.Error(), nil)

	// Session and role errors
	case errors.Is(err, attendance.ErrSessionClaimsMissing),
		errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrCompanyIDRequired),
		errors.Is(err, user.ErrEmployeeIDRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
