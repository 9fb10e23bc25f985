package attendance

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"
)

// Attendance domain errors
var (
	// State conflicts
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNotCheckedIn       = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut  = errors.New("you have already checked out")
	ErrBreakAlreadyActive = errors.New("a break is already active")
	ErrNoActiveBreak      = errors.New("no active break to end")

	// Tenant configuration
	ErrOfficeLocationMissing = errors.New("office location is not configured for this organization")

	// Input
	ErrInvalidMonth = errors.New("invalid year or month")

	// General errors
	ErrUnknownStatus        = errors.New("unknown attendance status")
	ErrCorruptRecord        = errors.New("attendance record failed validation")
	ErrSessionClaimsMissing = errors.New("session claims are missing or invalid")
)

// OutsideGeofenceError is returned when the probe lies outside the office radius.
type OutsideGeofenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("you are outside the allowed radius: %dm from office (allowed %dm)",
		geo.RoundMeters(e.DistanceMeters), geo.RoundMeters(e.RadiusMeters))
}
