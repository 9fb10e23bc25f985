package organization

import "github.com/cmlabs-hris/hris-attendance-go/internal/pkg/geo"

// OfficeLocation is the registered office of an organization used as the
// geofence center. RadiusMeters is nil when the organization uses the default.
type OfficeLocation struct {
	OrganizationID string   `json:"organization_id"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	RadiusMeters   *float64 `json:"radius_meters,omitempty"`
}

// Point returns the office as a validated point. A location with missing or
// out-of-range coordinates yields ErrOfficeLocationInvalid.
func (o OfficeLocation) Point() (geo.Point, error) {
	if o.Latitude == nil || o.Longitude == nil {
		return geo.Point{}, ErrOfficeLocationInvalid
	}
	p := geo.Point{Latitude: *o.Latitude, Longitude: *o.Longitude}
	if err := p.Validate(); err != nil {
		return geo.Point{}, ErrOfficeLocationInvalid
	}
	return p, nil
}

// Radius returns the organization's radius or fallback when none is set.
func (o OfficeLocation) Radius(fallback float64) float64 {
	if o.RadiusMeters != nil && *o.RadiusMeters > 0 {
		return *o.RadiusMeters
	}
	return fallback
}
