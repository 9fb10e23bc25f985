package organization

import "context"

// OfficeLocationRepository resolves an organization's office.
type OfficeLocationRepository interface {
	// GetByOrganizationID returns ErrOfficeLocationNotFound when no office is registered.
	GetByOrganizationID(ctx context.Context, organizationID string) (OfficeLocation, error)
}
