package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type officeLocationRepository struct {
	db *database.DB
}

// GetByOrganizationID implements organization.OfficeLocationRepository.
func (r *officeLocationRepository) GetByOrganizationID(ctx context.Context, organizationID string) (organization.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT organization_id, latitude, longitude, radius_meters
		FROM organization_offices
		WHERE organization_id = $1
	`

	var o organization.OfficeLocation
	err := q.QueryRow(ctx, query, organizationID).Scan(&o.OrganizationID, &o.Latitude, &o.Longitude, &o.RadiusMeters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.OfficeLocation{}, organization.ErrOfficeLocationNotFound
		}
		return organization.OfficeLocation{}, fmt.Errorf("failed to get office location: %w", err)
	}

	return o, nil
}

func NewOfficeLocationRepository(db *database.DB) organization.OfficeLocationRepository {
	return &officeLocationRepository{db: db}
}
