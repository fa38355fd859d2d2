package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/backoffice-go/internal/domain/company"
	"github.com/staffdesk/backoffice-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// Get implements company.CompanyRepository.
// A deployment serves a single company, so the row is looked up without
// a key.
func (c *companyRepository) Get(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, location_lat, location_lon, location_radius, created_at, updated_at
		FROM companies
		LIMIT 1
	`

	var comp company.Company
	err := q.QueryRow(ctx, query).Scan(
		&comp.ID, &comp.Name,
		&comp.LocationLat, &comp.LocationLon, &comp.LocationRadius,
		&comp.CreatedAt, &comp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return comp, nil
}

// UpdateLocation implements company.CompanyRepository.
func (c *companyRepository) UpdateLocation(ctx context.Context, id string, lat, lon, radius float64) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies SET
			location_lat = $2, location_lon = $3, location_radius = $4,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, lat, lon, radius)
	if err != nil {
		return fmt.Errorf("failed to update company location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}
