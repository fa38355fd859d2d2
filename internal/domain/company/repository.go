package company

import "context"

type CompanyRepository interface {
	Get(ctx context.Context) (Company, error)
	UpdateLocation(ctx context.Context, id string, lat, lon, radius float64) error
}
