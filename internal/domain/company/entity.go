package company

import "time"

// Company carries the fallback geofence used when neither a branch nor
// an employee-specific work location applies to a check-in.
type Company struct {
	ID             string
	Name           string
	LocationLat    *float64
	LocationLon    *float64
	LocationRadius *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasLocation reports whether the company default geofence is configured.
func (c Company) HasLocation() bool {
	return c.LocationLat != nil && c.LocationLon != nil && c.LocationRadius != nil
}
