package branch

import "time"

// Branch is a named geofence. AllowedIPs optionally whitelists client
// addresses that may check in from outside the GPS radius.
type Branch struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	AllowedIPs   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AllowsIP reports whether the client address is on the branch
// allow-list. An empty list allows nothing through this path.
func (b Branch) AllowsIP(ip string) bool {
	for _, allowed := range b.AllowedIPs {
		if allowed == ip {
			return true
		}
	}
	return false
}
