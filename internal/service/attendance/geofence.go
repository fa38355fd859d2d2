package attendance

import (
	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/branch"
	"github.com/staffdesk/backoffice-go/internal/domain/company"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/pkg/geo"
)

// resolveGeofence picks the fence that applies to a check-in attempt.
// Precedence, first match wins: supplied branch, employee work
// location, company default. Returns false when nothing is configured;
// the caller then rejects unless the client explicitly bypassed
// location checking.
func resolveGeofence(b *branch.Branch, emp employee.Employee, comp company.Company) (geo.Geofence, bool) {
	if b != nil {
		return geo.Geofence{
			Center:       geo.Point{Latitude: b.Latitude, Longitude: b.Longitude},
			RadiusMeters: b.RadiusMeters,
			Source:       "branch",
		}, true
	}

	if emp.HasWorkLocation() {
		return geo.Geofence{
			Center:       geo.Point{Latitude: *emp.WorkLatitude, Longitude: *emp.WorkLongitude},
			RadiusMeters: *emp.WorkRadius,
			Source:       "work",
		}, true
	}

	if comp.HasLocation() {
		return geo.Geofence{
			Center:       geo.Point{Latitude: *comp.LocationLat, Longitude: *comp.LocationLon},
			RadiusMeters: *comp.LocationRadius,
			Source:       "company",
		}, true
	}

	return geo.Geofence{}, false
}

// authorizeLocation applies the auth-method priority for a check-in:
// location inside the fence wins, then the branch IP allow-list, and
// bypass only when the client asked for it. A fence miss with no
// fallback returns OutOfRangeError with the measured distance.
func authorizeLocation(point geo.Point, fence geo.Geofence, haveFence bool, b *branch.Branch, clientIP string, bypass bool) (attendance.AuthMethod, error) {
	if bypass {
		return attendance.AuthBypass, nil
	}

	if !haveFence {
		return "", attendance.ErrNoGeofence
	}

	within, distance := fence.Check(point)
	if within {
		return attendance.AuthLocation, nil
	}

	if b != nil && clientIP != "" && b.AllowsIP(clientIP) {
		return attendance.AuthIP, nil
	}

	return "", &attendance.OutOfRangeError{
		DistanceMeters: distance,
		AllowedRadius:  fence.RadiusMeters,
		Source:         fence.Source,
	}
}
