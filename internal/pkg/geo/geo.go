package geo

import "math"

// earthRadiusMeters is the spherical-Earth radius used by the haversine
// formula.
const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Geofence is a circular area around a center coordinate. Source names
// where the fence came from (branch, employee work location, or the
// company default) and is surfaced in out-of-range error messages.
type Geofence struct {
	Center       Point
	RadiusMeters float64
	Source       string
}

// Distance returns the great-circle distance between two coordinates in
// meters, computed with the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Check reports whether p falls inside the fence and the measured
// distance to the fence center. A point exactly on the radius counts as
// inside; only a strictly greater distance is out of range.
func (g Geofence) Check(p Point) (bool, float64) {
	d := Distance(p.Latitude, p.Longitude, g.Center.Latitude, g.Center.Longitude)
	return d <= g.RadiusMeters, d
}

// ValidCoordinates reports whether lat/lon are real numbers inside the
// WGS84 value ranges.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
