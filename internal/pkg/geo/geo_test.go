package geo

import (
	"math"
	"testing"
)

// one degree of latitude under the spherical model used by Distance
const metersPerDegreeLat = earthRadiusMeters * math.Pi / 180

func TestDistanceIdentity(t *testing.T) {
	if d := Distance(-6.2088, 106.8456, -6.2088, 106.8456); d != 0 {
		t.Errorf("Distance(a, a) = %v, want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{-6.2088, 106.8456, -6.9175, 107.6191},
		{0, 0, 45, 90},
		{51.5074, -0.1278, 40.7128, -74.0060},
	}
	for _, c := range cases {
		ab := Distance(c.lat1, c.lon1, c.lat2, c.lon2)
		ba := Distance(c.lat2, c.lon2, c.lat1, c.lon1)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKnownOffset(t *testing.T) {
	// Moving 150 m straight north from the office.
	const want = 150.0
	lat := -6.2088
	lon := 106.8456
	got := Distance(lat, lon, lat+want/metersPerDegreeLat, lon)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Distance = %v, want ~%v", got, want)
	}
}

func TestGeofenceBoundary(t *testing.T) {
	center := Point{Latitude: -6.2088, Longitude: 106.8456}
	point := Point{Latitude: center.Latitude + 100/metersPerDegreeLat, Longitude: center.Longitude}
	exact := Distance(point.Latitude, point.Longitude, center.Latitude, center.Longitude)

	// A point exactly at the radius is inside; radius + epsilon is not.
	within, d := Geofence{Center: center, RadiusMeters: exact}.Check(point)
	if !within {
		t.Errorf("point at radius rejected (distance %v)", d)
	}

	within, d = Geofence{Center: center, RadiusMeters: exact - 0.001}.Check(point)
	if within {
		t.Errorf("point beyond radius accepted (distance %v)", d)
	}
}

func TestGeofenceCheckOutsideReportsDistance(t *testing.T) {
	center := Point{Latitude: -6.2088, Longitude: 106.8456}
	fence := Geofence{Center: center, RadiusMeters: 100, Source: "branch"}
	point := Point{Latitude: center.Latitude + 150/metersPerDegreeLat, Longitude: center.Longitude}

	within, d := fence.Check(point)
	if within {
		t.Fatal("expected point 150 m away to be outside a 100 m fence")
	}
	if math.Abs(d-150) > 0.01 {
		t.Errorf("reported distance = %v, want ~150", d)
	}
}

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, true},
		{-90, 180, true},
		{90, -180, true},
		{90.0001, 0, false},
		{0, 180.0001, false},
		{math.NaN(), 0, false},
		{0, math.NaN(), false},
	}
	for _, c := range cases {
		if got := ValidCoordinates(c.lat, c.lon); got != c.want {
			t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", c.lat, c.lon, got, c.want)
		}
	}
}
