package spatial

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestHaversineDistance_OneDegreeLongitudeAtEquator(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km
	dist := HaversineDistance(0, 0, 0, 1)
	expected := EarthRadiusMeters * math.Pi / 180

	if !almostEqual(dist, expected, 1.0) {
		t.Errorf("Expected distance ~%.1f m, got %.1f m", expected, dist)
	}
}

func TestHaversineDistance_SamePoint(t *testing.T) {
	if dist := HaversineDistance(41.3851, 2.1734, 41.3851, 2.1734); dist != 0 {
		t.Errorf("Expected zero distance for identical points, got %f", dist)
	}
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := HaversineDistance(41.3851, 2.1734, 41.4036, 2.1744)
	d2 := HaversineDistance(41.4036, 2.1744, 41.3851, 2.1734)

	if !almostEqual(d1, d2, 1e-6) {
		t.Errorf("Distance should be symmetric: %f vs %f", d1, d2)
	}
}

func TestBearing_CardinalDirections(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
	}{
		{"due north", 0, 0, 1, 0, 0},
		{"due east", 0, 0, 0, 1, 90},
		{"due south", 1, 0, 0, 0, 180},
		{"due west", 0, 1, 0, 0, 270},
	}

	for _, tc := range cases {
		bearing := Bearing(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
		if !almostEqual(bearing, tc.expected, 0.01) {
			t.Errorf("%s: expected bearing %.1f, got %.4f", tc.name, tc.expected, bearing)
		}
	}
}

func TestBearing_NormalizedRange(t *testing.T) {
	bearing := Bearing(10, 10, 9, 9)
	if bearing < 0 || bearing >= 360 {
		t.Errorf("Bearing should be in [0, 360), got %f", bearing)
	}
}

func TestDestinationPoint_RoundTrip(t *testing.T) {
	lat, lon := DestinationPoint(0, 0, 90, 500)

	dist := HaversineDistance(0, 0, lat, lon)
	if !almostEqual(dist, 500, 0.5) {
		t.Errorf("Expected destination 500 m away, got %.2f m", dist)
	}

	bearing := Bearing(0, 0, lat, lon)
	if !almostEqual(bearing, 90, 0.1) {
		t.Errorf("Expected bearing 90, got %f", bearing)
	}
}

func TestCircularMeanDegrees_WrapsAroundNorth(t *testing.T) {
	mean := CircularMeanDegrees([]float64{350, 10})

	// Must be 0, not the arithmetic mean of 180
	if !(mean < 0.01 || mean > 359.99) {
		t.Errorf("Expected circular mean ~0 for {350, 10}, got %f", mean)
	}
}

func TestCircularMeanDegrees_Empty(t *testing.T) {
	if mean := CircularMeanDegrees(nil); mean != 0 {
		t.Errorf("Expected 0 for empty input, got %f", mean)
	}
}

func TestAngularDifferenceDegrees(t *testing.T) {
	cases := []struct {
		a, b, expected float64
	}{
		{90, 100, 10},
		{100, 90, -10},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
	}

	for _, tc := range cases {
		diff := AngularDifferenceDegrees(tc.a, tc.b)
		if !almostEqual(diff, tc.expected, 1e-9) {
			t.Errorf("AngularDifferenceDegrees(%f, %f): expected %f, got %f",
				tc.a, tc.b, tc.expected, diff)
		}
	}
}

func TestMeanResultantLength(t *testing.T) {
	identical := []float64{1.0, 1.0, 1.0}
	if r := MeanResultantLength(identical); !almostEqual(r, 1, 1e-9) {
		t.Errorf("Expected R=1 for identical angles, got %f", r)
	}

	opposed := []float64{0, math.Pi}
	if r := MeanResultantLength(opposed); !almostEqual(r, 0, 1e-9) {
		t.Errorf("Expected R=0 for opposed angles, got %f", r)
	}
}
