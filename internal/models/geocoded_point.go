package models

// FeatureTypeTrafficSignal marks a geocoded point as a signalized
// intersection in the extracted map data.
const FeatureTypeTrafficSignal = "traffic_signals"

// GeocodedPoint is one raw point from the offline map-data extraction step.
// Points whose FeatureType is not a traffic signal are skipped during load.
type GeocodedPoint struct {
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`
	FeatureType string  `json:"featureType" db:"feature_type"`
	SourceID    string  `json:"sourceId" db:"source_id"`
}

// IsTrafficSignal reports whether the point qualifies for the signal roster.
// Points with missing coordinates or an empty source id are rejected.
func (p *GeocodedPoint) IsTrafficSignal() bool {
	if p.FeatureType != FeatureTypeTrafficSignal {
		return false
	}
	if p.SourceID == "" {
		return false
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return false
	}
	return true
}

// SignalFilter represents query parameters for listing signals.
type SignalFilter struct {
	CoordinatedOnly bool `form:"coordinatedOnly"`
}
