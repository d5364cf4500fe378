package models

// Approach identifies the traffic direction a signal record controls.
// An OSM intersection node controlling crossing streets expands into one
// signal record per approach axis.
type Approach string

const (
	ApproachNorthSouth Approach = "ns"
	ApproachEastWest   Approach = "ew"
)

// SignalConfig is the mutable timing record of a traffic signal.
// CoordinationOffset is nil while the signal is uncoordinated; it is set by
// the coordinator when the signal joins a corridor and cleared on reset.
type SignalConfig struct {
	CycleSeconds       float64  `json:"cycleSeconds"`
	GreenSeconds       float64  `json:"greenSeconds"`
	YellowSeconds      float64  `json:"yellowSeconds"`
	CoordinationOffset *float64 `json:"coordinationOffset,omitempty"`
}

// TrafficSignal represents one directional signal head at a geographic
// location. Two TrafficSignal records sharing a SourceID describe the same
// physical intersection seen from crossing approaches.
type TrafficSignal struct {
	ID        string        `json:"id"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Approach  Approach      `json:"approach"`
	SourceID  string        `json:"sourceId"`
	Config    *SignalConfig `json:"config"`
}

// IsCoordinated reports whether a coordination offset has been applied.
func (s *TrafficSignal) IsCoordinated() bool {
	return s.Config != nil && s.Config.CoordinationOffset != nil
}
