package models

// Corridor is an ordered chain of traffic signals along one roughly straight
// road segment, coordinated to share a green-wave timing plan.
//
// SignalIDs, CumulativeMeters and OffsetsSec are parallel slices: entry i
// describes the i-th signal along the direction of travel. CumulativeMeters[0]
// and OffsetsSec[0] are always 0 (the first signal is the timing reference).
type Corridor struct {
	ID               string    `json:"id"`
	SignalIDs        []string  `json:"signals"`
	DirectionDeg     float64   `json:"direction"`
	LengthM          float64   `json:"length"`
	TargetSpeedKmh   float64   `json:"targetSpeed"`
	CumulativeMeters []float64 `json:"cumulativeMeters"`
	OffsetsSec       []float64 `json:"offsets"`
}

// CoordinationStats aggregates the stored corridor set.
// All fields are zero when no corridors exist.
type CoordinationStats struct {
	TotalCorridors            int     `json:"totalCorridors"`
	TotalSignalsCoordinated   int     `json:"totalSignalsCoordinated"`
	AverageCorridorLength     float64 `json:"averageCorridorLength"`
	AverageSignalsPerCorridor float64 `json:"averageSignalsPerCorridor"`
}

// CorridorAnalysisResult is the transient outcome of one corridor analysis
// pass. It is not stored; ApplyCoordination copies accepted corridors into
// the coordinator's state.
type CorridorAnalysisResult struct {
	Corridors            []Corridor        `json:"corridors"`
	UncoordinatedSignals []string          `json:"uncoordinatedSignals"`
	Stats                CoordinationStats `json:"stats"`
}
