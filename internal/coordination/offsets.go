package coordination

import (
	"github.com/urbansim/signals-backend-go/internal/models"
)

// CalculateTimingOffsets converts a corridor's geometry and a design speed
// into per-signal green-wave offsets in seconds: offset i is the travel time
// from the first signal to signal i at speedKmh. The first offset is always
// 0. Distances come from the corridor's stored cumulative geometry, so
// repeated calls with different speeds are pure functions of speedKmh.
func CalculateTimingOffsets(corridor *models.Corridor, speedKmh float64) []float64 {
	offsets := make([]float64, len(corridor.SignalIDs))
	if len(offsets) <= 1 {
		return offsets
	}

	if speedKmh <= 0 {
		speedKmh = DefaultTargetSpeedKmh
	}
	speedMS := speedKmh / 3.6

	for i := 1; i < len(offsets) && i < len(corridor.CumulativeMeters); i++ {
		offsets[i] = corridor.CumulativeMeters[i] / speedMS
	}
	return offsets
}
