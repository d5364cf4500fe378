package coordination

import (
	"github.com/google/uuid"
	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/spatial"
)

// Analysis defaults. Spacing is a hard cutoff; bearing variance bounds how
// far a candidate's heading may drift from the chain's running mean.
const (
	DefaultMaxSpacingM           = 500.0
	DefaultMaxBearingVarianceDeg = 30.0
	DefaultTargetSpeedKmh        = 50.0
)

// AnalyzeCorridors partitions the given signals into corridors of signals
// lying along one contiguous, roughly straight traffic path. Chaining is
// greedy: each chain starts from the first unassigned signal in roster order
// and repeatedly extends by the nearest unassigned signal within maxSpacingM
// whose bearing from the chain end deviates from the chain's running mean
// bearing by at most maxBearingVarianceDeg. Chains of length 1 are not
// promoted; their signals are reported as uncoordinated.
//
// The result is always well-formed: sparse or incompatible input yields zero
// corridors and a full uncoordinated list, never an error.
func AnalyzeCorridors(signals []*models.TrafficSignal, maxSpacingM, maxBearingVarianceDeg float64) models.CorridorAnalysisResult {
	return AnalyzeCorridorsAtSpeed(signals, maxSpacingM, maxBearingVarianceDeg, DefaultTargetSpeedKmh)
}

// AnalyzeCorridorsAtSpeed is AnalyzeCorridors with an explicit design speed
// for the detected corridors' green-wave offsets.
func AnalyzeCorridorsAtSpeed(signals []*models.TrafficSignal, maxSpacingM, maxBearingVarianceDeg, targetSpeedKmh float64) models.CorridorAnalysisResult {
	if maxSpacingM <= 0 {
		maxSpacingM = DefaultMaxSpacingM
	}
	if maxBearingVarianceDeg <= 0 {
		maxBearingVarianceDeg = DefaultMaxBearingVarianceDeg
	}
	if targetSpeedKmh <= 0 {
		targetSpeedKmh = DefaultTargetSpeedKmh
	}

	assigned := make([]bool, len(signals))
	var corridors []models.Corridor

	for seed := range signals {
		if assigned[seed] {
			continue
		}

		chain, bearings := growChain(signals, assigned, seed, maxSpacingM, maxBearingVarianceDeg)
		if len(chain) < 2 {
			continue
		}

		for _, idx := range chain {
			assigned[idx] = true
		}
		corridors = append(corridors, buildCorridor(signals, chain, bearings, targetSpeedKmh))
	}

	// Empty rather than nil, so consumers always see a JSON array
	uncoordinated := []string{}
	for i, sig := range signals {
		if !assigned[i] {
			uncoordinated = append(uncoordinated, sig.ID)
		}
	}

	return models.CorridorAnalysisResult{
		Corridors:            corridors,
		UncoordinatedSignals: uncoordinated,
		Stats:                ComputeStats(corridors),
	}
}

// growChain extends a candidate chain from the seed signal. Returns the
// chained signal indexes in traversal order and the bearing of each hop.
// Nothing is marked assigned here; the caller commits chains of length >= 2.
func growChain(signals []*models.TrafficSignal, assigned []bool, seed int, maxSpacingM, maxBearingVarianceDeg float64) ([]int, []float64) {
	chain := []int{seed}
	var bearings []float64
	inChain := map[int]bool{seed: true}

	for {
		end := signals[chain[len(chain)-1]]
		best := -1
		bestDist := maxSpacingM
		var bestBearing float64

		for i, sig := range signals {
			if assigned[i] || inChain[i] {
				continue
			}
			dist := spatial.HaversineDistance(end.Latitude, end.Longitude, sig.Latitude, sig.Longitude)
			if dist == 0 {
				// Directional twins share a location; never chain them.
				continue
			}
			// Ties go to the earliest roster index
			if dist > bestDist || (best != -1 && dist == bestDist) {
				continue
			}
			bearing := spatial.Bearing(end.Latitude, end.Longitude, sig.Latitude, sig.Longitude)
			if len(bearings) > 0 {
				mean := spatial.CircularMeanDegrees(bearings)
				if diff := spatial.AngularDifferenceDegrees(mean, bearing); diff > maxBearingVarianceDeg || diff < -maxBearingVarianceDeg {
					continue
				}
			}
			best = i
			bestDist = dist
			bestBearing = bearing
		}

		if best == -1 {
			return chain, bearings
		}
		chain = append(chain, best)
		inChain[best] = true
		bearings = append(bearings, bestBearing)
	}
}

// buildCorridor materializes an accepted chain: cumulative great-circle
// distances along the traversal order, direction as the circular mean of the
// hop bearings, and green-wave offsets at the given design speed.
func buildCorridor(signals []*models.TrafficSignal, chain []int, bearings []float64, targetSpeedKmh float64) models.Corridor {
	ids := make([]string, len(chain))
	cumulative := make([]float64, len(chain))
	for i, idx := range chain {
		ids[i] = signals[idx].ID
		if i > 0 {
			prev := signals[chain[i-1]]
			cur := signals[idx]
			cumulative[i] = cumulative[i-1] +
				spatial.HaversineDistance(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
		}
	}

	c := models.Corridor{
		ID:               uuid.New().String(),
		SignalIDs:        ids,
		DirectionDeg:     spatial.CircularMeanDegrees(bearings),
		LengthM:          cumulative[len(cumulative)-1],
		TargetSpeedKmh:   targetSpeedKmh,
		CumulativeMeters: cumulative,
	}
	c.OffsetsSec = CalculateTimingOffsets(&c, c.TargetSpeedKmh)
	return c
}

// ComputeStats aggregates a corridor set. All fields are zero for an empty
// set.
func ComputeStats(corridors []models.Corridor) models.CoordinationStats {
	stats := models.CoordinationStats{TotalCorridors: len(corridors)}
	if len(corridors) == 0 {
		return stats
	}

	var totalLength float64
	for i := range corridors {
		stats.TotalSignalsCoordinated += len(corridors[i].SignalIDs)
		totalLength += corridors[i].LengthM
	}
	stats.AverageCorridorLength = totalLength / float64(len(corridors))
	stats.AverageSignalsPerCorridor = float64(stats.TotalSignalsCoordinated) / float64(len(corridors))
	return stats
}
