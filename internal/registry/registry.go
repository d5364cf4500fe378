package registry

import (
	"fmt"
	"log"

	"github.com/urbansim/signals-backend-go/internal/models"
)

// Default per-signal cycle timing assigned at load time. The coordinator
// only ever touches CoordinationOffset; the rest belongs to the downstream
// phase state machine.
const (
	defaultCycleSeconds  = 60
	defaultGreenSeconds  = 27
	defaultYellowSeconds = 3
)

// InfrastructureRegistry owns the canonical traffic signal roster. Signals
// are created in bulk by LoadFromOSM and mutated only through their Config
// records, which the coordinator holds by reference.
type InfrastructureRegistry struct {
	signals []*models.TrafficSignal
	byID    map[string]*models.TrafficSignal
}

// New creates an empty registry.
func New() *InfrastructureRegistry {
	return &InfrastructureRegistry{
		byID: make(map[string]*models.TrafficSignal),
	}
}

// LoadFromOSM replaces the roster from raw geocoded points. Each qualifying
// traffic-signal point expands into two directional signal records, one per
// approach axis (north-south and east-west), sharing the point's location.
// Malformed or non-signal points are skipped silently. Returns the number of
// signals in the roster after the load.
func (r *InfrastructureRegistry) LoadFromOSM(points []models.GeocodedPoint) int {
	r.signals = r.signals[:0]
	r.byID = make(map[string]*models.TrafficSignal, len(points)*2)

	skipped := 0
	for i := range points {
		p := &points[i]
		if !p.IsTrafficSignal() {
			skipped++
			continue
		}
		for _, approach := range []models.Approach{models.ApproachNorthSouth, models.ApproachEastWest} {
			sig := &models.TrafficSignal{
				ID:        fmt.Sprintf("%s-%s", p.SourceID, approach),
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Approach:  approach,
				SourceID:  p.SourceID,
				Config: &models.SignalConfig{
					CycleSeconds:  defaultCycleSeconds,
					GreenSeconds:  defaultGreenSeconds,
					YellowSeconds: defaultYellowSeconds,
				},
			}
			if _, exists := r.byID[sig.ID]; exists {
				// Duplicate source ids in the extraction; keep the first.
				continue
			}
			r.signals = append(r.signals, sig)
			r.byID[sig.ID] = sig
		}
	}

	log.Printf("Registry loaded %d signals from %d points (%d skipped)",
		len(r.signals), len(points), skipped)
	return len(r.signals)
}

// GetSignals returns the current signal roster in load order.
func (r *InfrastructureRegistry) GetSignals() []*models.TrafficSignal {
	return r.signals
}

// GetSignal returns the signal with the given id, or false if unknown.
func (r *InfrastructureRegistry) GetSignal(id string) (*models.TrafficSignal, bool) {
	sig, ok := r.byID[id]
	return sig, ok
}

// Count returns the number of signals in the roster.
func (r *InfrastructureRegistry) Count() int {
	return len(r.signals)
}
