package coordination

import (
	"log"
	"sort"
	"sync"

	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/registry"
)

// Params holds the analysis defaults a coordinator applies when the caller
// does not override them. Zero fields fall back to the package defaults.
type Params struct {
	TargetSpeedKmh        float64
	MaxSpacingM           float64
	MaxBearingVarianceDeg float64
}

// DefaultParams returns the built-in analysis defaults.
func DefaultParams() Params {
	return Params{
		TargetSpeedKmh:        DefaultTargetSpeedKmh,
		MaxSpacingM:           DefaultMaxSpacingM,
		MaxBearingVarianceDeg: DefaultMaxBearingVarianceDeg,
	}
}

func (p Params) normalized() Params {
	if p.TargetSpeedKmh <= 0 {
		p.TargetSpeedKmh = DefaultTargetSpeedKmh
	}
	if p.MaxSpacingM <= 0 {
		p.MaxSpacingM = DefaultMaxSpacingM
	}
	if p.MaxBearingVarianceDeg <= 0 {
		p.MaxBearingVarianceDeg = DefaultMaxBearingVarianceDeg
	}
	return p
}

// Coordinator maintains the stored corridor set and the signal-to-corridor
// index, and writes coordination offsets back onto registry signal configs.
//
// The two maps move in lock-step: every signal id in a stored corridor has
// an entry in signalToCorridor, and Reset clears both together. A signal is
// either uncoordinated (absent from the index) or coordinated (present, with
// an offset on its registry record); it moves between those states only via
// ApplyCoordination and Reset.
//
// Read accessors return snapshots, never the stored structs: the HTTP layer
// serializes corridors outside the lock, so mutations replace stored
// corridors instead of writing into ones a reader may hold.
type Coordinator struct {
	mu               sync.RWMutex
	registry         *registry.InfrastructureRegistry
	params           Params
	corridors        map[string]*models.Corridor
	signalToCorridor map[string]string
}

// NewCoordinator constructs a coordinator over the given registry with the
// built-in analysis defaults. When autoAnalyze is true, the registry's
// current roster is analyzed and the result applied before returning.
func NewCoordinator(reg *registry.InfrastructureRegistry, autoAnalyze bool) *Coordinator {
	return NewCoordinatorWithParams(reg, autoAnalyze, DefaultParams())
}

// NewCoordinatorWithParams constructs a coordinator whose auto-analysis and
// caller-omitted parameters use the given defaults instead of the built-in
// ones.
func NewCoordinatorWithParams(reg *registry.InfrastructureRegistry, autoAnalyze bool, params Params) *Coordinator {
	c := &Coordinator{
		registry:         reg,
		params:           params.normalized(),
		corridors:        make(map[string]*models.Corridor),
		signalToCorridor: make(map[string]string),
	}
	if autoAnalyze {
		result := AnalyzeCorridorsAtSpeed(reg.GetSignals(),
			c.params.MaxSpacingM, c.params.MaxBearingVarianceDeg, c.params.TargetSpeedKmh)
		c.ApplyCoordination(result.Corridors)
		log.Printf("Coordinator auto-analysis: %d corridors, %d signals coordinated, %d uncoordinated",
			result.Stats.TotalCorridors, result.Stats.TotalSignalsCoordinated, len(result.UncoordinatedSignals))
	}
	return c
}

// Params returns the coordinator's analysis defaults.
func (c *Coordinator) Params() Params {
	return c.params
}

// cloneCorridor copies a corridor including its slices, so callers can hold
// the result while the stored set changes underneath.
func cloneCorridor(corridor *models.Corridor) *models.Corridor {
	clone := *corridor
	clone.SignalIDs = append([]string(nil), corridor.SignalIDs...)
	clone.CumulativeMeters = append([]float64(nil), corridor.CumulativeMeters...)
	clone.OffsetsSec = append([]float64(nil), corridor.OffsetsSec...)
	return &clone
}

// ApplyCoordination stores the given corridors and writes each member
// signal's offset into its registry config. Signals absent from the registry
// are skipped without error, since detection and application may run against
// different roster snapshots; their corridor membership is still recorded so
// the stored corridor and the index stay consistent.
func (c *Coordinator) ApplyCoordination(corridors []models.Corridor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range corridors {
		stored := cloneCorridor(&corridors[i])
		c.corridors[stored.ID] = stored

		for j, id := range stored.SignalIDs {
			c.signalToCorridor[id] = stored.ID
			sig, ok := c.registry.GetSignal(id)
			if !ok {
				continue
			}
			offset := stored.OffsetsSec[j]
			sig.Config.CoordinationOffset = &offset
		}
	}
}

// UpdateCorridorSpeed changes a stored corridor's target speed and recomputes
// its offsets, writing the new offsets back onto registry signals. The stored
// corridor is replaced, not mutated, so previously returned snapshots stay
// valid. Unknown corridor ids and non-positive speeds are a silent no-op.
func (c *Coordinator) UpdateCorridorSpeed(id string, speedKmh float64) {
	if speedKmh <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	corridor, ok := c.corridors[id]
	if !ok {
		return
	}

	updated := cloneCorridor(corridor)
	updated.TargetSpeedKmh = speedKmh
	updated.OffsetsSec = CalculateTimingOffsets(updated, speedKmh)
	c.corridors[id] = updated

	for j, sid := range updated.SignalIDs {
		sig, ok := c.registry.GetSignal(sid)
		if !ok {
			continue
		}
		offset := updated.OffsetsSec[j]
		sig.Config.CoordinationOffset = &offset
	}
}

// GetCorridor returns a snapshot of the stored corridor with the given id.
func (c *Coordinator) GetCorridor(id string) (*models.Corridor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	corridor, ok := c.corridors[id]
	if !ok {
		return nil, false
	}
	return cloneCorridor(corridor), true
}

// GetCorridors returns snapshots of all stored corridors, sorted by id for
// stable output.
func (c *Coordinator) GetCorridors() []*models.Corridor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Corridor, 0, len(c.corridors))
	for _, corridor := range c.corridors {
		out = append(out, cloneCorridor(corridor))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IsSignalCoordinated reports whether the signal belongs to a stored
// corridor.
func (c *Coordinator) IsSignalCoordinated(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.signalToCorridor[id]
	return ok
}

// GetCorridorForSignal returns a snapshot of the corridor containing the
// signal, or false if the signal is uncoordinated.
func (c *Coordinator) GetCorridorForSignal(id string) (*models.Corridor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	corridorID, ok := c.signalToCorridor[id]
	if !ok {
		return nil, false
	}
	corridor, ok := c.corridors[corridorID]
	if !ok {
		return nil, false
	}
	return cloneCorridor(corridor), true
}

// GetStats aggregates the stored corridor set. All-zero when nothing is
// stored.
func (c *Coordinator) GetStats() models.CoordinationStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	corridors := make([]models.Corridor, 0, len(c.corridors))
	for _, corridor := range c.corridors {
		corridors = append(corridors, *corridor)
	}
	return ComputeStats(corridors)
}

// Reset clears the stored corridors, the signal index, and every previously
// written registry offset in one step.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.signalToCorridor {
		if sig, ok := c.registry.GetSignal(id); ok {
			sig.Config.CoordinationOffset = nil
		}
	}
	c.corridors = make(map[string]*models.Corridor)
	c.signalToCorridor = make(map[string]string)
}
