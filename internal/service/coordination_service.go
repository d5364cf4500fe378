package service

import (
	"github.com/urbansim/signals-backend-go/internal/coordination"
	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/registry"
)

// StatsSummary extends the corridor aggregates with the length extremes,
// for the stats endpoint.
type StatsSummary struct {
	models.CoordinationStats
	MinCorridorLength float64 `json:"minCorridorLength"`
	MaxCorridorLength float64 `json:"maxCorridorLength"`
}

// CoordinationService handles business logic for corridor analysis and
// queries.
type CoordinationService struct {
	registry    *registry.InfrastructureRegistry
	coordinator *coordination.Coordinator
}

// NewCoordinationService creates a new coordination service
func NewCoordinationService(reg *registry.InfrastructureRegistry, coord *coordination.Coordinator) *CoordinationService {
	return &CoordinationService{registry: reg, coordinator: coord}
}

// Analyze runs corridor detection over the current roster and applies the
// result, replacing previously stored coordination. Omitted (non-positive)
// parameters fall back to the coordinator's configured defaults.
func (s *CoordinationService) Analyze(maxSpacingM, maxBearingVarianceDeg float64) models.CorridorAnalysisResult {
	params := s.coordinator.Params()
	if maxSpacingM <= 0 {
		maxSpacingM = params.MaxSpacingM
	}
	if maxBearingVarianceDeg <= 0 {
		maxBearingVarianceDeg = params.MaxBearingVarianceDeg
	}

	s.coordinator.Reset()
	result := coordination.AnalyzeCorridorsAtSpeed(s.registry.GetSignals(),
		maxSpacingM, maxBearingVarianceDeg, params.TargetSpeedKmh)
	s.coordinator.ApplyCoordination(result.Corridors)
	return result
}

// GetCorridors returns all stored corridors.
func (s *CoordinationService) GetCorridors() []*models.Corridor {
	return s.coordinator.GetCorridors()
}

// GetCorridor returns a stored corridor by id.
func (s *CoordinationService) GetCorridor(id string) (*models.Corridor, bool) {
	return s.coordinator.GetCorridor(id)
}

// UpdateCorridorSpeed changes a corridor's target speed and returns the
// corridor with recomputed offsets, or false if the id is unknown.
func (s *CoordinationService) UpdateCorridorSpeed(id string, speedKmh float64) (*models.Corridor, bool) {
	if _, ok := s.coordinator.GetCorridor(id); !ok {
		return nil, false
	}
	s.coordinator.UpdateCorridorSpeed(id, speedKmh)
	return s.coordinator.GetCorridor(id)
}

// GetStats aggregates the stored corridor set with length extremes.
func (s *CoordinationService) GetStats() StatsSummary {
	summary := StatsSummary{CoordinationStats: s.coordinator.GetStats()}
	for i, corridor := range s.coordinator.GetCorridors() {
		if i == 0 || corridor.LengthM < summary.MinCorridorLength {
			summary.MinCorridorLength = corridor.LengthM
		}
		if corridor.LengthM > summary.MaxCorridorLength {
			summary.MaxCorridorLength = corridor.LengthM
		}
	}
	return summary
}

// Reset clears all stored coordination state.
func (s *CoordinationService) Reset() {
	s.coordinator.Reset()
}
