package service

import (
	"github.com/urbansim/signals-backend-go/internal/coordination"
	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/registry"
)

// SignalCoordination describes one signal's membership for the consumer-side
// phase state machine: the offset to shift its cycle by and the corridor it
// belongs to, if any.
type SignalCoordination struct {
	Signal      *models.TrafficSignal `json:"signal"`
	Coordinated bool                  `json:"coordinated"`
	CorridorID  string                `json:"corridorId,omitempty"`
}

// SignalService handles business logic for the signal roster
type SignalService struct {
	registry    *registry.InfrastructureRegistry
	coordinator *coordination.Coordinator
}

// NewSignalService creates a new signal service
func NewSignalService(reg *registry.InfrastructureRegistry, coord *coordination.Coordinator) *SignalService {
	return &SignalService{registry: reg, coordinator: coord}
}

// GetSignals retrieves the roster, optionally restricted to coordinated
// signals.
func (s *SignalService) GetSignals(filter models.SignalFilter) []*models.TrafficSignal {
	signals := s.registry.GetSignals()
	if !filter.CoordinatedOnly {
		return signals
	}

	var coordinated []*models.TrafficSignal
	for _, sig := range signals {
		if s.coordinator.IsSignalCoordinated(sig.ID) {
			coordinated = append(coordinated, sig)
		}
	}
	return coordinated
}

// GetSignalCoordination returns a signal's coordination view, or false if
// the signal id is unknown.
func (s *SignalService) GetSignalCoordination(id string) (*SignalCoordination, bool) {
	sig, ok := s.registry.GetSignal(id)
	if !ok {
		return nil, false
	}

	view := &SignalCoordination{Signal: sig}
	if corridor, ok := s.coordinator.GetCorridorForSignal(id); ok {
		view.Coordinated = true
		view.CorridorID = corridor.ID
	}
	return view, true
}
