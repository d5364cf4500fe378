package service

import (
	"context"
	"fmt"
	"log"

	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/osm"
	"github.com/urbansim/signals-backend-go/internal/registry"
	"github.com/urbansim/signals-backend-go/internal/repository"
)

// ImportService loads the signal roster from one of three sources: a raw OSM
// XML export, a JSON snapshot of extracted points, or the database snapshot
// written by a previous import.
type ImportService struct {
	repo     *repository.PointRepository
	registry *registry.InfrastructureRegistry
}

// NewImportService creates a new import service
func NewImportService(repo *repository.PointRepository, reg *registry.InfrastructureRegistry) *ImportService {
	return &ImportService{repo: repo, registry: reg}
}

// ImportFromOSM extracts traffic-signal points from an OSM XML export,
// persists the snapshot, and loads the registry.
func (s *ImportService) ImportFromOSM(ctx context.Context, path string) (int, error) {
	points, err := osm.ExtractSignalPointsFromFile(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("osm extraction failed: %w", err)
	}
	return s.load(points)
}

// ImportFromJSON loads the registry from an extracted-point JSON snapshot
// and persists it.
func (s *ImportService) ImportFromJSON(path string) (int, error) {
	points, err := osm.LoadPointsFromJSON(path)
	if err != nil {
		return 0, fmt.Errorf("snapshot load failed: %w", err)
	}
	return s.load(points)
}

// LoadFromDatabase rebuilds the registry from the stored point snapshot.
func (s *ImportService) LoadFromDatabase() (int, error) {
	points, err := s.repo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read stored points: %w", err)
	}
	return s.registry.LoadFromOSM(points), nil
}

func (s *ImportService) load(points []models.GeocodedPoint) (int, error) {
	if err := s.repo.ReplaceAll(points); err != nil {
		// The in-memory roster is still usable without the snapshot.
		log.Printf("Warning: failed to persist point snapshot: %v", err)
	}
	return s.registry.LoadFromOSM(points), nil
}
