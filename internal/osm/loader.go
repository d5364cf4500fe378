package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/urbansim/signals-backend-go/internal/models"
)

// ExtractSignalPoints scans an OSM XML stream and emits one geocoded point
// per node tagged highway=traffic_signals. Other elements are ignored.
func ExtractSignalPoints(ctx context.Context, r io.Reader) ([]models.GeocodedPoint, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	var points []models.GeocodedPoint
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if ok && node.Tags.Find("highway") == models.FeatureTypeTrafficSignal {
			points = append(points, models.GeocodedPoint{
				Latitude:    node.Lat,
				Longitude:   node.Lon,
				FeatureType: models.FeatureTypeTrafficSignal,
				SourceID:    fmt.Sprintf("osm-%d", node.ID),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan osm data: %w", err)
	}
	return points, nil
}

// ExtractSignalPointsFromFile extracts traffic-signal points from an OSM XML
// export on disk.
func ExtractSignalPointsFromFile(ctx context.Context, path string) ([]models.GeocodedPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open osm file: %w", err)
	}
	defer f.Close()
	return ExtractSignalPoints(ctx, f)
}

// LoadPointsFromJSON reads a snapshot of already-extracted geocoded points,
// as written by a previous extraction run.
func LoadPointsFromJSON(path string) ([]models.GeocodedPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}

	var points []models.GeocodedPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse points file: %w", err)
	}
	return points, nil
}
