package coordination

import (
	"math"
	"testing"

	"github.com/urbansim/signals-backend-go/internal/models"
)

func testCorridor(cumulative []float64) *models.Corridor {
	ids := make([]string, len(cumulative))
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return &models.Corridor{
		ID:               "test",
		SignalIDs:        ids,
		CumulativeMeters: cumulative,
		LengthM:          cumulative[len(cumulative)-1],
	}
}

func TestCalculateTimingOffsets_TravelTime(t *testing.T) {
	corridor := testCorridor([]float64{0, 500, 1000})

	// 36 km/h = 10 m/s
	offsets := CalculateTimingOffsets(corridor, 36)

	expected := []float64{0, 50, 100}
	if len(offsets) != len(expected) {
		t.Fatalf("Expected %d offsets, got %d", len(expected), len(offsets))
	}
	for i := range expected {
		if math.Abs(offsets[i]-expected[i]) > 1e-9 {
			t.Errorf("offsets[%d]: expected %f, got %f", i, expected[i], offsets[i])
		}
	}
}

func TestCalculateTimingOffsets_FirstOffsetAlwaysZero(t *testing.T) {
	for _, speed := range []float64{10, 30, 50, 90} {
		offsets := CalculateTimingOffsets(testCorridor([]float64{0, 350, 720, 1100}), speed)
		if offsets[0] != 0 {
			t.Errorf("offsets[0] must be 0 at %v km/h, got %f", speed, offsets[0])
		}
	}
}

func TestCalculateTimingOffsets_StrictlyIncreasing(t *testing.T) {
	offsets := CalculateTimingOffsets(testCorridor([]float64{0, 350, 720, 1100}), 50)

	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			t.Errorf("Offsets must be strictly increasing: offsets[%d]=%f, offsets[%d]=%f",
				i-1, offsets[i-1], i, offsets[i])
		}
	}
}

func TestCalculateTimingOffsets_HigherSpeedShrinksOffsets(t *testing.T) {
	corridor := testCorridor([]float64{0, 500, 1000})

	slow := CalculateTimingOffsets(corridor, 30)
	fast := CalculateTimingOffsets(corridor, 60)

	for i := 1; i < len(slow); i++ {
		if fast[i] >= slow[i] {
			t.Errorf("Higher speed must shrink offset %d: fast=%f slow=%f", i, fast[i], slow[i])
		}
	}
}

func TestCalculateTimingOffsets_SingleSignal(t *testing.T) {
	corridor := &models.Corridor{
		ID:               "lonely",
		SignalIDs:        []string{"a"},
		CumulativeMeters: []float64{0},
	}

	offsets := CalculateTimingOffsets(corridor, 50)
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Errorf("Single-signal corridor must yield [0], got %v", offsets)
	}
}

func TestCalculateTimingOffsets_PureInSpeed(t *testing.T) {
	corridor := testCorridor([]float64{0, 400, 900})

	first := CalculateTimingOffsets(corridor, 40)
	CalculateTimingOffsets(corridor, 80)
	again := CalculateTimingOffsets(corridor, 40)

	for i := range first {
		if first[i] != again[i] {
			t.Errorf("Repeated calls at the same speed must agree: %v vs %v", first, again)
		}
	}
}
