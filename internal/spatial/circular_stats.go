package spatial

import (
	"math"
)

// CircularMean calculates the mean of circular data (angles in radians).
// Returns mean angle in radians.
func CircularMean(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for _, angle := range angles {
		sumSin += math.Sin(angle)
		sumCos += math.Cos(angle)
	}

	return math.Atan2(sumSin, sumCos)
}

// CircularMeanDegrees calculates the mean of circular data in degrees,
// normalized to [0, 360). Bearings wrap, so 350° and 10° average to 0°,
// not 180°.
func CircularMeanDegrees(angles []float64) float64 {
	radians := make([]float64, len(angles))
	for i, angle := range angles {
		radians[i] = angle * math.Pi / 180
	}
	meanRad := CircularMean(radians)
	meanDeg := meanRad * 180 / math.Pi
	if meanDeg < 0 {
		meanDeg += 360
	}
	return meanDeg
}

// MeanResultantLength calculates the mean resultant length (R).
// R ranges from 0 (uniform distribution) to 1 (all angles identical).
func MeanResultantLength(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for _, angle := range angles {
		sumSin += math.Sin(angle)
		sumCos += math.Cos(angle)
	}

	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / float64(len(angles))
}

// CircularVariance calculates the circular variance (1 - R)
// where R is the mean resultant length
func CircularVariance(angles []float64) float64 {
	return 1 - MeanResultantLength(angles)
}

// AngularDifferenceDegrees calculates the smallest difference between two
// angles (degrees). Result is in range [-180, 180].
func AngularDifferenceDegrees(angle1, angle2 float64) float64 {
	diff := angle2 - angle1
	// Normalize to [-180, 180]
	for diff > 180 {
		diff -= 360
	}
	for diff < -180 {
		diff += 360
	}
	return diff
}
