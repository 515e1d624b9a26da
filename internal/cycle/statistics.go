package cycle

import (
	"math"
	"time"
)

// CycleLengthSamples derives one length sample per consecutive pair of cycle
// starts. Fewer than two starts yield no samples.
func CycleLengthSamples(starts []time.Time) []int {
	if len(starts) < 2 {
		return nil
	}

	samples := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		samples = append(samples, daysBetween(starts[i-1], starts[i]))
	}
	return samples
}

func meanOf(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	var total int
	for _, sample := range samples {
		total += sample
	}
	return float64(total) / float64(len(samples))
}

// sampleStdDev is the n-1 (sample) standard deviation; a single sample has
// deviation zero.
func sampleStdDev(samples []int, mean float64) float64 {
	if len(samples) < 2 {
		return 0
	}

	var sumSquares float64
	for _, sample := range samples {
		delta := float64(sample) - mean
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(samples)-1))
}
