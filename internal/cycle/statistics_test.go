package cycle

import (
	"math"
	"testing"
	"time"
)

func TestCycleLengthSamples(t *testing.T) {
	starts := []time.Time{
		mustParseDay("2025-01-01"),
		mustParseDay("2025-01-29"),
		mustParseDay("2025-03-05"),
	}

	samples := CycleLengthSamples(starts)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0] != 28 || samples[1] != 35 {
		t.Fatalf("expected samples [28 35], got %v", samples)
	}
}

func TestCycleLengthSamplesRequireTwoStarts(t *testing.T) {
	if samples := CycleLengthSamples(nil); samples != nil {
		t.Fatalf("expected nil samples for no starts, got %v", samples)
	}
	if samples := CycleLengthSamples([]time.Time{mustParseDay("2025-01-01")}); samples != nil {
		t.Fatalf("expected nil samples for a single start, got %v", samples)
	}
}

func TestMeanOf(t *testing.T) {
	if mean := meanOf(nil); mean != 0 {
		t.Fatalf("expected zero mean for no samples, got %.2f", mean)
	}
	if mean := meanOf([]int{28, 35, 21}); mean != 28 {
		t.Fatalf("expected mean 28, got %.2f", mean)
	}
}

func TestSampleStdDev(t *testing.T) {
	if stdDev := sampleStdDev([]int{28}, 28); stdDev != 0 {
		t.Fatalf("expected zero deviation for a single sample, got %.4f", stdDev)
	}
	if stdDev := sampleStdDev([]int{28, 28, 28}, 28); stdDev != 0 {
		t.Fatalf("expected zero deviation for identical samples, got %.4f", stdDev)
	}

	// 28, 35, 21 around mean 28: sum of squares 98, n-1 divisor.
	stdDev := sampleStdDev([]int{28, 35, 21}, 28)
	if math.Abs(stdDev-7) > 1e-9 {
		t.Fatalf("expected sample deviation 7, got %.4f", stdDev)
	}
}
