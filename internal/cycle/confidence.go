package cycle

import "math"

// resolvePrediction maps the amount and consistency of observed history to a
// source tier, the cycle length used for projection, and a confidence score.
//
// Zero samples fall back entirely to the profile. One or two samples blend
// observed data with a modest confidence bump per sample. Three or more
// samples are trusted on their own, with confidence shrinking as the
// relative deviation grows.
func resolvePrediction(sampleCount int, mean float64, stdDev float64, profile Profile) (Source, int, float64) {
	switch {
	case sampleCount == 0:
		return SourceProfileDefault, profile.CycleLengthDays, ConfidenceFloor
	case sampleCount < 3:
		confidence := 0.6 + 0.1*float64(sampleCount)
		return SourceHybrid, int(math.Round(mean)), roundConfidence(clampConfidence(confidence))
	default:
		deviationRatio := 0.0
		if mean > 0 {
			deviationRatio = stdDev / mean
		}
		confidence := 1 - deviationRatio*0.5
		return SourceHistorical, int(math.Round(mean)), roundConfidence(clampConfidence(confidence))
	}
}

func clampConfidence(value float64) float64 {
	if value < ConfidenceFloor {
		return ConfidenceFloor
	}
	if value > ConfidenceCap {
		return ConfidenceCap
	}
	return value
}

func roundConfidence(value float64) float64 {
	return math.Round(value*100) / 100
}
