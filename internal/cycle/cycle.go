package cycle

import (
	"math"
	"time"
)

const (
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
	FlowSpotting = "spotting"
	FlowNone     = "none"
)

const (
	ConfidenceFloor = 0.5
	ConfidenceCap   = 0.95
)

// LogEntry is a single daily observation. Flow is empty when the day was
// logged without a flow value.
type LogEntry struct {
	Date time.Time
	Flow string
}

func (entry LogEntry) HasFlow() bool {
	return entry.Flow != "" && entry.Flow != FlowNone
}

type Profile struct {
	CycleLengthDays  int
	PeriodLengthDays int
}

type Source string

const (
	SourceProfileDefault Source = "profile_default"
	SourceHybrid         Source = "hybrid"
	SourceHistorical     Source = "historical"
)

type Result struct {
	NextPeriodStart      time.Time
	NextPeriodEnd        time.Time
	FertilityWindowStart time.Time
	FertilityWindowEnd   time.Time
	Confidence           float64
	Source               Source
	CyclesAnalyzed       int
	AverageCycleLength   float64
	StdDeviation         float64
}

// Predict projects the next period and fertility window from the logged
// history, falling back to the profile when history is insufficient. The
// current time is consulted only when no cycle start was ever observed.
func Predict(entries []LogEntry, profile Profile, now time.Time) Result {
	starts := DetectCycleStarts(entries)
	samples := CycleLengthSamples(starts)
	mean := meanOf(samples)
	stdDev := sampleStdDev(samples, mean)

	source, predictedLength, confidence := resolvePrediction(len(samples), mean, stdDev, profile)

	base := dateOnly(now)
	if len(starts) > 0 {
		base = starts[len(starts)-1]
	}

	// The fertility window shares the period projection's anchor: the last
	// observed cycle start, not the newly projected one.
	ovulationDay := int(math.Round(float64(predictedLength) / 2))

	return Result{
		NextPeriodStart:      base.AddDate(0, 0, predictedLength),
		NextPeriodEnd:        base.AddDate(0, 0, predictedLength+profile.PeriodLengthDays-1),
		FertilityWindowStart: base.AddDate(0, 0, ovulationDay-5),
		FertilityWindowEnd:   base.AddDate(0, 0, ovulationDay+1),
		Confidence:           confidence,
		Source:               source,
		CyclesAnalyzed:       len(samples),
		AverageCycleLength:   mean,
		StdDeviation:         stdDev,
	}
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func daysBetween(from time.Time, to time.Time) int {
	return int(math.Round(dateOnly(to).Sub(dateOnly(from)).Hours() / 24))
}
