package cycle

import (
	"reflect"
	"testing"
)

var testProfile = Profile{CycleLengthDays: 28, PeriodLengthDays: 5}

func TestPredictNoHistoryFallsBackToProfile(t *testing.T) {
	now := mustParseDay("2025-03-05")
	result := Predict(nil, testProfile, now)

	if result.Source != SourceProfileDefault {
		t.Fatalf("expected source profile_default, got %s", result.Source)
	}
	if result.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %.2f", result.Confidence)
	}
	if result.NextPeriodStart.Format("2006-01-02") != "2025-04-02" {
		t.Fatalf("unexpected next period start: %s", result.NextPeriodStart.Format("2006-01-02"))
	}
	if result.NextPeriodEnd.Format("2006-01-02") != "2025-04-06" {
		t.Fatalf("unexpected next period end: %s", result.NextPeriodEnd.Format("2006-01-02"))
	}
	if result.CyclesAnalyzed != 0 {
		t.Fatalf("expected 0 cycles analyzed, got %d", result.CyclesAnalyzed)
	}
	assertWindowInvariants(t, result, testProfile)
}

func TestPredictSingleBleedingRunStaysProfileDefault(t *testing.T) {
	entries := bleedingRun("2025-01-01", 4)
	result := Predict(entries, testProfile, mustParseDay("2025-01-10"))

	if result.Source != SourceProfileDefault {
		t.Fatalf("expected source profile_default, got %s", result.Source)
	}
	if result.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %.2f", result.Confidence)
	}

	// The single observed start still anchors the projection.
	if result.NextPeriodStart.Format("2006-01-02") != "2025-01-29" {
		t.Fatalf("unexpected next period start: %s", result.NextPeriodStart.Format("2006-01-02"))
	}
	assertWindowInvariants(t, result, testProfile)
}

func TestPredictTwoStartsIsHybrid(t *testing.T) {
	entries := historyFromStarts("2025-01-01", 28)
	result := Predict(entries, testProfile, mustParseDay("2025-02-10"))

	if result.Source != SourceHybrid {
		t.Fatalf("expected source hybrid, got %s", result.Source)
	}
	if result.Confidence != 0.70 {
		t.Fatalf("expected confidence 0.70, got %.2f", result.Confidence)
	}
	if result.NextPeriodStart.Format("2006-01-02") != "2025-02-26" {
		t.Fatalf("unexpected next period start: %s", result.NextPeriodStart.Format("2006-01-02"))
	}
	if result.CyclesAnalyzed != 1 {
		t.Fatalf("expected 1 cycle analyzed, got %d", result.CyclesAnalyzed)
	}
	assertWindowInvariants(t, result, testProfile)
}

func TestPredictRegularHistoryHitsConfidenceCap(t *testing.T) {
	entries := historyFromStarts("2025-01-01", 28, 28, 28)
	result := Predict(entries, testProfile, mustParseDay("2025-04-01"))

	if result.Source != SourceHistorical {
		t.Fatalf("expected source historical, got %s", result.Source)
	}
	if result.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %.2f", result.Confidence)
	}
	if result.CyclesAnalyzed != 3 {
		t.Fatalf("expected 3 cycles analyzed, got %d", result.CyclesAnalyzed)
	}
	if result.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle length 28, got %.2f", result.AverageCycleLength)
	}
	if result.StdDeviation != 0 {
		t.Fatalf("expected zero deviation, got %.4f", result.StdDeviation)
	}
	if result.NextPeriodStart.Format("2006-01-02") != "2025-04-23" {
		t.Fatalf("unexpected next period start: %s", result.NextPeriodStart.Format("2006-01-02"))
	}
	assertWindowInvariants(t, result, testProfile)
}

func TestPredictIrregularHistoryLowersConfidence(t *testing.T) {
	irregular := Predict(historyFromStarts("2025-01-01", 28, 35, 21), testProfile, mustParseDay("2025-04-01"))
	regular := Predict(historyFromStarts("2025-01-01", 28, 28, 28), testProfile, mustParseDay("2025-04-01"))

	if irregular.Source != SourceHistorical {
		t.Fatalf("expected source historical, got %s", irregular.Source)
	}

	// mean 28, sample deviation 7: 1 - (7/28)*0.5 = 0.875, rounded up.
	if irregular.Confidence != 0.88 {
		t.Fatalf("expected confidence 0.88, got %.2f", irregular.Confidence)
	}
	if irregular.Confidence >= regular.Confidence {
		t.Fatalf("expected irregular history to score below regular: %.2f vs %.2f",
			irregular.Confidence, regular.Confidence)
	}
	assertWindowInvariants(t, irregular, testProfile)
}

func TestPredictConfidenceStaysWithinBounds(t *testing.T) {
	histories := [][]LogEntry{
		nil,
		bleedingRun("2025-01-01", 3),
		historyFromStarts("2025-01-01", 28),
		historyFromStarts("2025-01-01", 21, 40, 22, 39),
		historyFromStarts("2025-01-01", 5, 60, 5, 60),
	}

	now := mustParseDay("2025-06-01")
	for i, entries := range histories {
		result := Predict(entries, testProfile, now)
		if result.Confidence < ConfidenceFloor || result.Confidence > ConfidenceCap {
			t.Fatalf("history %d: confidence %.2f out of bounds", i, result.Confidence)
		}
		assertWindowInvariants(t, result, testProfile)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	entries := historyFromStarts("2025-01-01", 28, 30, 26)
	now := mustParseDay("2025-04-01")

	first := Predict(entries, testProfile, now)
	second := Predict(entries, testProfile, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestResolvePredictionMonotonicInDeviationRatio(t *testing.T) {
	_, _, steadier := resolvePrediction(3, 28, 7, testProfile)
	_, _, noisier := resolvePrediction(3, 28, 14, testProfile)
	if noisier >= steadier {
		t.Fatalf("expected confidence to fall with deviation: %.2f vs %.2f", noisier, steadier)
	}
}

func TestResolvePredictionGuardsZeroMean(t *testing.T) {
	source, _, confidence := resolvePrediction(3, 0, 0, testProfile)
	if source != SourceHistorical {
		t.Fatalf("expected source historical, got %s", source)
	}
	if confidence != ConfidenceCap {
		t.Fatalf("expected confidence %.2f, got %.2f", ConfidenceCap, confidence)
	}
}

func assertWindowInvariants(t *testing.T, result Result, profile Profile) {
	t.Helper()

	periodDays := daysBetween(result.NextPeriodStart, result.NextPeriodEnd) + 1
	if periodDays != profile.PeriodLengthDays {
		t.Fatalf("expected period span of %d days, got %d", profile.PeriodLengthDays, periodDays)
	}
	if windowDays := daysBetween(result.FertilityWindowStart, result.FertilityWindowEnd); windowDays != 6 {
		t.Fatalf("expected 6-day fertility window, got %d days", windowDays)
	}
}

// bleedingRun produces length consecutive flow days starting at start,
// followed by an explicit flow-free day that closes the segment.
func bleedingRun(start string, length int) []LogEntry {
	day := mustParseDay(start)
	entries := make([]LogEntry, 0, length+1)
	for i := 0; i < length; i++ {
		entries = append(entries, LogEntry{Date: day.AddDate(0, 0, i), Flow: FlowMedium})
	}
	entries = append(entries, LogEntry{Date: day.AddDate(0, 0, length), Flow: FlowNone})
	return entries
}

// historyFromStarts builds a log whose cycle starts are spaced by the given
// lengths, each start a short bleeding run.
func historyFromStarts(first string, lengths ...int) []LogEntry {
	entries := bleedingRun(first, 3)
	cursor := mustParseDay(first)
	for _, length := range lengths {
		cursor = cursor.AddDate(0, 0, length)
		entries = append(entries, bleedingRun(cursor.Format("2006-01-02"), 3)...)
	}
	return entries
}
