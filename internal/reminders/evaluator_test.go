package reminders

import (
	"testing"
	"time"

	"github.com/terraincognita07/selene/internal/cycle"
)

func TestEvaluatePeriodStartFiresOnExactDayOnly(t *testing.T) {
	prediction := &cycle.Result{NextPeriodStart: mustParseDay("2025-03-10")}
	config := Config{ID: "r1", Type: TypePeriodStart, Enabled: true}

	cases := []struct {
		today string
		due   bool
	}{
		{"2025-03-06", false},
		{"2025-03-07", true},
		{"2025-03-08", false},
	}
	for _, tc := range cases {
		if got := Evaluate(config, prediction, mustParseDay(tc.today)); got != tc.due {
			t.Fatalf("today %s: expected due=%v, got %v", tc.today, tc.due, got)
		}
	}
}

func TestEvaluateHonorsConfiguredDaysBefore(t *testing.T) {
	daysBefore := 1
	prediction := &cycle.Result{NextPeriodEnd: mustParseDay("2025-03-14")}
	config := Config{
		ID:       "r2",
		Type:     TypePeriodEnd,
		Schedule: Schedule{DaysBefore: &daysBefore},
		Enabled:  true,
	}

	if !Evaluate(config, prediction, mustParseDay("2025-03-13")) {
		t.Fatal("expected period_end reminder due one day before")
	}
	if Evaluate(config, prediction, mustParseDay("2025-03-11")) {
		t.Fatal("expected period_end reminder not due three days before")
	}
}

func TestEvaluateFertileWindow(t *testing.T) {
	prediction := &cycle.Result{FertilityWindowStart: mustParseDay("2025-03-20")}
	config := Config{ID: "r3", Type: TypeFertileWindow, Enabled: true}

	if !Evaluate(config, prediction, mustParseDay("2025-03-17")) {
		t.Fatal("expected fertile_window reminder due three days before window opens")
	}
	if Evaluate(config, &cycle.Result{}, mustParseDay("2025-03-17")) {
		t.Fatal("expected fertile_window reminder not due without a window date")
	}
}

func TestEvaluateDisabledNeverDue(t *testing.T) {
	config := Config{ID: "r4", Type: TypeHydration, Enabled: false}
	if Evaluate(config, nil, mustParseDay("2025-03-10")) {
		t.Fatal("expected disabled reminder not due")
	}
}

func TestEvaluateHabitTypesNeedNoPrediction(t *testing.T) {
	medication := Config{ID: "r5", Type: TypeMedication, Enabled: true}
	if !Evaluate(medication, nil, mustParseDay("2025-03-10")) {
		t.Fatal("expected daily medication reminder due without a prediction")
	}

	once := Config{
		ID:       "r6",
		Type:     TypeHydration,
		Schedule: Schedule{Frequency: FrequencyOnce},
		Enabled:  true,
	}
	if Evaluate(once, nil, mustParseDay("2025-03-10")) {
		t.Fatal("expected once-frequency hydration reminder not due")
	}
}

func TestEvaluateCycleTypesSkippedWithoutPrediction(t *testing.T) {
	for _, reminderType := range []Type{TypePeriodStart, TypePeriodEnd, TypeFertileWindow, TypeCustom} {
		config := Config{ID: "r7", Type: reminderType, Enabled: true}
		if Evaluate(config, nil, mustParseDay("2025-03-10")) {
			t.Fatalf("expected %s reminder not due without a prediction", reminderType)
		}
	}
}

func TestEvaluateCustomNeverDue(t *testing.T) {
	prediction := &cycle.Result{NextPeriodStart: mustParseDay("2025-03-10")}
	config := Config{ID: "r8", Type: TypeCustom, Enabled: true}
	if Evaluate(config, prediction, mustParseDay("2025-03-07")) {
		t.Fatal("expected custom reminder never due from the evaluator")
	}
}

func TestEvaluateWithDeliverySuppressesRepeats(t *testing.T) {
	prediction := &cycle.Result{NextPeriodStart: mustParseDay("2025-03-10")}
	config := Config{ID: "r9", Type: TypePeriodStart, Enabled: true}
	today := mustParseDay("2025-03-07")

	delivered := func(reminderID string, day time.Time) bool {
		return reminderID == "r9" && day.Equal(today)
	}

	if EvaluateWithDelivery(config, prediction, today, delivered) {
		t.Fatal("expected already delivered reminder to be suppressed")
	}
	if !EvaluateWithDelivery(config, prediction, today, nil) {
		t.Fatal("expected reminder due without a delivery predicate")
	}
}

func mustParseDay(date string) time.Time {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return day
}
