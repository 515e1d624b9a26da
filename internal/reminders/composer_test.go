package reminders

import (
	"testing"

	"github.com/terraincognita07/selene/internal/cycle"
)

func TestComposeMessageCustomMessageWinsVerbatim(t *testing.T) {
	config := Config{
		Type:     TypePeriodStart,
		Schedule: Schedule{CustomMessage: "  Pack the travel kit!  "},
	}
	prediction := &cycle.Result{NextPeriodStart: mustParseDay("2025-03-10")}

	if got := ComposeMessage(config, prediction); got != "  Pack the travel kit!  " {
		t.Fatalf("expected custom message verbatim, got %q", got)
	}
}

func TestComposeMessageTemplatesInterpolateDates(t *testing.T) {
	prediction := &cycle.Result{
		NextPeriodStart:      mustParseDay("2025-03-10"),
		NextPeriodEnd:        mustParseDay("2025-03-14"),
		FertilityWindowStart: mustParseDay("2025-03-20"),
	}

	cases := []struct {
		reminderType Type
		expected     string
	}{
		{TypePeriodStart, "Your period is expected to start around Mar 10."},
		{TypePeriodEnd, "Your period is expected to end around Mar 14."},
		{TypeFertileWindow, "Your fertile window is expected to open around Mar 20."},
	}
	for _, tc := range cases {
		got := ComposeMessage(Config{Type: tc.reminderType}, prediction)
		if got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.reminderType, tc.expected, got)
		}
	}
}

func TestComposeMessageHabitTypesAreGeneric(t *testing.T) {
	if got := ComposeMessage(Config{Type: TypeMedication}, nil); got != "Time to take your medication." {
		t.Fatalf("unexpected medication message: %q", got)
	}
	if got := ComposeMessage(Config{Type: TypeHydration}, nil); got != "Time to drink some water." {
		t.Fatalf("unexpected hydration message: %q", got)
	}
}

func TestComposeMessageFallsBackWithoutPrediction(t *testing.T) {
	if got := ComposeMessage(Config{Type: TypeCustom}, nil); got != "You have a reminder for today." {
		t.Fatalf("unexpected fallback message: %q", got)
	}
}
