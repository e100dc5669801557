package priority

import (
	"testing"

	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/model"
)

func testScorer() *Scorer {
	patterns := []energy.Pattern{
		{Name: "morning", Start: model.NewTimeOfDay(6, 0), End: model.NewTimeOfDay(9, 0), Level: energy.LevelHigh},
		{Name: "evening", Start: model.NewTimeOfDay(19, 0), End: model.NewTimeOfDay(22, 0), Level: energy.LevelLow},
	}
	goals := NewKeywordClassifier(
		[]string{"rain ventures", "ai impact", "launch labs"},
		[]string{"Secure speaking engagements", "Refine core proposition"},
	)
	return NewScorer(energy.NewModel(patterns), goals)
}

func TestCalculateCompositeFormula(t *testing.T) {
	s := testScorer()
	at := model.NewTimeOfDay(7, 0) // high energy -> 100
	got := s.Calculate(true, true, &at, "rain ventures review")
	// 0.5*95 + 0.3*100 + 0.2*90
	want := 0.5*95 + 0.3*100 + 0.2*90
	if got.Score != want {
		t.Fatalf("score: got %v, want %v", got.Score, want)
	}
	if got.Quadrant != model.QuadrantUrgentImportant {
		t.Fatalf("quadrant: got %q", got.Quadrant)
	}
	if got.EnergyAlignment != 100 || got.GoalAlignment != 90 {
		t.Fatalf("components: energy=%v goal=%v", got.EnergyAlignment, got.GoalAlignment)
	}
}

func TestCalculateFormulaHoldsForEveryQuadrant(t *testing.T) {
	s := testScorer()
	at := model.NewTimeOfDay(20, 0) // low energy -> 50
	flags := []struct{ important, urgent bool }{
		{true, true}, {true, false}, {false, true}, {false, false},
	}
	for _, f := range flags {
		p := s.Calculate(f.important, f.urgent, &at, "nothing aligned")
		want := 0.5*p.Quadrant.Score() + 0.3*p.EnergyAlignment + 0.2*p.GoalAlignment
		if p.Score != want {
			t.Fatalf("quadrant %q: score %v does not match formula %v", p.Quadrant, p.Score, want)
		}
	}
}

func TestCalculateWithoutTimeUsesNeutralEnergy(t *testing.T) {
	s := testScorer()
	got := s.Calculate(false, false, nil, "")
	if got.EnergyAlignment != 50 {
		t.Fatalf("energy alignment: got %v, want 50", got.EnergyAlignment)
	}
}

func TestGoalAlignmentPrecedence(t *testing.T) {
	s := testScorer()
	// Contains both a north-star keyword and a secondary-goal word.
	text := "launch labs planning to secure speaking slots"
	if got := s.GoalAlignment(text); got != GoalAlignmentNorthStar {
		t.Fatalf("north star should win: got %v, want %v", got, GoalAlignmentNorthStar)
	}
	if got := s.GoalAlignment("refine the proposition"); got != GoalAlignmentSecondary {
		t.Fatalf("secondary match: got %v, want %v", got, GoalAlignmentSecondary)
	}
	if got := s.GoalAlignment("buy groceries"); got != GoalAlignmentDefault {
		t.Fatalf("no match: got %v, want %v", got, GoalAlignmentDefault)
	}
}

func TestGoalAlignmentIsCaseInsensitive(t *testing.T) {
	s := testScorer()
	if got := s.GoalAlignment("RAIN VENTURES deep dive"); got != GoalAlignmentNorthStar {
		t.Fatalf("case-insensitive match: got %v", got)
	}
}
