// Package priority derives quadrant classifications and weighted
// composite scores for calendar events, tasks and emails. Scoring is
// pure: inputs are never mutated and identical inputs always produce
// identical annotations.
package priority

import (
	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/model"
)

// Composite score weights.
const (
	weightQuadrant = 0.5
	weightEnergy   = 0.3
	weightGoal     = 0.2
)

// Scorer computes priority annotations from an energy model and a
// goal classifier.
type Scorer struct {
	energy *energy.Model
	goals  GoalClassifier
}

func NewScorer(energyModel *energy.Model, goals GoalClassifier) *Scorer {
	return &Scorer{energy: energyModel, goals: goals}
}

// GoalAlignment exposes the classifier's score for free text. The
// meeting evaluator reuses it for strategic alignment.
func (s *Scorer) GoalAlignment(text string) float64 {
	return s.goals.Alignment(text)
}

// Calculate resolves the Eisenhower quadrant from the two flags and
// combines it with energy and goal alignment into the composite score.
// A nil time context scores neutral energy.
func (s *Scorer) Calculate(important, urgent bool, at *model.TimeOfDay, text string) model.Priority {
	quadrant := model.ClassifyQuadrant(important, urgent)
	energyAlignment := s.energy.Score(at)
	goalAlignment := s.goals.Alignment(text)
	return model.Priority{
		Score:           weightQuadrant*quadrant.Score() + weightEnergy*energyAlignment + weightGoal*goalAlignment,
		Quadrant:        quadrant,
		EnergyAlignment: energyAlignment,
		GoalAlignment:   goalAlignment,
	}
}
