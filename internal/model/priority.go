package model

import (
	"errors"
	"fmt"
)

var ErrInvalidQuadrant = errors.New("model: invalid quadrant")

// Quadrant is the Eisenhower classification of an item.
type Quadrant string

const (
	QuadrantUrgentImportant Quadrant = "urgent_important"
	QuadrantImportant       Quadrant = "important"
	QuadrantUrgent          Quadrant = "urgent"
	QuadrantNeither         Quadrant = "neither"
)

func (q Quadrant) IsValid() bool {
	switch q {
	case QuadrantUrgentImportant, QuadrantImportant, QuadrantUrgent, QuadrantNeither:
		return true
	default:
		return false
	}
}

// Score returns the fixed base score for the quadrant.
func (q Quadrant) Score() float64 {
	switch q {
	case QuadrantUrgentImportant:
		return 95
	case QuadrantImportant:
		return 80
	case QuadrantUrgent:
		return 60
	default:
		return 30
	}
}

// ClassifyQuadrant maps the two Eisenhower axes to a quadrant. The
// four boolean combinations are exhaustive and mutually exclusive.
func ClassifyQuadrant(important, urgent bool) Quadrant {
	switch {
	case urgent && important:
		return QuadrantUrgentImportant
	case important:
		return QuadrantImportant
	case urgent:
		return QuadrantUrgent
	default:
		return QuadrantNeither
	}
}

// Priority is the scoring annotation attached to an item. Score is the
// weighted composite 0.5*quadrant + 0.3*energy + 0.2*goal.
type Priority struct {
	Score           float64
	Quadrant        Quadrant
	EnergyAlignment float64
	GoalAlignment   float64
}

func (p Priority) Validate() error {
	if !p.Quadrant.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuadrant, p.Quadrant)
	}
	if p.Score < 0 || p.Score > 100 {
		return fmt.Errorf("model: priority score %v out of range", p.Score)
	}
	return nil
}

// MeetingPriority extends Priority with the meeting evaluation fields.
// UserNecessity is nominally a 1-5 scale though the current heuristic
// only produces 3, 4 or 5. StrategicAlignment is goal alignment
// divided by 20, so its reachable values are 1.5, 3.5 and 4.5.
type MeetingPriority struct {
	Priority
	MeetingScore        float64
	HasAgenda           bool
	HasOutcomes         bool
	UserNecessity       int
	StrategicAlignment  float64
	DecisionAuthority   bool
	RescheduleCandidate bool
}
