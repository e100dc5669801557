// Package energy maps clock times onto the user's configured energy
// pattern and converts the qualitative level into an alignment score.
package energy

import (
	"github.com/sandeepkv93/briefd/internal/model"
)

// Level is a qualitative energy level for a stretch of the day.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	default:
		return false
	}
}

// Score converts a level to its fixed alignment score.
func (l Level) Score() float64 {
	switch l {
	case LevelHigh:
		return 100
	case LevelLow:
		return 50
	default:
		return 75
	}
}

// NeutralScore is used for items without a time context.
const NeutralScore = 50

// Pattern is one named range of the user's energy configuration.
// Ranges may wrap midnight (End < Start).
type Pattern struct {
	Name  string
	Start model.TimeOfDay
	End   model.TimeOfDay
	Level Level
}

// Model answers energy lookups against an ordered set of patterns.
// It is immutable after construction.
type Model struct {
	patterns []Pattern
}

func NewModel(patterns []Pattern) *Model {
	cp := make([]Pattern, len(patterns))
	copy(cp, patterns)
	return &Model{patterns: cp}
}

// LevelAt returns the energy level for a clock time. The first
// matching pattern wins; with no match the level defaults to medium.
func (m *Model) LevelAt(t model.TimeOfDay) Level {
	for _, p := range m.patterns {
		if t.InRange(p.Start, p.End) {
			return p.Level
		}
	}
	return LevelMedium
}

// ScoreAt returns the alignment score for a clock time.
func (m *Model) ScoreAt(t model.TimeOfDay) float64 {
	return m.LevelAt(t).Score()
}

// Score returns the alignment score for an optional time context. A
// nil time yields the fixed neutral score.
func (m *Model) Score(t *model.TimeOfDay) float64 {
	if t == nil {
		return NeutralScore
	}
	return m.ScoreAt(*t)
}
