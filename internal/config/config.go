// Package config holds the user preferences that drive prioritization
// and schedule building. Preferences are loaded once at the program
// boundary and passed by value to each component; there is no shared
// mutable configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/model"
)

var ErrInvalidPreferences = errors.New("config: invalid preferences")

// ProtectedBlock describes one recurring personal-time category.
// Floating blocks (deep work) carry a preferred and an alternative
// start plus a duration; fixed blocks carry a literal start/end range,
// which may wrap midnight.
type ProtectedBlock struct {
	Category         string
	Title            string
	Level            model.ProtectionLevel
	Floating         bool
	Start            model.TimeOfDay
	End              model.TimeOfDay
	PreferredStart   model.TimeOfDay
	AlternativeStart model.TimeOfDay
	DurationMinutes  int
}

// OverrideRule states when a fixed commitment may displace a protected
// block: the conflicting block's quadrant must be in Quadrants and its
// score at least MinScore.
type OverrideRule struct {
	Quadrants []model.Quadrant
	MinScore  float64
}

// Allows reports whether a priority satisfies the rule.
func (r OverrideRule) Allows(p model.Priority) bool {
	if p.Score < r.MinScore {
		return false
	}
	for _, q := range r.Quadrants {
		if p.Quadrant == q {
			return true
		}
	}
	return false
}

// Goals are the user's strategic goals used for text alignment.
type Goals struct {
	NorthStar         string
	NorthStarKeywords []string
	Secondary         []string
}

// Window bounds the part of the day open to task allocation.
type Window struct {
	Start model.TimeOfDay
	End   model.TimeOfDay
}

// BriefSettings control morning brief delivery.
type BriefSettings struct {
	Recipient       string
	SubjectTemplate string
	SendTime        model.TimeOfDay
}

// Preferences is the complete user configuration.
type Preferences struct {
	DataDir          string
	EnergyPatterns   []energy.Pattern
	WorkLocations    map[time.Weekday]string
	DefaultLocation  string
	ProtectedBlocks  []ProtectedBlock
	Goals            Goals
	Overrides        map[model.ProtectionLevel]OverrideRule
	Window           Window
	Colors           map[string]string
	Brief            BriefSettings
	MinScheduleScore float64
}

// WorkLocationFor resolves the work location for a weekday.
func (p Preferences) WorkLocationFor(day time.Weekday) string {
	if loc, ok := p.WorkLocations[day]; ok {
		return loc
	}
	return p.DefaultLocation
}

// Validate checks the invariants the planner relies on.
func (p Preferences) Validate() error {
	for _, pat := range p.EnergyPatterns {
		if !pat.Level.IsValid() {
			return fmt.Errorf("%w: energy pattern %q has level %q", ErrInvalidPreferences, pat.Name, pat.Level)
		}
	}
	for _, pb := range p.ProtectedBlocks {
		if !pb.Level.IsValid() {
			return fmt.Errorf("%w: protected block %q has level %q", ErrInvalidPreferences, pb.Category, pb.Level)
		}
		if pb.Floating && pb.DurationMinutes <= 0 {
			return fmt.Errorf("%w: floating block %q needs a positive duration", ErrInvalidPreferences, pb.Category)
		}
	}
	for level, rule := range p.Overrides {
		if !level.IsValid() {
			return fmt.Errorf("%w: override rule for unknown level %q", ErrInvalidPreferences, level)
		}
		for _, q := range rule.Quadrants {
			if !q.IsValid() {
				return fmt.Errorf("%w: override rule %q lists quadrant %q", ErrInvalidPreferences, level, q)
			}
		}
	}
	if !p.Window.Start.IsValid() || !p.Window.End.IsValid() || p.Window.Start >= p.Window.End {
		return fmt.Errorf("%w: scheduling window %s-%s", ErrInvalidPreferences, p.Window.Start, p.Window.End)
	}
	return nil
}

// Default returns the built-in preferences. They mirror the sample
// configuration shipped with the project and are a working setup on
// their own.
func Default() Preferences {
	return Preferences{
		DataDir: defaultDataDir(),
		EnergyPatterns: []energy.Pattern{
			{Name: "research", Start: model.NewTimeOfDay(6, 0), End: model.NewTimeOfDay(8, 0), Level: energy.LevelHigh},
			{Name: "calls", Start: model.NewTimeOfDay(8, 0), End: model.NewTimeOfDay(9, 0), Level: energy.LevelHigh},
			{Name: "exercise", Start: model.NewTimeOfDay(9, 30), End: model.NewTimeOfDay(10, 30), Level: energy.LevelHigh},
			{Name: "meetings", Start: model.NewTimeOfDay(11, 0), End: model.NewTimeOfDay(16, 0), Level: energy.LevelMedium},
			{Name: "admin", Start: model.NewTimeOfDay(16, 0), End: model.NewTimeOfDay(19, 0), Level: energy.LevelMedium},
			{Name: "family", Start: model.NewTimeOfDay(19, 0), End: model.NewTimeOfDay(22, 0), Level: energy.LevelLow},
			{Name: "learning", Start: model.NewTimeOfDay(22, 0), End: model.NewTimeOfDay(0, 0), Level: energy.LevelMedium},
		},
		WorkLocations: map[time.Weekday]string{
			time.Monday:    "home",
			time.Tuesday:   "office",
			time.Wednesday: "office",
			time.Thursday:  "office",
			time.Friday:    "home",
		},
		DefaultLocation: "home",
		ProtectedBlocks: []ProtectedBlock{
			{
				Category:         "deep_work",
				Title:            "[PROTECTED] Deep Work",
				Level:            model.ProtectionHigh,
				Floating:         true,
				PreferredStart:   model.NewTimeOfDay(7, 0),
				AlternativeStart: model.NewTimeOfDay(11, 0),
				DurationMinutes:  60,
			},
			{
				Category: "physical_wellbeing",
				Title:    "[PROTECTED] CrossFit",
				Level:    model.ProtectionHighest,
				Start:    model.NewTimeOfDay(9, 30),
				End:      model.NewTimeOfDay(10, 30),
			},
			{
				Category: "family_time",
				Title:    "[PROTECTED] Family Time",
				Level:    model.ProtectionHighest,
				Start:    model.NewTimeOfDay(19, 0),
				End:      model.NewTimeOfDay(22, 0),
			},
			{
				Category: "learning_time",
				Title:    "[PROTECTED] Learning: AI Developments",
				Level:    model.ProtectionMedium,
				Start:    model.NewTimeOfDay(22, 0),
				End:      model.NewTimeOfDay(0, 0),
			},
			{
				Category: "research_time",
				Title:    "[PROTECTED] Research: AI Tools",
				Level:    model.ProtectionMedium,
				Start:    model.NewTimeOfDay(6, 0),
				End:      model.NewTimeOfDay(8, 0),
			},
		},
		Goals: Goals{
			NorthStar:         "Generate 10 RAIN ventures AI impact sessions and 5 Launch Labs projects generating $250K",
			NorthStarKeywords: []string{"rain ventures", "ai impact", "launch labs"},
			Secondary: []string{
				"Establish RAIN ventures as a leading AI-first technology venture studio",
				"Secure speaking engagements",
				"Refine core proposition",
				"Align team around growth",
			},
		},
		Overrides: map[model.ProtectionLevel]OverrideRule{
			model.ProtectionHighest: {Quadrants: []model.Quadrant{model.QuadrantUrgentImportant}, MinScore: 95},
			model.ProtectionHigh:    {Quadrants: []model.Quadrant{model.QuadrantUrgentImportant}, MinScore: 90},
			model.ProtectionMedium:  {Quadrants: []model.Quadrant{model.QuadrantUrgentImportant, model.QuadrantImportant}, MinScore: 80},
			model.ProtectionLow:     {Quadrants: []model.Quadrant{model.QuadrantUrgentImportant, model.QuadrantImportant, model.QuadrantUrgent}, MinScore: 60},
		},
		Window: Window{Start: model.NewTimeOfDay(6, 0), End: model.NewTimeOfDay(22, 0)},
		Colors: map[string]string{
			"deep_work":          "10",
			"physical_wellbeing": "2",
			"family_time":        "9",
			"learning_time":      "6",
			"research_time":      "5",
		},
		Brief: BriefSettings{
			SubjectTemplate: "Your Daily Schedule: %s",
			SendTime:        model.NewTimeOfDay(6, 0),
		},
		MinScheduleScore: 70,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".briefd"
	}
	return home + "/.config/briefd"
}
