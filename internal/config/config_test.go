package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	prefs := Default()
	if err := prefs.Validate(); err != nil {
		t.Fatalf("default preferences should validate: %v", err)
	}
	if prefs.Window.Start != model.NewTimeOfDay(6, 0) || prefs.Window.End != model.NewTimeOfDay(22, 0) {
		t.Fatalf("unexpected default window: %s-%s", prefs.Window.Start, prefs.Window.End)
	}
	if prefs.MinScheduleScore != 70 {
		t.Fatalf("default min schedule score: got %v, want 70", prefs.MinScheduleScore)
	}
}

func TestWorkLocationForUnmappedWeekdayFallsBack(t *testing.T) {
	prefs := Default()
	if got := prefs.WorkLocationFor(time.Saturday); got != "home" {
		t.Fatalf("saturday location: got %q, want home", got)
	}
	if got := prefs.WorkLocationFor(time.Tuesday); got != "office" {
		t.Fatalf("tuesday location: got %q, want office", got)
	}
}

func TestOverrideRuleAllows(t *testing.T) {
	rule := Default().Overrides[model.ProtectionHighest]
	ok := model.Priority{Score: 96, Quadrant: model.QuadrantUrgentImportant}
	if !rule.Allows(ok) {
		t.Fatal("score 96 urgent_important should satisfy the highest rule")
	}
	lowScore := model.Priority{Score: 94, Quadrant: model.QuadrantUrgentImportant}
	if rule.Allows(lowScore) {
		t.Fatal("score 94 should not satisfy the highest rule")
	}
	wrongQuadrant := model.Priority{Score: 99, Quadrant: model.QuadrantImportant}
	if rule.Allows(wrongQuadrant) {
		t.Fatal("important quadrant should not satisfy the highest rule")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	doc := `
work_locations:
  monday: office
  friday: office
window:
  start: "07:00"
  end: "21:00"
brief:
  recipient: founder@example.com
min_schedule_score: 65
`
	path := filepath.Join(t.TempDir(), "briefd.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := prefs.WorkLocationFor(time.Monday); got != "office" {
		t.Fatalf("monday location: got %q, want office", got)
	}
	if prefs.Window.Start != model.NewTimeOfDay(7, 0) {
		t.Fatalf("window start: got %s, want 07:00", prefs.Window.Start)
	}
	if prefs.Brief.Recipient != "founder@example.com" {
		t.Fatalf("recipient: got %q", prefs.Brief.Recipient)
	}
	if prefs.MinScheduleScore != 65 {
		t.Fatalf("min schedule score: got %v, want 65", prefs.MinScheduleScore)
	}
	// Sections absent from the file keep defaults.
	if len(prefs.EnergyPatterns) == 0 || len(prefs.ProtectedBlocks) == 0 {
		t.Fatal("defaults should survive a partial config file")
	}
}

func TestLoadRejectsBadTime(t *testing.T) {
	doc := `
window:
  start: "late"
  end: "21:00"
`
	path := filepath.Join(t.TempDir(), "briefd.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for invalid time")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BRIEFD_BRIEF_RECIPIENT", "env@example.com")
	t.Setenv("BRIEFD_MIN_SCHEDULE_SCORE", "80")
	prefs := FromEnv(Default())
	if prefs.Brief.Recipient != "env@example.com" {
		t.Fatalf("recipient: got %q", prefs.Brief.Recipient)
	}
	if prefs.MinScheduleScore != 80 {
		t.Fatalf("min schedule score: got %v, want 80", prefs.MinScheduleScore)
	}
}
