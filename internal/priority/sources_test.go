package priority

import (
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestScoreEventsSkipsAllDayEvents(t *testing.T) {
	s := testScorer()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "all-day", Title: "Conference"},
		{ID: "timed", Title: "Planning", Start: timePtr(start), End: timePtr(start.Add(time.Hour))},
	}
	got := s.ScoreEvents(events, nil)
	if len(got) != 1 || got[0].Event.ID != "timed" {
		t.Fatalf("expected only the timed event, got %d", len(got))
	}
}

func TestScoreEventsTextMarkers(t *testing.T) {
	s := testScorer()
	start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "tagged", Title: "[urgent] Fix deploy", Start: timePtr(start), End: timePtr(start.Add(time.Hour))},
		{ID: "marked", Title: "Review", Description: "important budget review", Start: timePtr(start), End: timePtr(start.Add(time.Hour))},
		{ID: "plain", Title: "Coffee", Start: timePtr(start), End: timePtr(start.Add(time.Hour))},
	}
	got := s.ScoreEvents(events, nil)
	byID := map[string]model.ScoredEvent{}
	for _, ev := range got {
		byID[ev.Event.ID] = ev
	}
	if byID["tagged"].Priority.Quadrant != model.QuadrantUrgent {
		t.Fatalf("tagged: got %q", byID["tagged"].Priority.Quadrant)
	}
	if byID["marked"].Priority.Quadrant != model.QuadrantImportant {
		t.Fatalf("marked: got %q", byID["marked"].Priority.Quadrant)
	}
	if byID["plain"].Priority.Quadrant != model.QuadrantNeither {
		t.Fatalf("plain: got %q", byID["plain"].Priority.Quadrant)
	}
}

func TestScoreTasksExcludesCompletedAndForcesOverdueUrgent(t *testing.T) {
	s := testScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "done", Title: "Shipped", Completed: true},
		{ID: "overdue", Title: "Send invoice", Due: timePtr(now.AddDate(0, 0, -2))},
		{ID: "due-today", Title: "Reply to board", Due: timePtr(now)},
		{ID: "future", Title: "Quarterly plan", Due: timePtr(now.AddDate(0, 0, 3))},
	}
	got := s.ScoreTasks(tasks, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 scored tasks, got %d", len(got))
	}
	byID := map[string]model.ScoredTask{}
	for _, task := range got {
		byID[task.Task.ID] = task
	}
	if byID["overdue"].Priority.Quadrant != model.QuadrantUrgent {
		t.Fatalf("overdue task should be urgent, got %q", byID["overdue"].Priority.Quadrant)
	}
	if byID["due-today"].Priority.Quadrant != model.QuadrantUrgent {
		t.Fatalf("task due today should be urgent, got %q", byID["due-today"].Priority.Quadrant)
	}
	if byID["future"].Priority.Quadrant != model.QuadrantNeither {
		t.Fatalf("future task should not be urgent, got %q", byID["future"].Priority.Quadrant)
	}
}

func TestScoreEmailsFlags(t *testing.T) {
	s := testScorer()
	emails := []model.Email{
		{ID: "labeled", Subject: "Q2 numbers", Labels: []string{"IMPORTANT", "INBOX"}},
		{ID: "asap", Subject: "Need this ASAP"},
		{ID: "plain", Subject: "Newsletter"},
	}
	got := s.ScoreEmails(emails)
	byID := map[string]model.ScoredEmail{}
	for _, email := range got {
		byID[email.Email.ID] = email
	}
	if byID["labeled"].Priority.Quadrant != model.QuadrantImportant {
		t.Fatalf("labeled: got %q", byID["labeled"].Priority.Quadrant)
	}
	if byID["asap"].Priority.Quadrant != model.QuadrantUrgent {
		t.Fatalf("asap: got %q", byID["asap"].Priority.Quadrant)
	}
	if byID["plain"].Priority.Quadrant != model.QuadrantNeither {
		t.Fatalf("plain: got %q", byID["plain"].Priority.Quadrant)
	}
}

func TestScoreSortsDescendingAndStable(t *testing.T) {
	s := testScorer()
	emails := []model.Email{
		{ID: "first-neither", Subject: "hello"},
		{ID: "important", Subject: "important decision"},
		{ID: "second-neither", Subject: "hi again"},
	}
	got := s.ScoreEmails(emails)
	if got[0].Email.ID != "important" {
		t.Fatalf("highest score should sort first, got %q", got[0].Email.ID)
	}
	// Equal scores keep their original relative order.
	if got[1].Email.ID != "first-neither" || got[2].Email.ID != "second-neither" {
		t.Fatalf("tie order not stable: %q, %q", got[1].Email.ID, got[2].Email.ID)
	}
}

func TestScoringIsIdempotent(t *testing.T) {
	s := testScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "a", Title: "Send invoice", Notes: "urgent"},
		{ID: "b", Title: "Quarterly plan", Notes: "important ai impact"},
	}
	first := s.ScoreTasks(tasks, now)
	second := s.ScoreTasks(tasks, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("scoring the same input twice should produce identical annotations")
	}
}
