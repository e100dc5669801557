package priority

import (
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

// MeetingEvaluator scores events that have attendees. The meeting
// package provides the implementation; the indirection keeps this
// package free of meeting-specific policy.
type MeetingEvaluator interface {
	Evaluate(event model.Event) model.MeetingPriority
}

// ScoreEvents annotates calendar events. All-day events (no concrete
// start/end) are skipped. Events with attendees go through the meeting
// evaluator; the rest are scored from importance/urgency text markers.
// The result is sorted by score descending, stable on ties.
func (s *Scorer) ScoreEvents(events []model.Event, eval MeetingEvaluator) []model.ScoredEvent {
	out := make([]model.ScoredEvent, 0, len(events))
	for _, ev := range events {
		if !ev.IsTimed() {
			continue
		}
		if ev.IsMeeting() && eval != nil {
			mp := eval.Evaluate(ev)
			out = append(out, model.ScoredEvent{Event: ev, Priority: mp.Priority, Meeting: &mp})
			continue
		}
		important := containsMarker(ev.Description, "important") || containsTag(ev.Title, "important")
		urgent := containsMarker(ev.Description, "urgent") || containsTag(ev.Title, "urgent")
		at := model.TimeOfDayFrom(*ev.Start)
		out = append(out, model.ScoredEvent{
			Event:    ev,
			Priority: s.Calculate(important, urgent, &at, ev.Description),
		})
	}
	sortByScore(out, func(e model.ScoredEvent) float64 { return e.Priority.Score })
	return out
}

// ScoreTasks annotates tasks. Completed tasks are excluded. A task due
// on or before the current date is urgent regardless of text markers.
// Tasks carry no time context, so energy alignment is neutral.
func (s *Scorer) ScoreTasks(tasks []model.Task, now time.Time) []model.ScoredTask {
	today := now.UTC().Truncate(24 * time.Hour)
	out := make([]model.ScoredTask, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		important := containsMarker(task.Notes, "important") || containsTag(task.Title, "important")
		urgent := containsMarker(task.Notes, "urgent") || containsTag(task.Title, "urgent")
		if task.Due != nil {
			due := task.Due.UTC().Truncate(24 * time.Hour)
			if !due.After(today) {
				urgent = true
			}
		}
		out = append(out, model.ScoredTask{
			Task:     task,
			Priority: s.Calculate(important, urgent, nil, task.Notes),
		})
	}
	sortByScore(out, func(t model.ScoredTask) float64 { return t.Priority.Score })
	return out
}

// ScoreEmails annotates emails. Importance comes from the subject or
// the provider's IMPORTANT label; urgency from "urgent"/"asap" in the
// subject.
func (s *Scorer) ScoreEmails(emails []model.Email) []model.ScoredEmail {
	out := make([]model.ScoredEmail, 0, len(emails))
	for _, email := range emails {
		important := containsMarker(email.Subject, "important") || email.HasLabel("IMPORTANT")
		urgent := containsMarker(email.Subject, "urgent") || containsMarker(email.Subject, "asap")
		out = append(out, model.ScoredEmail{
			Email:    email,
			Priority: s.Calculate(important, urgent, nil, email.Subject),
		})
	}
	sortByScore(out, func(e model.ScoredEmail) float64 { return e.Priority.Score })
	return out
}

func containsMarker(text, marker string) bool {
	return strings.Contains(strings.ToLower(text), marker)
}

func containsTag(title, marker string) bool {
	return strings.Contains(strings.ToLower(title), "["+marker+"]")
}

func sortByScore[T any](items []T, score func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return score(items[i]) > score(items[j])
	})
}
