package model

import "time"

// Attendee is a meeting participant as reported by the calendar
// provider.
type Attendee struct {
	Email string
}

// Organizer identifies who created a calendar event. Self is true when
// the authenticated user is the organizer.
type Organizer struct {
	Email string
	Self  bool
}

// Event is a calendar event as fetched from the provider. Start and
// End are nil for all-day events, which the planner skips entirely.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       *time.Time
	End         *time.Time
	Attendees   []Attendee
	Organizer   Organizer
}

// IsTimed reports whether the event has a concrete start and end.
func (e Event) IsTimed() bool {
	return e.Start != nil && e.End != nil
}

// IsMeeting reports whether the event has at least one attendee.
func (e Event) IsMeeting() bool {
	return len(e.Attendees) > 0
}

// OnDate reports whether the event starts on the given UTC calendar
// day.
func (e Event) OnDate(date time.Time) bool {
	if e.Start == nil {
		return false
	}
	y1, m1, d1 := e.Start.UTC().Date()
	y2, m2, d2 := date.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Task is a to-do item. Due is nil when the task has no deadline.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Due       *time.Time
	Completed bool
}

// Email is an inbox message considered for response scheduling.
type Email struct {
	ID      string
	Subject string
	From    string
	Labels  []string
}

// HasLabel reports whether the message carries the given provider
// label.
func (e Email) HasLabel(label string) bool {
	for _, l := range e.Labels {
		if l == label {
			return true
		}
	}
	return false
}
