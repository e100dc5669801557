package google

import (
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/tasks/v1"

	"github.com/sandeepkv93/briefd/internal/model"
)

// eventFromAPI converts a calendar event. All-day events carry a Date
// instead of a DateTime; they map to nil times and are later skipped
// by the scorer.
func eventFromAPI(ev *calendar.Event) model.Event {
	out := model.Event{
		ID:          ev.Id,
		Title:       ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
	}
	if ev.Start != nil {
		out.Start = parseEventTime(ev.Start.DateTime)
	}
	if ev.End != nil {
		out.End = parseEventTime(ev.End.DateTime)
	}
	for _, a := range ev.Attendees {
		out.Attendees = append(out.Attendees, model.Attendee{Email: a.Email})
	}
	if ev.Organizer != nil {
		out.Organizer = model.Organizer{Email: ev.Organizer.Email, Self: ev.Organizer.Self}
	}
	return out
}

func parseEventTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &ts
}

func taskFromAPI(t *tasks.Task) model.Task {
	return model.Task{
		ID:        t.Id,
		Title:     t.Title,
		Notes:     t.Notes,
		Due:       parseEventTime(t.Due),
		Completed: t.Status == "completed",
	}
}

func emailFromAPI(msg *gmail.Message) model.Email {
	out := model.Email{
		ID:     msg.Id,
		Labels: msg.LabelIds,
	}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch h.Name {
			case "Subject":
				out.Subject = h.Value
			case "From":
				out.From = h.Value
			}
		}
	}
	return out
}
