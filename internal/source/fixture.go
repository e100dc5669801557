package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

// FixtureSource reads all items from a JSON file. It is used for
// offline runs and tests; the days argument to Events is ignored since
// fixtures are curated by hand.
type FixtureSource struct {
	events []model.Event
	tasks  []model.Task
	emails []model.Email
}

type fixtureFile struct {
	Events []fixtureEvent `json:"events"`
	Tasks  []fixtureTask  `json:"tasks"`
	Emails []fixtureEmail `json:"emails"`
}

type fixtureEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Attendees   []string `json:"attendees"`
	Organizer   struct {
		Email string `json:"email"`
		Self  bool   `json:"self"`
	} `json:"organizer"`
}

type fixtureTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Due       string `json:"due"`
	Completed bool   `json:"completed"`
}

type fixtureEmail struct {
	ID      string   `json:"id"`
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	Labels  []string `json:"labels"`
}

// LoadFixtures parses a fixture file. Timestamps are RFC3339; empty
// strings mean "no time", matching all-day events and undated tasks.
func LoadFixtures(path string) (*FixtureSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read fixtures: %w", err)
	}
	var file fixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("source: parse fixtures %s: %w", path, err)
	}

	fs := &FixtureSource{}
	for _, fe := range file.Events {
		start, err := optionalTime(fe.Start)
		if err != nil {
			return nil, fmt.Errorf("source: event %s start: %w", fe.ID, err)
		}
		end, err := optionalTime(fe.End)
		if err != nil {
			return nil, fmt.Errorf("source: event %s end: %w", fe.ID, err)
		}
		attendees := make([]model.Attendee, 0, len(fe.Attendees))
		for _, email := range fe.Attendees {
			attendees = append(attendees, model.Attendee{Email: email})
		}
		fs.events = append(fs.events, model.Event{
			ID:          fe.ID,
			Title:       fe.Title,
			Description: fe.Description,
			Location:    fe.Location,
			Start:       start,
			End:         end,
			Attendees:   attendees,
			Organizer:   model.Organizer{Email: fe.Organizer.Email, Self: fe.Organizer.Self},
		})
	}
	for _, ft := range file.Tasks {
		due, err := optionalTime(ft.Due)
		if err != nil {
			return nil, fmt.Errorf("source: task %s due: %w", ft.ID, err)
		}
		fs.tasks = append(fs.tasks, model.Task{
			ID:        ft.ID,
			Title:     ft.Title,
			Notes:     ft.Notes,
			Due:       due,
			Completed: ft.Completed,
		})
	}
	for _, fm := range file.Emails {
		fs.emails = append(fs.emails, model.Email{
			ID:      fm.ID,
			Subject: fm.Subject,
			From:    fm.From,
			Labels:  fm.Labels,
		})
	}
	return fs, nil
}

func (f *FixtureSource) Events(_ context.Context, _ int) ([]model.Event, error) {
	return f.events, nil
}

func (f *FixtureSource) Tasks(_ context.Context) ([]model.Task, error) {
	return f.tasks, nil
}

func (f *FixtureSource) Emails(_ context.Context) ([]model.Email, error) {
	return f.emails, nil
}

func optionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
