package google

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"

	"github.com/sandeepkv93/briefd/internal/model"
)

const (
	maxEventResults = 100
	maxTaskResults  = 100
	maxMailResults  = 20

	importantMailQuery = "is:important is:unread"
)

// Source is the Google-backed DataSource.
type Source struct {
	cal   *calendar.Service
	tasks *tasks.Service
	gmail *gmail.Service
}

// New authenticates against all three APIs using the credentials and
// token files in credentialsDir.
func New(ctx context.Context, credentialsDir string) (*Source, error) {
	scopes := []string{
		calendar.CalendarScope,
		tasks.TasksReadonlyScope,
		gmail.GmailModifyScope,
	}
	httpClient, err := client(ctx, credentialsDir, scopes)
	if err != nil {
		return nil, err
	}

	calSvc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("google: calendar service: %w", err)
	}
	taskSvc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("google: tasks service: %w", err)
	}
	mailSvc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("google: gmail service: %w", err)
	}
	return &Source{cal: calSvc, tasks: taskSvc, gmail: mailSvc}, nil
}

func (s *Source) Events(ctx context.Context, days int) ([]model.Event, error) {
	now := time.Now().UTC()
	res, err := s.cal.Events.List("primary").
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, days).Format(time.RFC3339)).
		MaxResults(maxEventResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google: list events: %w", err)
	}
	out := make([]model.Event, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, eventFromAPI(item))
	}
	return out, nil
}

func (s *Source) Tasks(ctx context.Context) ([]model.Task, error) {
	res, err := s.tasks.Tasks.List("@default").
		MaxResults(maxTaskResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google: list tasks: %w", err)
	}
	out := make([]model.Task, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, taskFromAPI(item))
	}
	return out, nil
}

func (s *Source) Emails(ctx context.Context) ([]model.Email, error) {
	res, err := s.gmail.Users.Messages.List("me").
		Q(importantMailQuery).
		MaxResults(maxMailResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google: list messages: %w", err)
	}
	out := make([]model.Email, 0, len(res.Messages))
	for _, ref := range res.Messages {
		msg, err := s.gmail.Users.Messages.Get("me", ref.Id).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("google: get message %s: %w", ref.Id, err)
		}
		out = append(out, emailFromAPI(msg))
	}
	return out, nil
}
