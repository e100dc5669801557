// Package source defines where planning input comes from. The planner
// itself is provider-agnostic; it consumes plain event, task and email
// records from a DataSource.
package source

import (
	"context"

	"github.com/sandeepkv93/briefd/internal/model"
)

// DataSource supplies one run's worth of raw items.
type DataSource interface {
	// Events returns calendar events from now through the given number
	// of days ahead.
	Events(ctx context.Context, days int) ([]model.Event, error)
	Tasks(ctx context.Context) ([]model.Task, error)
	Emails(ctx context.Context) ([]model.Email, error)
}
