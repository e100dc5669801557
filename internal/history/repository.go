package history

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("history: not found")
	ErrAlreadySent = errors.New("history: brief already sent for this date")
)

// Repository is the run log. Schedules themselves are never stored;
// only the metadata needed to list past runs and to guard against
// sending the same day's brief twice.
type Repository interface {
	CreateRun(ctx context.Context, in Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, filter RunListFilter) ([]Run, error)

	// MarkSent records delivery of a run's brief.
	MarkSent(ctx context.Context, id string, at time.Time) error

	// SentForDate reports whether any run for the plan date has been
	// delivered. Callers use it to avoid double sends; see
	// ErrAlreadySent.
	SentForDate(ctx context.Context, planDate time.Time) (bool, error)
}
