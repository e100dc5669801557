package google

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/sandeepkv93/briefd/internal/model"
)

// ApplyBlocks writes the planner-placed blocks onto the primary
// calendar. Fixed blocks are existing events and are left alone.
func (s *Source) ApplyBlocks(ctx context.Context, blocks []model.Block) error {
	for _, b := range blocks {
		if b.IsFixed {
			continue
		}
		ev := blockToEvent(b)
		if _, err := s.cal.Events.Insert("primary", ev).Context(ctx).Do(); err != nil {
			return fmt.Errorf("google: insert block %s: %w", b.ID, err)
		}
	}
	return nil
}

func blockToEvent(b model.Block) *calendar.Event {
	return &calendar.Event{
		Summary: b.Title,
		Start:   &calendar.EventDateTime{DateTime: b.Start.UTC().Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: b.End.UTC().Format(time.RFC3339)},
		ColorId: b.ColorID,
	}
}
