package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

func TestBlockRows(t *testing.T) {
	start := time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)
	blocks := []model.Block{
		{
			ID: "protected-deep_work", Title: "[PROTECTED] Deep Work",
			Start: start, End: start.Add(time.Hour),
			Type: model.BlockTypeProtected, HasConflict: true,
		},
		{
			ID: "mtg", Title: "Standup",
			Start: start.Add(3 * time.Hour), End: start.Add(4 * time.Hour),
			Type:     model.BlockTypeMeeting,
			Priority: &model.Priority{Score: 88.4},
		},
	}
	rows := blockRows(blocks)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "07:00" || rows[0][3] != "-" || !strings.Contains(rows[0][4], "(conflict)") {
		t.Fatalf("protected row: %v", rows[0])
	}
	if rows[1][2] != "meeting" || rows[1][3] != "88" {
		t.Fatalf("meeting row: %v", rows[1])
	}
}

func TestMetricsLine(t *testing.T) {
	got := metricsLine(model.Metrics{
		DeepWorkMinutes:    60,
		MeetingMinutes:     120,
		TaskMinutes:        45,
		ProtectedMinutes:   180,
		NorthStarAlignment: 71.6,
		BalanceScore:       93.3,
	})
	for _, want := range []string{"deep work 60m", "meetings 120m", "tasks 45m", "goal 72%", "balance 93%"} {
		if !strings.Contains(got, want) {
			t.Fatalf("metrics line missing %q: %s", want, got)
		}
	}
}
