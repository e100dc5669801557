package schedule

import (
	"testing"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

func block(start, end time.Time) model.Block {
	return model.Block{ID: "b", Start: start, End: end, Type: model.BlockTypeMeeting}
}

func TestAvailableSlotsComplement(t *testing.T) {
	blocks := []model.Block{
		block(at(7, 0), at(8, 0)),
		block(at(12, 0), at(13, 0)),
	}
	slots := availableSlots(blocks, at(6, 0), at(22, 0))
	want := []Slot{
		{Start: at(6, 0), End: at(7, 0)},
		{Start: at(8, 0), End: at(12, 0)},
		{Start: at(13, 0), End: at(22, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if !slots[i].Start.Equal(want[i].Start) || !slots[i].End.Equal(want[i].End) {
			t.Fatalf("slot %d: got %v-%v, want %v-%v", i, slots[i].Start, slots[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestAvailableSlotsDropShortGaps(t *testing.T) {
	blocks := []model.Block{
		block(at(6, 0), at(8, 50)),
		block(at(9, 0), at(21, 50)),
	}
	slots := availableSlots(blocks, at(6, 0), at(22, 0))
	if len(slots) != 0 {
		t.Fatalf("10-minute gaps should be discarded, got %v", slots)
	}
}

func TestAvailableSlotsMergeOverlappingBlocks(t *testing.T) {
	blocks := []model.Block{
		block(at(7, 0), at(9, 0)),
		block(at(8, 0), at(10, 0)),
	}
	slots := availableSlots(blocks, at(6, 0), at(12, 0))
	want := []Slot{
		{Start: at(6, 0), End: at(7, 0)},
		{Start: at(10, 0), End: at(12, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %v", len(slots), len(want), slots)
	}
	for i := range want {
		if !slots[i].Start.Equal(want[i].Start) || !slots[i].End.Equal(want[i].End) {
			t.Fatalf("slot %d: got %v-%v", i, slots[i].Start, slots[i].End)
		}
	}
}

func TestAvailableSlotsClipToWindow(t *testing.T) {
	blocks := []model.Block{
		block(at(5, 0), at(6, 30)),
		block(at(21, 0), at(23, 0)),
	}
	slots := availableSlots(blocks, at(6, 0), at(22, 0))
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(at(6, 30)) || !slots[0].End.Equal(at(21, 0)) {
		t.Fatalf("slot: %v-%v, want 06:30-21:00", slots[0].Start, slots[0].End)
	}
}

func TestEstimateTaskMinutes(t *testing.T) {
	cases := []struct {
		title string
		notes string
		want  int
	}{
		{"quick email follow-up", "", 15},
		{"Long-form writing", "", 60},
		{"review pull request", "", 30},
		{"follow-up", "quick reply to vendor", 15},
		{"draft proposal", "needs a long uninterrupted stretch", 60},
	}
	for _, tc := range cases {
		got := EstimateTaskMinutes(model.Task{Title: tc.title, Notes: tc.notes})
		if got != tc.want {
			t.Fatalf("%q / %q: got %d, want %d", tc.title, tc.notes, got, tc.want)
		}
	}
}
