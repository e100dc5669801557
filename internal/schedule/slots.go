package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/briefd/internal/model"
)

// MinSlotMinutes is the shortest gap worth offering to the allocator.
const MinSlotMinutes = 15

// EmailMinutes is the fixed duration budgeted for an email response.
const EmailMinutes = 15

// Slot is a free interval inside the scheduling window. Slots are
// consumed and shrunk during one allocation pass and never persisted.
// EnergyAlignment is rated once from the slot's original start and
// kept as the slot shrinks.
type Slot struct {
	Start           time.Time
	End             time.Time
	EnergyAlignment float64
}

func (s Slot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// availableSlots computes the complement of the placed blocks within
// [windowStart, windowEnd), dropping gaps shorter than MinSlotMinutes.
// Blocks may overlap each other; the sweep merges them as it goes.
func availableSlots(blocks []model.Block, windowStart, windowEnd time.Time) []Slot {
	sorted := make([]model.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var slots []Slot
	cursor := windowStart
	for _, b := range sorted {
		if !cursor.Before(windowEnd) {
			break
		}
		if !b.End.After(cursor) {
			continue
		}
		if b.Start.After(cursor) {
			end := b.Start
			if end.After(windowEnd) {
				end = windowEnd
			}
			appendSlot(&slots, Slot{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(windowEnd) {
		appendSlot(&slots, Slot{Start: cursor, End: windowEnd})
	}
	return slots
}

func appendSlot(slots *[]Slot, s Slot) {
	if s.DurationMinutes() >= MinSlotMinutes {
		*slots = append(*slots, s)
	}
}

// slotScore rates how well a slot suits a candidate of the given
// quadrant. Urgent work favors earlier hours; important work favors
// high-energy time. Earliness tracks the slot's current start while
// the energy alignment stays pinned to the original one.
func slotScore(q model.Quadrant, s Slot) float64 {
	earliness := 100 * (1 - float64(s.Start.UTC().Hour())/24)
	switch q {
	case model.QuadrantUrgentImportant:
		return 0.5*s.EnergyAlignment + 0.5*earliness
	case model.QuadrantUrgent:
		return earliness
	default:
		return s.EnergyAlignment
	}
}

// EstimateTaskMinutes guesses a task's duration from its title and
// notes: "quick" means 15 minutes, "long" means 60, anything else 30.
func EstimateTaskMinutes(t model.Task) int {
	lowered := strings.ToLower(t.Title + " " + t.Notes)
	switch {
	case strings.Contains(lowered, "quick"):
		return 15
	case strings.Contains(lowered, "long"):
		return 60
	default:
		return 30
	}
}
