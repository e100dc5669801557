// Package schedule assembles a single day's time-blocked plan from
// prioritized events, tasks and emails. The builder runs a fixed
// pipeline of stages, each taking a schedule snapshot and returning a
// new one, so stage ordering is explicit and each stage can be tested
// alone.
package schedule

import (
	"sort"
	"time"

	"github.com/sandeepkv93/briefd/internal/config"
	"github.com/sandeepkv93/briefd/internal/energy"
	"github.com/sandeepkv93/briefd/internal/meeting"
	"github.com/sandeepkv93/briefd/internal/model"
)

// Inputs are the scored items the builder plans from. Scoring must be
// complete before building; the builder never re-scores.
type Inputs struct {
	Events []model.ScoredEvent
	Tasks  []model.ScoredTask
	Emails []model.ScoredEmail
}

// Builder turns scored items into a day schedule.
type Builder struct {
	prefs  config.Preferences
	energy *energy.Model
}

func NewBuilder(prefs config.Preferences, energyModel *energy.Model) *Builder {
	return &Builder{prefs: prefs, energy: energyModel}
}

// Build runs the five stages in order: day setup, fixed meeting
// blocks, protected blocks with conflict resolution, greedy task and
// email allocation, and reschedule candidates. Blocks are then sorted
// by start time and metrics computed over the final set.
func (b *Builder) Build(date time.Time, in Inputs) model.Schedule {
	s := b.initDay(date)
	s = b.placeFixed(s, in.Events)
	s = b.placeProtected(s)
	s = b.allocate(s, in.Tasks, in.Emails)
	s = b.collectRescheduleCandidates(s, in.Events)
	return finalize(s)
}

func (b *Builder) initDay(date time.Time) model.Schedule {
	utc := date.UTC()
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return model.Schedule{
		Date:         dayStart,
		DayStart:     dayStart,
		DayEnd:       dayStart.Add(24*time.Hour - time.Second),
		WorkLocation: b.prefs.WorkLocationFor(dayStart.Weekday()),
	}
}

// placeFixed turns every target-day event with more than one attendee
// into an immovable meeting block.
func (b *Builder) placeFixed(s model.Schedule, events []model.ScoredEvent) model.Schedule {
	out := snapshot(s)
	for _, se := range events {
		ev := se.Event
		if !ev.IsTimed() || !ev.OnDate(s.Date) || len(ev.Attendees) <= 1 {
			continue
		}
		priority := se.Priority
		out.Blocks = append(out.Blocks, model.Block{
			ID:        ev.ID,
			Title:     ev.Title,
			Start:     *ev.Start,
			End:       *ev.End,
			Type:      model.BlockTypeMeeting,
			Priority:  &priority,
			IsFixed:   true,
			Attendees: len(ev.Attendees),
			Location:  ev.Location,
		})
	}
	return out
}

// placeProtected materializes the configured protected categories and
// resolves each against the fixed blocks already placed. A protected
// block survives a conflict unless every conflicting fixed block
// satisfies the override rule for its protection level; deep work gets
// one retry at its alternative start before being dropped.
func (b *Builder) placeProtected(s model.Schedule) model.Schedule {
	out := snapshot(s)
	fixed := fixedBlocks(out.Blocks)
	for _, pb := range b.prefs.ProtectedBlocks {
		block, ok := b.resolveProtected(pb, s.Date, fixed)
		if ok {
			out.Blocks = append(out.Blocks, block)
		}
	}
	return out
}

func (b *Builder) resolveProtected(pb config.ProtectedBlock, date time.Time, fixed []model.Block) (model.Block, bool) {
	block := b.materialize(pb, date, false)
	conflicts := overlapping(block, fixed)
	if len(conflicts) == 0 {
		return block, true
	}
	if b.overridable(pb.Level, conflicts) {
		return model.Block{}, false
	}
	if pb.Floating {
		alt := b.materialize(pb, date, true)
		if len(overlapping(alt, fixed)) == 0 {
			return alt, true
		}
		return model.Block{}, false
	}
	block.HasConflict = true
	return block, true
}

// materialize anchors a protected category on the target date. Fixed
// ranges ending strictly before their start wrap into the next day;
// equal times make an empty block.
func (b *Builder) materialize(pb config.ProtectedBlock, date time.Time, alternative bool) model.Block {
	var start, end time.Time
	if pb.Floating {
		at := pb.PreferredStart
		if alternative {
			at = pb.AlternativeStart
		}
		start = at.At(date)
		end = start.Add(time.Duration(pb.DurationMinutes) * time.Minute)
	} else {
		start = pb.Start.At(date)
		end = pb.End.At(date)
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
	}
	return model.Block{
		ID:              "protected-" + pb.Category,
		Title:           pb.Title,
		Start:           start,
		End:             end,
		Type:            model.BlockTypeProtected,
		ProtectionLevel: pb.Level,
		Category:        pb.Category,
		ColorID:         b.prefs.Colors[pb.Category],
	}
}

// overridable reports whether every conflicting fixed block clears the
// override rule configured for the protection level. A single block
// below the bar keeps the protected time in place.
func (b *Builder) overridable(level model.ProtectionLevel, conflicts []model.Block) bool {
	rule, ok := b.prefs.Overrides[level]
	if !ok {
		return false
	}
	for _, c := range conflicts {
		if c.Priority == nil || !rule.Allows(*c.Priority) {
			return false
		}
	}
	return true
}

type candidate struct {
	id       string
	title    string
	minutes  int
	kind     model.BlockType
	priority model.Priority
}

// allocate greedily places high-scoring tasks and emails into the free
// gaps of the scheduling window. Candidates are taken in descending
// score order; each gets the best-scoring slot that still fits it, or
// is silently left off the schedule.
func (b *Builder) allocate(s model.Schedule, tasks []model.ScoredTask, emails []model.ScoredEmail) model.Schedule {
	out := snapshot(s)

	var candidates []candidate
	for _, st := range tasks {
		if st.Priority.Score < b.prefs.MinScheduleScore {
			continue
		}
		candidates = append(candidates, candidate{
			id:       "task-" + st.Task.ID,
			title:    st.Task.Title,
			minutes:  EstimateTaskMinutes(st.Task),
			kind:     model.BlockTypeTask,
			priority: st.Priority,
		})
	}
	for _, se := range emails {
		if se.Priority.Score < b.prefs.MinScheduleScore {
			continue
		}
		candidates = append(candidates, candidate{
			id:       "email-" + se.Email.ID,
			title:    "Respond: " + se.Email.Subject,
			minutes:  EmailMinutes,
			kind:     model.BlockTypeEmail,
			priority: se.Priority,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority.Score > candidates[j].priority.Score
	})

	windowStart := b.prefs.Window.Start.At(s.Date)
	windowEnd := b.prefs.Window.End.At(s.Date)
	slots := availableSlots(out.Blocks, windowStart, windowEnd)
	for i := range slots {
		slots[i].EnergyAlignment = b.energy.ScoreAt(model.TimeOfDayFrom(slots[i].Start))
	}

	for _, c := range candidates {
		idx := b.bestSlot(c, slots)
		if idx < 0 {
			continue
		}
		priority := c.priority
		start := slots[idx].Start
		end := start.Add(time.Duration(c.minutes) * time.Minute)
		out.Blocks = append(out.Blocks, model.Block{
			ID:       c.id,
			Title:    c.title,
			Start:    start,
			End:      end,
			Type:     c.kind,
			Priority: &priority,
		})
		slots[idx].Start = end
		if slots[idx].DurationMinutes() < MinSlotMinutes {
			slots = append(slots[:idx], slots[idx+1:]...)
		}
	}
	return out
}

// bestSlot returns the index of the highest-scoring slot long enough
// for the candidate, or -1. The first strict maximum wins.
func (b *Builder) bestSlot(c candidate, slots []Slot) int {
	best := -1
	bestScore := 0.0
	for i, slot := range slots {
		if slot.DurationMinutes() < c.minutes {
			continue
		}
		score := slotScore(c.priority.Quadrant, slot)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// collectRescheduleCandidates surfaces the target-day meetings the
// evaluator flagged, each with its reason list.
func (b *Builder) collectRescheduleCandidates(s model.Schedule, events []model.ScoredEvent) model.Schedule {
	out := snapshot(s)
	for _, se := range events {
		ev := se.Event
		if se.Meeting == nil || !se.Meeting.RescheduleCandidate {
			continue
		}
		if !ev.IsTimed() || !ev.OnDate(s.Date) {
			continue
		}
		attendees := make([]string, 0, len(ev.Attendees))
		for _, a := range ev.Attendees {
			attendees = append(attendees, a.Email)
		}
		out.RescheduleCandidates = append(out.RescheduleCandidates, model.RescheduleCandidate{
			ID:        ev.ID,
			Title:     ev.Title,
			Start:     *ev.Start,
			End:       *ev.End,
			Organizer: ev.Organizer.Email,
			Attendees: attendees,
			Reasons:   meeting.Reasons(*se.Meeting),
		})
	}
	return out
}

func finalize(s model.Schedule) model.Schedule {
	out := snapshot(s)
	sort.SliceStable(out.Blocks, func(i, j int) bool {
		return out.Blocks[i].Start.Before(out.Blocks[j].Start)
	})
	out.Metrics = computeMetrics(out.Blocks)
	return out
}

// snapshot copies the schedule so stages never alias each other's
// block slices.
func snapshot(s model.Schedule) model.Schedule {
	out := s
	out.Blocks = make([]model.Block, len(s.Blocks))
	copy(out.Blocks, s.Blocks)
	out.RescheduleCandidates = make([]model.RescheduleCandidate, len(s.RescheduleCandidates))
	copy(out.RescheduleCandidates, s.RescheduleCandidates)
	return out
}

func fixedBlocks(blocks []model.Block) []model.Block {
	var fixed []model.Block
	for _, b := range blocks {
		if b.IsFixed {
			fixed = append(fixed, b)
		}
	}
	return fixed
}

func overlapping(b model.Block, others []model.Block) []model.Block {
	var hits []model.Block
	for _, o := range others {
		if b.Overlaps(o) {
			hits = append(hits, o)
		}
	}
	return hits
}
