package schedule

import (
	"math"

	"github.com/sandeepkv93/briefd/internal/model"
)

// idealWorkRatio is the target share of scheduled time spent on work
// (meetings, tasks, emails) versus protected personal time.
const idealWorkRatio = 2.0 / 3.0

// computeMetrics aggregates the finalized block list. The north-star
// figure is a duration-weighted mean of goal alignment over work
// blocks; protected time does not count toward it.
func computeMetrics(blocks []model.Block) model.Metrics {
	var m model.Metrics
	var alignmentWeighted float64
	var alignmentMinutes int
	for _, b := range blocks {
		minutes := b.DurationMinutes()
		m.TotalScheduledMinutes += minutes
		switch b.Type {
		case model.BlockTypeMeeting:
			m.MeetingMinutes += minutes
		case model.BlockTypeTask, model.BlockTypeEmail:
			m.TaskMinutes += minutes
		case model.BlockTypeProtected:
			m.ProtectedMinutes += minutes
			if b.Category == "deep_work" {
				m.DeepWorkMinutes += minutes
			}
		}
		if b.Type != model.BlockTypeProtected && b.Priority != nil {
			alignmentWeighted += b.Priority.GoalAlignment * float64(minutes)
			alignmentMinutes += minutes
		}
	}
	if alignmentMinutes > 0 {
		m.NorthStarAlignment = alignmentWeighted / float64(alignmentMinutes)
	}
	m.BalanceScore = balanceScore(m.MeetingMinutes+m.TaskMinutes, m.ProtectedMinutes)
	return m
}

// balanceScore is 100 when work and protected time sit at the ideal
// two-to-one ratio, falling off linearly as the day tilts either way.
// An empty schedule scores 0.
func balanceScore(workMinutes, protectedMinutes int) float64 {
	total := workMinutes + protectedMinutes
	if total == 0 {
		return 0
	}
	ratio := float64(workMinutes) / float64(total)
	return 100 - math.Abs(idealWorkRatio-ratio)*100
}
