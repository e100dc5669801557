package meeting

import "github.com/sandeepkv93/briefd/internal/model"

// Reschedule reason texts, in the order they are checked.
const (
	ReasonNoAgenda     = "No clear agenda"
	ReasonNoOutcomes   = "No clear expected outcomes"
	ReasonNotCritical  = "Your presence may not be critical"
	ReasonLowAlignment = "Low alignment with strategic goals"
	ReasonNoDecisions  = "No decisions expected to be made"
)

// Reasons explains why a meeting was flagged for rescheduling. The
// checks run in a fixed order so the output is deterministic.
func Reasons(mp model.MeetingPriority) []string {
	reasons := make([]string, 0, 5)
	if !mp.HasAgenda {
		reasons = append(reasons, ReasonNoAgenda)
	}
	if !mp.HasOutcomes {
		reasons = append(reasons, ReasonNoOutcomes)
	}
	if mp.UserNecessity <= 3 {
		reasons = append(reasons, ReasonNotCritical)
	}
	if mp.StrategicAlignment <= 2 {
		reasons = append(reasons, ReasonLowAlignment)
	}
	if !mp.DecisionAuthority {
		reasons = append(reasons, ReasonNoDecisions)
	}
	return reasons
}
