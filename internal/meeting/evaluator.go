// Package meeting specializes priority scoring for calendar events
// with attendees and recommends which meetings to reschedule.
package meeting

import (
	"strings"

	"github.com/sandeepkv93/briefd/internal/model"
	"github.com/sandeepkv93/briefd/internal/priority"
)

// RescheduleThreshold is the meeting score under which a meeting is
// flagged as a reschedule candidate.
const RescheduleThreshold = 60

// Evaluator derives meeting quality signals from event text and
// attendance, and folds them into a priority annotation.
type Evaluator struct {
	scorer *priority.Scorer
}

func NewEvaluator(scorer *priority.Scorer) *Evaluator {
	return &Evaluator{scorer: scorer}
}

// Evaluate scores a meeting. Callers must pass a timed event with at
// least one attendee; all-day events are filtered out upstream.
//
// The meeting score is 20*agenda + 20*outcomes + 10*necessity +
// 10*strategic + 20*decision. Strategic alignment is goal alignment
// divided by 20, which lands on 1.5/3.5/4.5 rather than the nominal
// 1-5 scale; the raw formula is kept deliberately.
func (e *Evaluator) Evaluate(event model.Event) model.MeetingPriority {
	description := strings.ToLower(event.Description)

	hasAgenda := strings.Contains(description, "agenda")
	hasOutcomes := strings.Contains(description, "outcome") || strings.Contains(description, "objective")
	decisionAuthority := strings.Contains(description, "decision") || strings.Contains(description, "approve")

	isOrganizer := event.Organizer.Self
	necessity := 3
	switch {
	case isOrganizer:
		necessity = 5
	case len(event.Attendees) <= 3:
		necessity = 4
	}

	strategic := e.scorer.GoalAlignment(event.Description+" "+event.Title) / 20

	meetingScore := 20*boolScore(hasAgenda) +
		20*boolScore(hasOutcomes) +
		10*float64(necessity) +
		10*strategic +
		20*boolScore(decisionAuthority)

	important := strategic >= 3 || decisionAuthority
	urgent := isOrganizer || strings.Contains(description, "urgent")

	var at *model.TimeOfDay
	if event.Start != nil {
		tod := model.TimeOfDayFrom(*event.Start)
		at = &tod
	}
	base := e.scorer.Calculate(important, urgent, at, event.Description)

	return model.MeetingPriority{
		Priority:            base,
		MeetingScore:        meetingScore,
		HasAgenda:           hasAgenda,
		HasOutcomes:         hasOutcomes,
		UserNecessity:       necessity,
		StrategicAlignment:  strategic,
		DecisionAuthority:   decisionAuthority,
		RescheduleCandidate: meetingScore < RescheduleThreshold,
	}
}

func boolScore(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
