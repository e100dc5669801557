package model

// Scored records pair an input item with its priority annotation.
// Inputs are never mutated; scoring produces these instead.

type ScoredEvent struct {
	Event    Event
	Priority Priority
	// Meeting is non-nil for events evaluated as meetings.
	Meeting *MeetingPriority
}

type ScoredTask struct {
	Task     Task
	Priority Priority
}

type ScoredEmail struct {
	Email    Email
	Priority Priority
}
