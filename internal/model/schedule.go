package model

import "time"

// RescheduleCandidate is a meeting flagged for potential moving or
// declining, with human-readable reasons.
type RescheduleCandidate struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Organizer string
	Attendees []string
	Reasons   []string
}

// Metrics aggregates the finalized schedule.
type Metrics struct {
	DeepWorkMinutes       int
	MeetingMinutes        int
	TaskMinutes           int
	ProtectedMinutes      int
	TotalScheduledMinutes int
	// NorthStarAlignment is the duration-weighted mean goal alignment
	// across meeting, task and email blocks.
	NorthStarAlignment float64
	// BalanceScore is 100 at the ideal 2:1 work-to-personal ratio.
	BalanceScore float64
}

// Schedule is the day-level planning result. It is built in stages by
// the schedule builder and read-only afterwards.
type Schedule struct {
	Date                 time.Time
	DayStart             time.Time
	DayEnd               time.Time
	WorkLocation         string
	Blocks               []Block
	RescheduleCandidates []RescheduleCandidate
	Metrics              Metrics
}
