package history

import "time"

// Run records one generated brief: what day it planned, what came out
// of the planner, and whether the brief was actually sent.
type Run struct {
	ID                   string
	PlanDate             time.Time
	WorkLocation         string
	BlockCount           int
	MeetingMinutes       int
	TaskMinutes          int
	ProtectedMinutes     int
	DeepWorkMinutes      int
	NorthStarAlignment   float64
	BalanceScore         float64
	RescheduleCandidates int
	Recipient            string
	GeneratedAt          time.Time
	SentAt               *time.Time
}

// RunListFilter narrows and pages ListRuns.
type RunListFilter struct {
	PlanDate *time.Time
	SentOnly bool
	Limit    int
	Offset   int
}
