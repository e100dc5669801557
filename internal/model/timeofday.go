package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("model: invalid time of day")

// TimeOfDay is a clock time expressed as minutes since midnight.
// It carries no date or zone; callers anchor it with At.
type TimeOfDay int

const minutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(hour, minute), nil
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the clock time on the given date in UTC.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// TimeOfDayFrom extracts the UTC clock time of an instant.
func TimeOfDayFrom(ts time.Time) TimeOfDay {
	utc := ts.UTC()
	return NewTimeOfDay(utc.Hour(), utc.Minute())
}

// InRange reports whether t falls inside [start, end). Ranges where
// end < start wrap midnight: membership is t >= start or t < end.
// Midnight itself is stored as 00:00, so a range ending at midnight
// takes the wrap branch.
func (t TimeOfDay) InRange(start, end TimeOfDay) bool {
	if end < start {
		return t >= start || t < end
	}
	return t >= start && t < end
}
