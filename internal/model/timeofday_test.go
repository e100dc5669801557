package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("07:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Hour() != 7 || got.Minute() != 30 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got.String() != "07:30" {
		t.Fatalf("unexpected string: %s", got)
	}
}

func TestParseTimeOfDayRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "late", "25:00", "12:75", "-1:00"} {
		if _, err := ParseTimeOfDay(in); !errors.Is(err, ErrInvalidTimeOfDay) {
			t.Fatalf("input %q: expected ErrInvalidTimeOfDay, got %v", in, err)
		}
	}
}

func TestTimeOfDayAt(t *testing.T) {
	date := time.Date(2026, 3, 14, 17, 45, 12, 0, time.UTC)
	got := NewTimeOfDay(6, 0).At(date)
	want := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInRangeSimple(t *testing.T) {
	start := NewTimeOfDay(11, 0)
	end := NewTimeOfDay(16, 0)
	if !NewTimeOfDay(11, 0).InRange(start, end) {
		t.Fatal("range start should be a member")
	}
	if NewTimeOfDay(16, 0).InRange(start, end) {
		t.Fatal("range end should be exclusive")
	}
	if NewTimeOfDay(5, 0).InRange(start, end) {
		t.Fatal("time before range should not be a member")
	}
}

func TestInRangeWrapsMidnight(t *testing.T) {
	start := NewTimeOfDay(22, 0)
	end := NewTimeOfDay(0, 0)
	if !NewTimeOfDay(23, 30).InRange(start, end) {
		t.Fatal("23:30 should fall in 22:00-00:00")
	}
	if NewTimeOfDay(0, 0).InRange(start, end) {
		t.Fatal("00:00 should be excluded from 22:00-00:00")
	}

	start = NewTimeOfDay(23, 0)
	end = NewTimeOfDay(2, 0)
	if !NewTimeOfDay(1, 0).InRange(start, end) {
		t.Fatal("01:00 should fall in 23:00-02:00")
	}
	if NewTimeOfDay(12, 0).InRange(start, end) {
		t.Fatal("12:00 should not fall in 23:00-02:00")
	}
}
