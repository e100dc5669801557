package model

import (
	"errors"
	"testing"
	"time"
)

func TestBlockValidateSuccess(t *testing.T) {
	block := Block{
		ID:    "evt-1",
		Title: "Weekly sync",
		Start: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		Type:  BlockTypeMeeting,
	}
	if err := block.Validate(); err != nil {
		t.Fatalf("expected valid block, got %v", err)
	}
	if block.DurationMinutes() != 60 {
		t.Fatalf("duration: got %d, want 60", block.DurationMinutes())
	}
}

func TestBlockValidateRejectsInvertedInterval(t *testing.T) {
	block := Block{
		ID:    "evt-1",
		Start: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Type:  BlockTypeTask,
	}
	if err := block.Validate(); err == nil {
		t.Fatal("expected error for start >= end")
	}
}

func TestBlockValidateEnums(t *testing.T) {
	block := Block{
		ID:    "b",
		Start: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		Type:  BlockType("nap"),
	}
	if err := block.Validate(); !errors.Is(err, ErrInvalidBlockType) {
		t.Fatalf("expected ErrInvalidBlockType, got %v", err)
	}

	block.Type = BlockTypeProtected
	block.ProtectionLevel = ProtectionLevel("extreme")
	if err := block.Validate(); !errors.Is(err, ErrInvalidProtectionLevel) {
		t.Fatalf("expected ErrInvalidProtectionLevel, got %v", err)
	}
}

func TestBlockOverlaps(t *testing.T) {
	base := Block{
		Start: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
	}
	overlapping := Block{
		Start: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC),
	}
	adjacent := Block{
		Start: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	if !base.Overlaps(overlapping) {
		t.Fatal("expected overlap")
	}
	if base.Overlaps(adjacent) {
		t.Fatal("adjacent blocks should not overlap")
	}
}

func TestClassifyQuadrantExhaustive(t *testing.T) {
	cases := []struct {
		important, urgent bool
		want              Quadrant
		score             float64
	}{
		{true, true, QuadrantUrgentImportant, 95},
		{true, false, QuadrantImportant, 80},
		{false, true, QuadrantUrgent, 60},
		{false, false, QuadrantNeither, 30},
	}
	for _, tc := range cases {
		got := ClassifyQuadrant(tc.important, tc.urgent)
		if got != tc.want {
			t.Fatalf("important=%v urgent=%v: got %q, want %q", tc.important, tc.urgent, got, tc.want)
		}
		if got.Score() != tc.score {
			t.Fatalf("%q score: got %v, want %v", got, got.Score(), tc.score)
		}
	}
}
