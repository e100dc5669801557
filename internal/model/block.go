package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidBlockType       = errors.New("model: invalid block type")
	ErrInvalidProtectionLevel = errors.New("model: invalid protection level")
)

// BlockType categorizes a scheduled time block.
type BlockType string

const (
	BlockTypeMeeting   BlockType = "meeting"
	BlockTypeProtected BlockType = "protected"
	BlockTypeTask      BlockType = "task"
	BlockTypeEmail     BlockType = "email"
)

func (b BlockType) IsValid() bool {
	switch b {
	case BlockTypeMeeting, BlockTypeProtected, BlockTypeTask, BlockTypeEmail:
		return true
	default:
		return false
	}
}

// ProtectionLevel controls how hard a protected block resists being
// overridden by fixed commitments.
type ProtectionLevel string

const (
	ProtectionHighest ProtectionLevel = "highest"
	ProtectionHigh    ProtectionLevel = "high"
	ProtectionMedium  ProtectionLevel = "medium"
	ProtectionLow     ProtectionLevel = "low"
)

func (p ProtectionLevel) IsValid() bool {
	switch p {
	case ProtectionHighest, ProtectionHigh, ProtectionMedium, ProtectionLow:
		return true
	default:
		return false
	}
}

// Block is one scheduled interval of the day. IsFixed marks immovable
// input (existing multi-attendee meetings) as opposed to blocks the
// planner placed itself.
type Block struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Type     BlockType
	Priority *Priority
	IsFixed  bool

	// Meeting blocks.
	Attendees int
	Location  string

	// Protected blocks.
	ProtectionLevel ProtectionLevel
	Category        string
	HasConflict     bool

	// Calendar color id for blocks pushed back to the provider.
	ColorID string
}

func (b Block) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("model: block id is required")
	}
	if !b.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidBlockType, b.Type)
	}
	if !b.Start.Before(b.End) {
		return fmt.Errorf("model: block %s start %v is not before end %v", b.ID, b.Start, b.End)
	}
	if b.Type == BlockTypeProtected && !b.ProtectionLevel.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProtectionLevel, b.ProtectionLevel)
	}
	return nil
}

// DurationMinutes is the block length in whole minutes.
func (b Block) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// Overlaps reports whether the two blocks share any time.
func (b Block) Overlaps(other Block) bool {
	return b.Start.Before(other.End) && b.End.After(other.Start)
}
