// Package rolllog provides repository interface and types for the recent
// dice rolls made for each ship
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log Repository

// Kinds of rolls recorded
const (
	KindSpikeDrill    = "spike_drill"
	KindCrisis        = "crisis"
	KindSystemFailure = "system_failure"
	KindWeaponAttack  = "weapon_attack"
)

// Entry is one recorded roll
type Entry struct {
	// Unique identifier for this roll
	ID string `json:"id"`

	ShipID string `json:"ship_id"`

	// One of the Kind constants
	Kind string `json:"kind"`

	// Human-readable result, e.g. "Hull Breach" or "success (9 vs 7)"
	Summary string `json:"summary"`

	// Dice pool that was rolled, empty for table rolls
	Pool       string  `json:"pool,omitempty"`
	Dice       []int32 `json:"dice,omitempty"`
	Kept       []int32 `json:"kept,omitempty"`
	Modifier   int32   `json:"modifier"`
	Total      int32   `json:"total"`
	Difficulty int32   `json:"difficulty,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AppendInput contains the roll to record
type AppendInput struct {
	Entry *Entry
	// TTL refreshes how long the ship's log lives; zero uses the default
	TTL time.Duration
}

// AppendOutput contains the stored roll
type AppendOutput struct {
	Entry *Entry
}

// ListInput selects a ship's log
type ListInput struct {
	ShipID string
	// Limit caps the number of entries; zero returns everything kept
	Limit int32
}

// ListOutput contains entries newest first
type ListOutput struct {
	Entries []*Entry
}

// DeleteInput selects the ship's log to drop
type DeleteInput struct {
	ShipID string
}

// DeleteOutput reports how many entries were dropped
type DeleteOutput struct {
	EntriesDeleted int32
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append records a roll and trims the log to its maximum length
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a ship's recent rolls, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a ship's log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
