// Package ledger records every credit movement made by ship operations
package ledger

//go:generate mockgen -destination=mock/mock_repository.go -package=ledgermock github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger Repository

import (
	"context"
	"time"
)

// Kind classifies a ledger entry
type Kind string

// Entry kinds
const (
	KindPayment     Kind = "payment"
	KindMaintenance Kind = "maintenance"
	KindRefuel      Kind = "refuel"
	KindResupply    Kind = "resupply"
)

// Entry is one debit from a ship's credit pool
type Entry struct {
	ID     string
	ShipID string
	Kind   Kind
	// Amount is the credits debited
	Amount int64
	// BalanceAfter is the credit pool once the debit applied
	BalanceAfter int64
	// GameDate is the in-fiction date the debit covers, if any
	GameDate  string
	Note      string
	CreatedAt time.Time
}

// RecordInput contains the entry to store
type RecordInput struct {
	Entry *Entry
}

// RecordOutput contains the stored entry
type RecordOutput struct {
	Entry *Entry
}

// ListInput filters a ship's ledger
type ListInput struct {
	ShipID string
	// Kind restricts the listing to one kind when set
	Kind  Kind
	Limit int
}

// ListOutput contains entries newest first
type ListOutput struct {
	Entries []*Entry
	// Total is the sum of all listed amounts
	Total int64
}

// Repository defines the interface for ledger storage
type Repository interface {
	// Record stores a new entry
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists for a duplicate ID
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// List returns a ship's entries, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
