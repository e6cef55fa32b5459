// Package ship provides the interface for ship persistence
package ship

//go:generate mockgen -destination=mock/mock_repository.go -package=shipmock github.com/KirkDiggler/swn-ship-api/internal/repositories/ship Repository

import (
	"context"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// Repository defines the interface for ship persistence
type Repository interface {
	// Create stores a new ship
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a ship with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a ship by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the ship doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing ship
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the ship doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a ship by ID
	// Returns errors.NotFound if the ship doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every ship, or only those of one owner when OwnerID is set
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a ship
type CreateInput struct {
	Ship *swn.Ship
}

// CreateOutput defines the output for creating a ship
type CreateOutput struct {
	Ship *swn.Ship
}

// GetInput defines the input for getting a ship
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a ship
type GetOutput struct {
	Ship *swn.Ship
}

// UpdateInput defines the input for updating a ship
type UpdateInput struct {
	Ship *swn.Ship
}

// UpdateOutput defines the output for updating a ship
type UpdateOutput struct {
	Ship *swn.Ship
}

// DeleteInput defines the input for deleting a ship
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a ship
type DeleteOutput struct{}

// ListInput filters the ship listing
type ListInput struct {
	OwnerID string
}

// ListOutput contains ships ordered by creation time
type ListOutput struct {
	Ships []*swn.Ship
}
