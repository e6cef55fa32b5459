// Package crew provides the interface for crew member persistence. Crew
// members live independently of ships; ships only reference their IDs.
package crew

//go:generate mockgen -destination=mock/mock_repository.go -package=crewmock github.com/KirkDiggler/swn-ship-api/internal/repositories/crew Repository

import (
	"context"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// Repository defines the interface for crew member persistence
type Repository interface {
	// Create stores a new crew member
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a crew member by ID
	// Returns errors.NotFound if the crew member doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves several crew members in the requested order.
	// Unknown IDs are reported in Missing rather than failing the call.
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// Update replaces an existing crew member
	// Returns errors.NotFound if the crew member doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a crew member
	// Returns errors.NotFound if the crew member doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a crew member
type CreateInput struct {
	Member *swn.CrewMember
}

// CreateOutput defines the output for creating a crew member
type CreateOutput struct {
	Member *swn.CrewMember
}

// GetInput defines the input for getting a crew member
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a crew member
type GetOutput struct {
	Member *swn.CrewMember
}

// GetManyInput lists the IDs to fetch
type GetManyInput struct {
	IDs []string
}

// GetManyOutput contains the found members and the IDs that were not found
type GetManyOutput struct {
	Members []*swn.CrewMember
	Missing []string
}

// UpdateInput defines the input for updating a crew member
type UpdateInput struct {
	Member *swn.CrewMember
}

// UpdateOutput defines the output for updating a crew member
type UpdateOutput struct {
	Member *swn.CrewMember
}

// DeleteInput defines the input for deleting a crew member
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a crew member
type DeleteOutput struct{}
