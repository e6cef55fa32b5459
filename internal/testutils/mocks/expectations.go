// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	shiprepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship"
	shiprepomock "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship/mock"
)

// ExpectShipLoad expects one read of ship by ID
func ExpectShipLoad(ctx context.Context, repo *shiprepomock.MockRepository, ship *swn.Ship) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, shiprepo.GetInput{ID: ship.ID}).
		Return(&shiprepo.GetOutput{Ship: ship}, nil)
}

// ExpectShipSave expects one write and echoes the saved ship back
func ExpectShipSave(ctx context.Context, repo *shiprepomock.MockRepository) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input shiprepo.UpdateInput) (*shiprepo.UpdateOutput, error) {
			return &shiprepo.UpdateOutput{Ship: input.Ship}, nil
		})
}

// ExpectShipMissing expects a read of shipID that finds nothing
func ExpectShipMissing(ctx context.Context, repo *shiprepomock.MockRepository, shipID string, err error) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, shiprepo.GetInput{ID: shipID}).
		Return(nil, err)
}
