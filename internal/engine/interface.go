// Package engine defines the ship operations rules engine
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/swn-ship-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// Engine applies ship rules. Every operation takes the current ship value and
// returns a new one; the input ship is never modified. Persisting the result
// is the caller's job.
type Engine interface {
	// Hull templates
	ApplyHullTemplate(ctx context.Context, input *ApplyHullTemplateInput) (*ApplyHullTemplateOutput, error)
	ListHullTemplates(ctx context.Context) (*ListHullTemplatesOutput, error)

	// Life support and travel
	ConsumeLifeSupport(ctx context.Context, input *ConsumeLifeSupportInput) (*ConsumeLifeSupportOutput, error)
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)
	AttemptSpikeTravel(ctx context.Context, input *AttemptSpikeTravelInput) (*AttemptSpikeTravelOutput, error)
	Refuel(ctx context.Context, input *RefuelInput) (*RefuelOutput, error)
	ResupplyLifeSupport(
		ctx context.Context,
		input *ResupplyLifeSupportInput,
	) (*ResupplyLifeSupportOutput, error)

	// Combat and damage
	RollCrisis(ctx context.Context, input *RollCrisisInput) (*RollCrisisOutput, error)
	RollSystemFailure(ctx context.Context, input *RollSystemFailureInput) (*RollSystemFailureOutput, error)
	SetItemBroken(ctx context.Context, input *SetItemBrokenInput) (*SetItemBrokenOutput, error)
	DestroyItem(ctx context.Context, input *DestroyItemInput) (*DestroyItemOutput, error)
	FireWeapon(ctx context.Context, input *FireWeaponInput) (*FireWeaponOutput, error)

	// Finance
	SettleSchedule(ctx context.Context, input *SettleScheduleInput) (*SettleScheduleOutput, error)
	CalculateCost(ctx context.Context, input *CalculateCostInput) (*CalculateCostOutput, error)

	// Crew roster
	AddCrew(ctx context.Context, input *AddCrewInput) (*AddCrewOutput, error)
	RemoveCrew(ctx context.Context, input *RemoveCrewInput) (*RemoveCrewOutput, error)
	AssignRole(ctx context.Context, input *AssignRoleInput) (*AssignRoleOutput, error)
}

// HullTable is satisfied by *swn.HullTable
type HullTable interface {
	Lookup(hullType string) (swn.HullTemplate, bool)
	Types() []string
}
