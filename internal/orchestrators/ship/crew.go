package ship

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	crewrepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/crew"
)

// CreateCrewMember registers a crew member that ships can then board
func (o *Orchestrator) CreateCrewMember(
	ctx context.Context,
	input *CreateCrewMemberInput,
) (*CreateCrewMemberOutput, error) {
	if input == nil || input.Member == nil {
		return nil, errors.InvalidArgument("crew member is required")
	}

	member := *input.Member
	if member.ID == "" {
		member.ID = o.idGen.Generate()
	}

	out, err := o.crewRepo.Create(ctx, crewrepo.CreateInput{Member: &member})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create crew member")
	}

	slog.Info("crew member created",
		"crew_id", out.Member.ID,
		"type", out.Member.Type)

	return &CreateCrewMemberOutput{Member: out.Member}, nil
}

// GetCrewMember loads a crew member
func (o *Orchestrator) GetCrewMember(ctx context.Context, input *GetCrewMemberInput) (*GetCrewMemberOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crew ID is required")
	}

	out, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: input.CrewID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get crew member %s", input.CrewID)
	}

	return &GetCrewMemberOutput{Member: out.Member}, nil
}

// UpdateCrewMember replaces a crew member's skills and attributes
func (o *Orchestrator) UpdateCrewMember(
	ctx context.Context,
	input *UpdateCrewMemberInput,
) (*UpdateCrewMemberOutput, error) {
	if input == nil || input.Member == nil {
		return nil, errors.InvalidArgument("crew member is required")
	}
	if input.Member.ID == "" {
		return nil, errors.InvalidArgument("crew ID is required")
	}

	out, err := o.crewRepo.Update(ctx, crewrepo.UpdateInput{Member: input.Member})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update crew member %s", input.Member.ID)
	}

	return &UpdateCrewMemberOutput{Member: out.Member}, nil
}

// AddCrew boards a registered crew member. Boarding twice is a no-op.
func (o *Orchestrator) AddCrew(ctx context.Context, input *AddCrewInput) (*AddCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CrewID == "" {
		return nil, errors.InvalidArgument("crew ID is required")
	}

	if _, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: input.CrewID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get crew member %s", input.CrewID)
	}

	var added bool
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.AddCrew(ctx, &engine.AddCrewInput{
			Ship:   current,
			CrewID: input.CrewID,
		})
		if err != nil {
			return nil, err
		}
		added = out.Added
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		slog.Info("crew boarded",
			"ship_id", ship.ID,
			"crew_id", input.CrewID)
	}

	return &AddCrewOutput{Ship: ship, Added: added}, nil
}

// RemoveCrew takes a crew member off the roster and out of every role
func (o *Orchestrator) RemoveCrew(ctx context.Context, input *RemoveCrewInput) (*RemoveCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.RemoveCrewOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.RemoveCrew(ctx, &engine.RemoveCrewInput{
			Ship:   current,
			CrewID: input.CrewID,
		})
		if err != nil {
			return nil, err
		}
		result = out
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	if result.Removed {
		slog.Info("crew removed",
			"ship_id", ship.ID,
			"crew_id", input.CrewID,
			"roles_cleared", result.RolesCleared)
	}

	return &RemoveCrewOutput{
		Ship:         ship,
		Removed:      result.Removed,
		RolesCleared: result.RolesCleared,
	}, nil
}

// AssignRole puts a roster member in a ship role, or clears the role
func (o *Orchestrator) AssignRole(ctx context.Context, input *AssignRoleInput) (*AssignRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.AssignRole(ctx, &engine.AssignRoleInput{
			Ship:   current,
			Role:   input.Role,
			CrewID: input.CrewID,
		})
		if err != nil {
			return nil, err
		}
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	return &AssignRoleOutput{Ship: ship}, nil
}
