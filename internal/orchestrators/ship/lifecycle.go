package ship

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
	shiprepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship"
)

// CreateShip commissions a new ship on the requested hull with full fuel
// tanks and, unless a stock is given, full life support
func (o *Orchestrator) CreateShip(ctx context.Context, input *CreateShipInput) (*CreateShipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("hull_type", input.HullType, vb)
	errors.ValidateNonNegative("fuel_max", int64(input.FuelMax), vb)
	errors.ValidateNonNegative("spike_drive_rating", int64(input.SpikeDriveRating), vb)
	errors.ValidateNonNegative("life_support_days", int64(input.LifeSupportDays), vb)
	errors.ValidateNonNegative("credit_pool", input.Finance.CreditPool, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	fuelMax := input.FuelMax
	if fuelMax == 0 {
		fuelMax = DefaultFuelMax
	}
	drive := input.SpikeDriveRating
	if drive == 0 {
		drive = DefaultSpikeDriveRating
	}

	draft := &swn.Ship{
		ID:              o.idGen.Generate(),
		OwnerID:         input.OwnerID,
		Name:            input.Name,
		Fuel:            swn.Resource{Value: fuelMax, Max: fuelMax},
		SpikeDrive:      swn.SpikeDrive{Value: drive, Max: drive},
		LifeSupportDays: swn.Resource{Value: input.LifeSupportDays},
		Roles:           make(map[string]string),
		Finance:         input.Finance,
	}

	hulled, err := o.engine.ApplyHullTemplate(ctx, &engine.ApplyHullTemplateInput{
		Ship:     draft,
		HullType: input.HullType,
	})
	if err != nil {
		return nil, err
	}
	if input.LifeSupportDays == 0 {
		hulled.Ship.LifeSupportDays.Value = hulled.Ship.LifeSupportDays.Max
	}

	out, err := o.shipRepo.Create(ctx, shiprepo.CreateInput{Ship: hulled.Ship})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ship")
	}

	slog.Info("ship commissioned",
		"ship_id", out.Ship.ID,
		"owner_id", out.Ship.OwnerID,
		"hull_type", out.Ship.HullType)

	return &CreateShipOutput{Ship: out.Ship}, nil
}

// GetShip loads a ship and resolves its roster
func (o *Orchestrator) GetShip(ctx context.Context, input *GetShipInput) (*GetShipOutput, error) {
	if input == nil || input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}

	ship, err := o.loadShip(ctx, input.ShipID)
	if err != nil {
		return nil, err
	}

	crew, missing, err := o.loadRoster(ctx, ship)
	if err != nil {
		return nil, err
	}

	return &GetShipOutput{
		Ship:        ship,
		Crew:        crew,
		MissingCrew: missing,
	}, nil
}

// ListShips lists every ship, or one owner's ships
func (o *Orchestrator) ListShips(ctx context.Context, input *ListShipsInput) (*ListShipsOutput, error) {
	if input == nil {
		input = &ListShipsInput{}
	}

	out, err := o.shipRepo.List(ctx, shiprepo.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ships")
	}

	return &ListShipsOutput{Ships: out.Ships}, nil
}

// DeleteShip scraps a ship and drops its roll log. Ledger history is kept.
func (o *Orchestrator) DeleteShip(ctx context.Context, input *DeleteShipInput) (*DeleteShipOutput, error) {
	if input == nil || input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}

	unlock := o.locks.lock(input.ShipID)
	defer unlock()

	if _, err := o.shipRepo.Delete(ctx, shiprepo.DeleteInput{ID: input.ShipID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ship %s", input.ShipID)
	}

	if _, err := o.rollLogRepo.Delete(ctx, rolllog.DeleteInput{ShipID: input.ShipID}); err != nil {
		slog.Warn("failed to drop roll log for deleted ship",
			"ship_id", input.ShipID,
			"error", err)
	}

	slog.Info("ship deleted", "ship_id", input.ShipID)

	return &DeleteShipOutput{}, nil
}

// ListHullTemplates returns the hull template table
func (o *Orchestrator) ListHullTemplates(
	ctx context.Context,
	_ *ListHullTemplatesInput,
) (*ListHullTemplatesOutput, error) {
	out, err := o.engine.ListHullTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hull templates")
	}

	return &ListHullTemplatesOutput{
		Types:     out.Types,
		Templates: out.Templates,
	}, nil
}

// ApplyHullTemplate re-hulls a ship. Installed items are charged against the
// new hull's capacity straight away.
func (o *Orchestrator) ApplyHullTemplate(
	ctx context.Context,
	input *ApplyHullTemplateInput,
) (*ApplyHullTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var tmpl swn.HullTemplate
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.ApplyHullTemplate(ctx, &engine.ApplyHullTemplateInput{
			Ship:     current,
			HullType: input.HullType,
		})
		if err != nil {
			return nil, err
		}
		tmpl = out.Template

		if len(out.Ship.Items) == 0 {
			return out.Ship, nil
		}

		recalc, err := o.engine.CalculateCost(ctx, &engine.CalculateCostInput{Ship: out.Ship})
		if err != nil {
			return nil, err
		}
		return recalc.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("hull template applied",
		"ship_id", ship.ID,
		"hull_type", ship.HullType)

	return &ApplyHullTemplateOutput{Ship: ship, Template: tmpl}, nil
}

// ListRolls returns a ship's recent rolls, newest first
func (o *Orchestrator) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil || input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}

	out, err := o.rollLogRepo.List(ctx, rolllog.ListInput{
		ShipID: input.ShipID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rolls for ship %s", input.ShipID)
	}

	return &ListRollsOutput{Entries: out.Entries}, nil
}
