package ship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
)

// Travel moves the ship in-system, spending life support for the trip
func (o *Orchestrator) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.TravelOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.Travel(ctx, &engine.TravelInput{Ship: current, Days: input.Days})
		if err != nil {
			return nil, err
		}
		result = out
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("ship travelled",
		"ship_id", ship.ID,
		"days", input.Days,
		"shortfall", result.LifeSupport.Shortfall)

	return &TravelOutput{
		Ship:        ship,
		LifeSupport: result.LifeSupport,
		Warnings:    result.Warnings,
	}, nil
}

// SpikeTravel attempts a spike drill with the ship's crew and records the roll
func (o *Orchestrator) SpikeTravel(ctx context.Context, input *SpikeTravelInput) (*SpikeTravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.AttemptSpikeTravelOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		crew, _, err := o.loadRoster(ctx, current)
		if err != nil {
			return nil, err
		}

		out, err := o.engine.AttemptSpikeTravel(ctx, &engine.AttemptSpikeTravelInput{
			Ship:         current,
			Crew:         crew,
			PilotID:      input.PilotID,
			SkillName:    input.SkillName,
			StatName:     input.StatName,
			DiceModifier: input.DiceModifier,
			DicePool:     input.DicePool,
			Difficulty:   input.Difficulty,
			TravelDays:   input.TravelDays,
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

	roll := result.Roll
	o.recordRoll(ctx, &rolllog.Entry{
		ShipID:     ship.ID,
		Kind:       rolllog.KindSpikeDrill,
		Summary:    fmt.Sprintf("%s (%d vs %d)", roll.Tier, roll.Total, roll.Difficulty),
		Pool:       roll.Pool,
		Dice:       roll.Dice,
		Kept:       roll.Kept,
		Modifier:   roll.Modifier,
		Total:      roll.Total,
		Difficulty: roll.Difficulty,
	})

	pilotID := ""
	if result.Pilot != nil {
		pilotID = result.Pilot.ID
	}
	slog.Info("spike drill attempted",
		"ship_id", ship.ID,
		"pilot_id", pilotID,
		"tier", roll.Tier,
		"total", roll.Total,
		"difficulty", roll.Difficulty)

	return &SpikeTravelOutput{
		Ship:          ship,
		Pilot:         result.Pilot,
		SkillModifier: result.SkillModifier,
		StatModifier:  result.StatModifier,
		Roll:          roll,
		LifeSupport:   result.LifeSupport,
		Warnings:      result.Warnings,
	}, nil
}

// Refuel fills the tanks and records the debit
func (o *Orchestrator) Refuel(ctx context.Context, input *RefuelInput) (*RefuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.RefuelOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.Refuel(ctx, &engine.RefuelInput{
			Ship:         current,
			PricePerUnit: input.PricePerUnit,
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

	o.recordDebit(ctx, ship, ledger.KindRefuel, result.Cost, "",
		fmt.Sprintf("%d fuel units at %d", result.UnitsAdded, input.PricePerUnit))

	slog.Info("ship refuelled",
		"ship_id", ship.ID,
		"units", result.UnitsAdded,
		"cost", result.Cost)

	return &RefuelOutput{
		Ship:       ship,
		UnitsAdded: result.UnitsAdded,
		Cost:       result.Cost,
	}, nil
}

// ResupplyLifeSupport restocks life support and records the debit
func (o *Orchestrator) ResupplyLifeSupport(
	ctx context.Context,
	input *ResupplyLifeSupportInput,
) (*ResupplyLifeSupportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.ResupplyLifeSupportOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.ResupplyLifeSupport(ctx, &engine.ResupplyLifeSupportInput{
			Ship:        current,
			PricePerDay: input.PricePerDay,
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

	o.recordDebit(ctx, ship, ledger.KindResupply, result.Cost, "",
		fmt.Sprintf("%d days at %d", result.DaysAdded, input.PricePerDay))

	slog.Info("life support resupplied",
		"ship_id", ship.ID,
		"days", result.DaysAdded,
		"cost", result.Cost)

	return &ResupplyLifeSupportOutput{
		Ship:      ship,
		DaysAdded: result.DaysAdded,
		Cost:      result.Cost,
	}, nil
}
