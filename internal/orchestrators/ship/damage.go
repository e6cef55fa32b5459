package ship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
)

// crisisPool is how a crisis roll is logged
const crisisPool = "1d10"

// RollCrisis rolls on the crisis table. The ship is read, never changed.
func (o *Orchestrator) RollCrisis(ctx context.Context, input *RollCrisisInput) (*RollCrisisOutput, error) {
	if input == nil || input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}

	ship, err := o.loadShip(ctx, input.ShipID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.RollCrisis(ctx, &engine.RollCrisisInput{Ship: ship})
	if err != nil {
		return nil, err
	}

	o.recordRoll(ctx, &rolllog.Entry{
		ShipID:  ship.ID,
		Kind:    rolllog.KindCrisis,
		Summary: out.Crisis.Name,
		Pool:    crisisPool,
		Dice:    []int32{out.Roll},
		Kept:    []int32{out.Roll},
		Total:   out.Roll,
	})

	slog.Info("crisis rolled",
		"ship_id", ship.ID,
		"roll", out.Roll,
		"crisis", out.Crisis.Key)

	return &RollCrisisOutput{
		Roll:   out.Roll,
		Crisis: out.Crisis,
	}, nil
}

// RollSystemFailure damages a random eligible system and records the result
func (o *Orchestrator) RollSystemFailure(
	ctx context.Context,
	input *RollSystemFailureInput,
) (*RollSystemFailureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome engine.SystemFailureOutcome
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.RollSystemFailure(ctx, &engine.RollSystemFailureInput{
			Ship:     current,
			Eligible: input.Eligible,
			Selector: input.Selector,
		})
		if err != nil {
			return nil, err
		}
		outcome = out.Outcome
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	o.recordRoll(ctx, &rolllog.Entry{
		ShipID:  ship.ID,
		Kind:    rolllog.KindSystemFailure,
		Summary: describeFailure(outcome),
	})

	slog.Info("system failure rolled",
		"ship_id", ship.ID,
		"category", outcome.Category,
		"item_id", outcome.ItemID,
		"severity", outcome.Severity)

	return &RollSystemFailureOutput{
		Ship:    ship,
		Outcome: outcome,
	}, nil
}

func describeFailure(o engine.SystemFailureOutcome) string {
	if o.ItemName != "" {
		return fmt.Sprintf("%s: %s %s", o.Category, o.ItemName, o.Severity)
	}
	return fmt.Sprintf("%s %s", o.Category, o.Severity)
}

// SetItemBroken flips the broken flag on an installed item
func (o *Orchestrator) SetItemBroken(ctx context.Context, input *SetItemBrokenInput) (*SetItemBrokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.SetItemBroken(ctx, &engine.SetItemBrokenInput{
			Ship:   current,
			ItemID: input.ItemID,
			Broken: input.Broken,
		})
		if err != nil {
			return nil, err
		}
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	return &SetItemBrokenOutput{Ship: ship}, nil
}

// DestroyItem marks an installed item destroyed. The item stays installed.
func (o *Orchestrator) DestroyItem(ctx context.Context, input *DestroyItemInput) (*DestroyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.DestroyItem(ctx, &engine.DestroyItemInput{
			Ship:   current,
			ItemID: input.ItemID,
		})
		if err != nil {
			return nil, err
		}
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item destroyed",
		"ship_id", ship.ID,
		"item_id", input.ItemID)

	return &DestroyItemOutput{Ship: ship}, nil
}

// FireWeapon fires an installed weapon with the ship's crew and records the
// attack roll. Spent ammunition is saved with the ship.
func (o *Orchestrator) FireWeapon(ctx context.Context, input *FireWeaponInput) (*FireWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.FireWeaponOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		crew, _, err := o.loadRoster(ctx, current)
		if err != nil {
			return nil, err
		}

		out, err := o.engine.FireWeapon(ctx, &engine.FireWeaponInput{
			Ship:         current,
			Crew:         crew,
			WeaponID:     input.WeaponID,
			GunnerID:     input.GunnerID,
			SkillName:    input.SkillName,
			StatName:     input.StatName,
			DiceModifier: input.DiceModifier,
			DicePool:     input.DicePool,
			Difficulty:   input.Difficulty,
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

	attack := result.Attack
	o.recordRoll(ctx, &rolllog.Entry{
		ShipID: ship.ID,
		Kind:   rolllog.KindWeaponAttack,
		Summary: fmt.Sprintf("%s %s (%d vs %d), %d damage",
			result.Weapon.Name, attack.Tier, attack.Total, attack.Difficulty, result.Damage.Total),
		Pool:       attack.Pool,
		Dice:       attack.Dice,
		Kept:       attack.Kept,
		Modifier:   attack.Modifier,
		Total:      attack.Total,
		Difficulty: attack.Difficulty,
	})

	gunnerID := ""
	if result.Gunner != nil {
		gunnerID = result.Gunner.ID
	}
	slog.Info("weapon fired",
		"ship_id", ship.ID,
		"item_id", result.Weapon.ID,
		"gunner_id", gunnerID,
		"tier", attack.Tier,
		"damage", result.Damage.Total)

	return &FireWeaponOutput{
		Ship:          ship,
		Weapon:        result.Weapon,
		Gunner:        result.Gunner,
		SkillModifier: result.SkillModifier,
		StatModifier:  result.StatModifier,
		Attack:        attack,
		Damage:        result.Damage,
	}, nil
}
