package rpgtoolkit

import (
	"context"
	"slices"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// crisisTable is the ship combat crisis table, indexed by a 1d10 roll
var crisisTable = []engine.Crisis{
	{Key: "armorLoss", Name: "Armor Loss", Description: "The ship's armor is reduced until repaired."},
	{Key: "cargoLoss", Name: "Cargo Loss", Description: "A cargo hold is breached and its contents are at risk."},
	{Key: "crewLost", Name: "Crew Lost", Description: "Crew members are trapped or injured and must be reached."},
	{Key: "engineLock", Name: "Engine Lock", Description: "The engines jam and the ship cannot maneuver."},
	{Key: "fuelBleed", Name: "Fuel Bleed", Description: "The fuel tanks are venting and will empty unless sealed."},
	{Key: "haywireSystems", Name: "Haywire Systems", Description: "Ship systems act erratically and refuse commands."},
	{Key: "hullBreach", Name: "Hull Breach", Description: "The hull is breached and the ship takes further damage."},
	{Key: "systemDamage", Name: "System Damage", Description: "A random ship system is knocked offline."},
	{Key: "targetDecalibration", Name: "Target Decalibration", Description: "Gunnery sensors lose their lock."},
	{Key: "vipImperiled", Name: "VIP Imperiled", Description: "An important passenger or crew member is in danger."},
}

// RollCrisis rolls on the crisis table. The ship is not changed.
func (a *Adapter) RollCrisis(ctx context.Context, input *engine.RollCrisisInput) (*engine.RollCrisisOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	idx, err := a.pick(len(crisisTable))
	if err != nil {
		return nil, err
	}

	a.publish(ctx, EventCrisis, input.Ship, nil)

	return &engine.RollCrisisOutput{
		Roll:   int32(idx + 1),
		Crisis: crisisTable[idx],
	}, nil
}

// RollSystemFailure picks an eligible system and applies the failure to it
func (a *Adapter) RollSystemFailure(
	ctx context.Context,
	input *engine.RollSystemFailureInput,
) (*engine.RollSystemFailureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	eligible := make([]engine.SystemCategory, 0, len(input.Eligible))
	for _, c := range input.Eligible {
		if !slices.Contains(engine.SystemCategories, c) {
			return nil, errors.InvalidArgumentf("unknown system category %q", c).
				WithMeta("category", string(c))
		}
		if !slices.Contains(eligible, c) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil, errors.NoEligibleSystems()
	}

	category := input.Selector
	if category != "" {
		if !slices.Contains(eligible, category) {
			return nil, errors.InvalidArgumentf("system %q is not eligible", category).
				WithMeta("category", string(category))
		}
	} else {
		idx, err := a.pick(len(eligible))
		if err != nil {
			return nil, err
		}
		category = eligible[idx]
	}

	ship := input.Ship.Clone()
	outcome := engine.SystemFailureOutcome{Category: category}

	if category == engine.SystemDrive {
		outcome.Severity = damageDrive(ship)
		a.publish(ctx, EventSystemFailure, ship, nil)
		return &engine.RollSystemFailureOutput{Ship: ship, Outcome: outcome}, nil
	}

	itemType, _ := category.ItemType()
	var candidates []int
	for i := range ship.Items {
		if ship.Items[i].Type == itemType && !ship.Items[i].Destroyed {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		outcome.Severity = engine.SeverityNone
		return &engine.RollSystemFailureOutput{Ship: ship, Outcome: outcome}, nil
	}

	idx, err := a.pick(len(candidates))
	if err != nil {
		return nil, err
	}
	item := &ship.Items[candidates[idx]]
	if item.Broken {
		item.Destroyed = true
		outcome.Severity = engine.SeverityDestroyed
	} else {
		item.Broken = true
		outcome.Severity = engine.SeverityBroken
	}
	outcome.ItemID = item.ID
	outcome.ItemName = item.Name

	a.publish(ctx, EventSystemFailure, ship, wrapItem(item))

	return &engine.RollSystemFailureOutput{Ship: ship, Outcome: outcome}, nil
}

// damageDrive lowers the spike drive rating by one, floored at zero
func damageDrive(ship *swn.Ship) engine.Severity {
	if ship.SpikeDrive.Value <= 0 {
		ship.SpikeDrive.Value = 0
		return engine.SeverityDisabled
	}
	ship.SpikeDrive.Value--
	if ship.SpikeDrive.Value == 0 {
		return engine.SeverityDisabled
	}
	return engine.SeverityDamaged
}

// SetItemBroken sets or clears an installed item's broken flag
func (a *Adapter) SetItemBroken(
	ctx context.Context,
	input *engine.SetItemBrokenInput,
) (*engine.SetItemBrokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	idx := input.Ship.FindItem(input.ItemID)
	if idx < 0 {
		return nil, errors.NotFoundf("item %s not found", input.ItemID).WithMeta("item_id", input.ItemID)
	}

	ship := input.Ship.Clone()
	ship.Items[idx].Broken = input.Broken

	a.publish(ctx, EventItemStatusChanged, ship, wrapItem(&ship.Items[idx]))

	return &engine.SetItemBrokenOutput{Ship: ship}, nil
}

// DestroyItem marks an installed item destroyed. The record is kept.
func (a *Adapter) DestroyItem(ctx context.Context, input *engine.DestroyItemInput) (*engine.DestroyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	idx := input.Ship.FindItem(input.ItemID)
	if idx < 0 {
		return nil, errors.NotFoundf("item %s not found", input.ItemID).WithMeta("item_id", input.ItemID)
	}

	ship := input.Ship.Clone()
	ship.Items[idx].Broken = true
	ship.Items[idx].Destroyed = true

	a.publish(ctx, EventItemStatusChanged, ship, wrapItem(&ship.Items[idx]))

	return &engine.DestroyItemOutput{Ship: ship}, nil
}
