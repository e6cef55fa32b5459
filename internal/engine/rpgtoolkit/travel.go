package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// Spike drill defaults
const (
	DefaultSpikeSkill = swn.SkillPilot
	DefaultSpikeStat  = swn.AttributeIntelligence
	DefaultDicePool   = swn.DicePool2d6
	// SpikeFuelCost is the fuel one drill burns regardless of outcome
	SpikeFuelCost = 1
)

// AttemptSpikeTravel performs a spike drill. Fuel is checked before the
// drive, and nothing is rolled unless both are available.
func (a *Adapter) AttemptSpikeTravel(
	ctx context.Context,
	input *engine.AttemptSpikeTravelInput,
) (*engine.AttemptSpikeTravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.Ship.Fuel.Value <= 0 {
		return nil, errors.OutOfFuel()
	}
	if !input.Ship.SpikeDrive.Usable() {
		return nil, errors.DriveDisabled()
	}
	if input.TravelDays <= 0 {
		return nil, errors.InvalidDuration(input.TravelDays)
	}

	poolExpr := input.DicePool
	if poolExpr == "" {
		poolExpr = DefaultDicePool
	}
	pool, err := parseDicePool(poolExpr)
	if err != nil {
		return nil, err
	}

	skillName := input.SkillName
	if skillName == "" {
		skillName = DefaultSpikeSkill
	}
	statName := input.StatName
	if statName == "" {
		statName = DefaultSpikeStat
	}

	pilot := selectPilot(input.Ship, input.Crew, input.PilotID)

	var skillMod, statMod int32
	if pilot != nil {
		skillMod, _ = pilot.SkillModifier(skillName)
		statMod, _ = pilot.AttributeModifier(statName)
	}

	roll, err := a.check(pool, skillMod+statMod+input.DiceModifier, input.Difficulty)
	if err != nil {
		return nil, err
	}

	ship := input.Ship.Clone()
	ship.Fuel, _ = ship.Fuel.Clamped().Spend(SpikeFuelCost)
	lifeSupport, warnings := consumeLifeSupport(ship, input.TravelDays)

	if pilot != nil {
		a.publish(ctx, EventSpikeTravel, ship, wrapCrew(pilot))
	} else {
		a.publish(ctx, EventSpikeTravel, ship, nil)
	}

	return &engine.AttemptSpikeTravelOutput{
		Ship:          ship,
		Pilot:         pilot,
		SkillModifier: skillMod,
		StatModifier:  statMod,
		Roll:          roll,
		LifeSupport:   lifeSupport,
		Warnings:      warnings,
	}, nil
}

// selectPilot resolves who flies the drill. An explicit pilot is used as
// given. Otherwise the bridge role holder flies, falling back to the first
// roster entry, and an NPC default gives way to the first player character
// aboard. Returns nil when nobody on the roster has a crew record.
func selectPilot(ship *swn.Ship, crew []*swn.CrewMember, explicit string) *swn.CrewMember {
	byID := make(map[string]*swn.CrewMember, len(crew))
	for _, c := range crew {
		if c != nil && ship.HasCrew(c.ID) {
			byID[c.ID] = c
		}
	}

	if explicit != "" {
		return byID[explicit]
	}

	var chosen *swn.CrewMember
	if ref, ok := ship.RoleHolder(swn.RoleBridge); ok {
		chosen = byID[ref]
	}
	if chosen == nil {
		for _, ref := range ship.Roster {
			if c, ok := byID[ref]; ok {
				chosen = c
				break
			}
		}
	}
	if chosen == nil || chosen.IsCharacter() {
		return chosen
	}

	if pc := firstCharacter(ship, byID); pc != nil {
		return pc
	}
	return chosen
}

func firstCharacter(ship *swn.Ship, byID map[string]*swn.CrewMember) *swn.CrewMember {
	for _, ref := range ship.Roster {
		if c, ok := byID[ref]; ok && c.IsCharacter() {
			return c
		}
	}
	return nil
}

// Refuel fills the tanks. The whole top-up must be affordable.
func (a *Adapter) Refuel(ctx context.Context, input *engine.RefuelInput) (*engine.RefuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.PricePerUnit < 0 {
		return nil, errors.InvalidArgument("price per unit cannot be negative")
	}

	fuel := input.Ship.Fuel.Clamped()
	units := fuel.Missing()
	cost := int64(units) * input.PricePerUnit
	if cost > input.Ship.Finance.CreditPool {
		return nil, errors.InsufficientFunds(cost, input.Ship.Finance.CreditPool)
	}

	ship := input.Ship.Clone()
	ship.Fuel = swn.Resource{Value: fuel.Max, Max: fuel.Max}
	ship.Finance.CreditPool -= cost

	a.publish(ctx, EventRefuelled, ship, nil)

	return &engine.RefuelOutput{
		Ship:       ship,
		UnitsAdded: units,
		Cost:       cost,
	}, nil
}

// ResupplyLifeSupport restocks life support to its maximum
func (a *Adapter) ResupplyLifeSupport(
	ctx context.Context,
	input *engine.ResupplyLifeSupportInput,
) (*engine.ResupplyLifeSupportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.PricePerDay < 0 {
		return nil, errors.InvalidArgument("price per day cannot be negative")
	}

	supply := input.Ship.LifeSupportDays.Clamped()
	days := supply.Missing()
	cost := int64(days) * input.PricePerDay
	if cost > input.Ship.Finance.CreditPool {
		return nil, errors.InsufficientFunds(cost, input.Ship.Finance.CreditPool)
	}

	ship := input.Ship.Clone()
	ship.LifeSupportDays = swn.Resource{Value: supply.Max, Max: supply.Max}
	ship.Finance.CreditPool -= cost

	a.publish(ctx, EventLifeSupportResupplied, ship, nil)

	return &engine.ResupplyLifeSupportOutput{
		Ship:      ship,
		DaysAdded: days,
		Cost:      cost,
	}, nil
}
