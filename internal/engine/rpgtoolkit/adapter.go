// Package rpgtoolkit implements the ship engine on top of rpg-toolkit dice and events.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// Event types published after a ship operation succeeds
const (
	EventHullApplied           = "ship.hull_applied"
	EventLifeSupportConsumed   = "ship.life_support_consumed"
	EventSpikeTravel           = "ship.spike_travel"
	EventRefuelled             = "ship.refuelled"
	EventLifeSupportResupplied = "ship.life_support_resupplied"
	EventCrisis                = "ship.crisis"
	EventSystemFailure         = "ship.system_failure"
	EventItemStatusChanged     = "ship.item_status_changed"
	EventWeaponFired           = "ship.weapon_fired"
	EventScheduleSettled       = "ship.schedule_settled"
	EventCostCalculated        = "ship.cost_calculated"
	EventCrewChanged           = "ship.crew_changed"
)

// EventTypes lists every event the adapter publishes
var EventTypes = []string{
	EventHullApplied,
	EventLifeSupportConsumed,
	EventSpikeTravel,
	EventRefuelled,
	EventLifeSupportResupplied,
	EventCrisis,
	EventSystemFailure,
	EventItemStatusChanged,
	EventWeaponFired,
	EventScheduleSettled,
	EventCostCalculated,
	EventCrewChanged,
}

// Adapter implements engine.Engine using rpg-toolkit
type Adapter struct {
	hulls      engine.HullTable
	diceRoller dice.Roller
	eventBus   events.EventBus
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	HullTable  engine.HullTable
	DiceRoller dice.Roller
	// EventBus is optional; without it no events are published
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.HullTable == nil {
		vb.RequiredField("HullTable")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	return vb.Build()
}

// NewAdapter creates a new rpg-toolkit ship engine
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Adapter{
		hulls:      cfg.HullTable,
		diceRoller: cfg.DiceRoller,
		eventBus:   cfg.EventBus,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

func requireShip(ship *swn.Ship) error {
	if ship == nil {
		return errors.InvalidArgument("ship is required")
	}
	return nil
}

// publish notifies subscribers. A failing subscriber never fails the operation.
func (a *Adapter) publish(ctx context.Context, eventType string, ship *swn.Ship, target core.Entity) {
	if a.eventBus == nil {
		return
	}
	if err := a.eventBus.Publish(ctx, events.NewGameEvent(eventType, ship, target)); err != nil {
		slog.Warn("Failed to publish ship event",
			"event", eventType,
			"ship_id", ship.ID,
			"error", err,
		)
	}
}

// ApplyHullTemplate overwrites hull-derived stats with the named template
func (a *Adapter) ApplyHullTemplate(
	ctx context.Context,
	input *engine.ApplyHullTemplateInput,
) (*engine.ApplyHullTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	tmpl, ok := a.hulls.Lookup(input.HullType)
	if !ok {
		return nil, errors.UnknownHullType(input.HullType)
	}

	ship := input.Ship.Clone()
	ship.HullType = input.HullType
	ship.HullClass = tmpl.Class
	ship.HP = swn.Resource{Value: tmpl.HP, Max: tmpl.HP}
	ship.BaseCost = tmpl.Cost
	ship.Cost = tmpl.Cost
	ship.Armor = tmpl.Armor
	ship.AC = tmpl.AC
	ship.Speed = tmpl.Speed
	ship.Mass = swn.Resource{Value: tmpl.Mass, Max: tmpl.Mass}
	ship.Power = swn.Resource{Value: tmpl.Power, Max: tmpl.Power}
	ship.Hardpoints = swn.Resource{Value: tmpl.Hardpoints, Max: tmpl.Hardpoints}
	ship.Crew = tmpl.Crew
	ship.LifeSupportDays = swn.Resource{
		Value: ship.LifeSupportDays.Value,
		Max:   tmpl.LifeSupportMax(),
	}.Clamped()

	a.publish(ctx, EventHullApplied, ship, nil)

	return &engine.ApplyHullTemplateOutput{
		Ship:     ship,
		Template: tmpl,
	}, nil
}

// ListHullTemplates returns the hull table
func (a *Adapter) ListHullTemplates(_ context.Context) (*engine.ListHullTemplatesOutput, error) {
	types := a.hulls.Types()
	templates := make(map[string]swn.HullTemplate, len(types))
	for _, t := range types {
		tmpl, _ := a.hulls.Lookup(t)
		templates[t] = tmpl
	}
	return &engine.ListHullTemplatesOutput{
		Types:     types,
		Templates: templates,
	}, nil
}

// ConsumeLifeSupport spends days of life support. Running short is not an
// error: the supply is floored at zero and a shortfall warning is returned.
func (a *Adapter) ConsumeLifeSupport(
	ctx context.Context,
	input *engine.ConsumeLifeSupportInput,
) (*engine.ConsumeLifeSupportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.Days <= 0 {
		return nil, errors.InvalidDuration(input.Days)
	}

	ship := input.Ship.Clone()
	result, warnings := consumeLifeSupport(ship, input.Days)

	a.publish(ctx, EventLifeSupportConsumed, ship, nil)

	return &engine.ConsumeLifeSupportOutput{
		Ship:        ship,
		LifeSupport: result,
		Warnings:    warnings,
	}, nil
}

// Travel is an in-system trip; it only costs life support
func (a *Adapter) Travel(ctx context.Context, input *engine.TravelInput) (*engine.TravelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := a.ConsumeLifeSupport(ctx, &engine.ConsumeLifeSupportInput{
		Ship: input.Ship,
		Days: input.Days,
	})
	if err != nil {
		return nil, err
	}

	return &engine.TravelOutput{
		Ship:        out.Ship,
		LifeSupport: out.LifeSupport,
		Warnings:    out.Warnings,
	}, nil
}

// consumeLifeSupport mutates ship, which must already be a clone
func consumeLifeSupport(ship *swn.Ship, days int32) (engine.LifeSupportResult, []engine.Warning) {
	remaining, shortfall := ship.LifeSupportDays.Clamped().Spend(days)
	ship.LifeSupportDays = remaining

	result := engine.LifeSupportResult{
		Requested: days,
		Consumed:  days - shortfall,
		Shortfall: shortfall,
	}
	if shortfall == 0 {
		return result, nil
	}

	return result, []engine.Warning{{
		Code:    engine.WarningLifeSupportShortfall,
		Message: "life support ran out before the end of the trip",
	}}
}
