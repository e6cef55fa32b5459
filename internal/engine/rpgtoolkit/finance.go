package rpgtoolkit

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// SettleSchedule pays one period of the payment or maintenance schedule and
// advances its date by exactly one interval. Nothing changes when the credit
// pool cannot cover the amount.
func (a *Adapter) SettleSchedule(
	ctx context.Context,
	input *engine.SettleScheduleInput,
) (*engine.SettleScheduleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	fin := input.Ship.Finance
	var (
		amount   int64
		interval int32
		last     swn.Date
	)
	switch input.Kind {
	case engine.SchedulePayment:
		amount, interval, last = fin.PaymentAmount, fin.PaymentMonths, fin.LastPayment
	case engine.ScheduleMaintenance:
		amount, interval, last = fin.MaintenanceCost, fin.MaintenanceMonths, fin.LastMaintenance
	default:
		return nil, errors.InvalidArgumentf("unknown schedule kind %q", input.Kind)
	}

	vb := errors.NewValidationBuilder()
	if interval < 1 {
		vb.Fieldf(fmt.Sprintf("%s_months", input.Kind), "must be at least 1, got %d", interval)
	}
	if !last.IsValid() {
		vb.Fieldf(fmt.Sprintf("last_%s", input.Kind), "invalid date %s", last)
	}
	if amount < 0 {
		vb.Field(fmt.Sprintf("%s_amount", input.Kind), "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if amount > fin.CreditPool {
		return nil, errors.InsufficientFunds(amount, fin.CreditPool)
	}

	paidOn := last.AddMonths(interval)

	ship := input.Ship.Clone()
	ship.Finance.CreditPool -= amount
	if input.Kind == engine.SchedulePayment {
		ship.Finance.LastPayment = paidOn
	} else {
		ship.Finance.LastMaintenance = paidOn
	}

	a.publish(ctx, EventScheduleSettled, ship, nil)

	return &engine.SettleScheduleOutput{
		Ship:     ship,
		Amount:   amount,
		PaidOn:   paidOn,
		NextDue:  paidOn.AddMonths(interval),
		Interval: interval,
	}, nil
}

// CalculateCost recomputes total cost and free power, mass, and hardpoints
// from the installed items. Broken and destroyed items still count.
func (a *Adapter) CalculateCost(
	ctx context.Context,
	input *engine.CalculateCostInput,
) (*engine.CalculateCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	ship := input.Ship.Clone()

	cost := ship.BaseCost
	var power, mass, hardpoints int32
	for i := range ship.Items {
		item := &ship.Items[i]
		cost += item.TotalCost(ship.HullClass)
		power += item.TotalPower(ship.HullClass)
		mass += item.TotalMass(ship.HullClass)
		if item.Type == swn.ItemTypeWeapon {
			hardpoints += item.Hardpoint * item.Units()
		}
	}

	ship.Cost = cost
	ship.Power = swn.Resource{Value: ship.Power.Max - power, Max: ship.Power.Max}.Clamped()
	ship.Mass = swn.Resource{Value: ship.Mass.Max - mass, Max: ship.Mass.Max}.Clamped()
	ship.Hardpoints = swn.Resource{Value: ship.Hardpoints.Max - hardpoints, Max: ship.Hardpoints.Max}.Clamped()
	if input.IncludeMaintenance {
		ship.Finance.MaintenanceCost = cost * swn.MaintenancePercent / 100
	}

	var warnings []engine.Warning
	for _, over := range []struct {
		name      string
		used, max int32
	}{
		{"power", power, ship.Power.Max},
		{"mass", mass, ship.Mass.Max},
		{"hardpoints", hardpoints, ship.Hardpoints.Max},
	} {
		if over.used > over.max {
			warnings = append(warnings, engine.Warning{
				Code:    engine.WarningOverloaded,
				Message: fmt.Sprintf("%s use %d exceeds capacity %d", over.name, over.used, over.max),
			})
		}
	}

	a.publish(ctx, EventCostCalculated, ship, nil)

	return &engine.CalculateCostOutput{
		Ship:           ship,
		PowerUsed:      power,
		MassUsed:       mass,
		HardpointsUsed: hardpoints,
		Warnings:       warnings,
	}, nil
}
