package ship

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
)

var scheduleLedgerKinds = map[engine.ScheduleKind]ledger.Kind{
	engine.SchedulePayment:     ledger.KindPayment,
	engine.ScheduleMaintenance: ledger.KindMaintenance,
}

// Settle pays one period of the payment or maintenance schedule
func (o *Orchestrator) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.SettleScheduleOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.SettleSchedule(ctx, &engine.SettleScheduleInput{
			Ship: current,
			Kind: input.Kind,
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

	o.recordDebit(ctx, ship, scheduleLedgerKinds[input.Kind], result.Amount,
		result.PaidOn.String(), "next due "+result.NextDue.String())

	slog.Info("schedule settled",
		"ship_id", ship.ID,
		"kind", input.Kind,
		"amount", result.Amount,
		"paid_on", result.PaidOn.String())

	return &SettleOutput{
		Ship:    ship,
		Amount:  result.Amount,
		PaidOn:  result.PaidOn,
		NextDue: result.NextDue,
	}, nil
}

// CalculateCost recomputes cost and free capacity from installed items
func (o *Orchestrator) CalculateCost(ctx context.Context, input *CalculateCostInput) (*CalculateCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var result *engine.CalculateCostOutput
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		out, err := o.engine.CalculateCost(ctx, &engine.CalculateCostInput{
			Ship:               current,
			IncludeMaintenance: input.IncludeMaintenance,
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

	if len(result.Warnings) > 0 {
		slog.Warn("ship over capacity",
			"ship_id", ship.ID,
			"warnings", len(result.Warnings))
	}

	return &CalculateCostOutput{
		Ship:           ship,
		PowerUsed:      result.PowerUsed,
		MassUsed:       result.MassUsed,
		HardpointsUsed: result.HardpointsUsed,
		Warnings:       result.Warnings,
	}, nil
}

// ListLedger returns a ship's credit history, newest first
func (o *Orchestrator) ListLedger(ctx context.Context, input *ListLedgerInput) (*ListLedgerOutput, error) {
	if input == nil || input.ShipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	out, err := o.ledgerRepo.List(ctx, ledger.ListInput{
		ShipID: input.ShipID,
		Kind:   input.Kind,
		Limit:  int(input.Limit),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list ledger for ship %s", input.ShipID)
	}

	return &ListLedgerOutput{
		Entries: out.Entries,
		Total:   out.Total,
	}, nil
}
