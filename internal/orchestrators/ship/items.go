package ship

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

func validateItem(item *swn.Item) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", item.Name, vb)
	if !item.Type.IsValid() {
		vb.Fieldf("type", "unknown item type %q", item.Type)
	}
	if item.MinClass != "" && item.MinClass.Rank() < 0 {
		vb.Fieldf("min_class", "unknown hull class %q", item.MinClass)
	}
	errors.ValidateNonNegative("cost", item.Cost, vb)
	errors.ValidateNonNegative("power", int64(item.Power), vb)
	errors.ValidateNonNegative("mass", int64(item.Mass), vb)
	errors.ValidateNonNegative("quantity", int64(item.Quantity), vb)
	errors.ValidateNonNegative("hardpoint", int64(item.Hardpoint), vb)
	return vb.Build()
}

// AddItem installs an item and recomputes cost and capacity. Overloading the
// hull is allowed and reported as a warning.
func (o *Orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item := input.Item
	if err := validateItem(&item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}
	// new installs start intact
	item.Broken = false
	item.Destroyed = false

	var warnings []engine.Warning
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		if current.FindItem(item.ID) >= 0 {
			return nil, errors.AlreadyExistsf("item %s is already installed", item.ID).
				WithMeta("item_id", item.ID)
		}
		if !item.FitsClass(current.HullClass) {
			return nil, errors.FailedPreconditionf("%s requires a %s hull or larger", item.Name, item.MinClass).
				WithMeta("min_class", string(item.MinClass)).
				WithMeta("hull_class", string(current.HullClass))
		}

		next := current.Clone()
		next.Items = append(next.Items, item)

		out, err := o.engine.CalculateCost(ctx, &engine.CalculateCostInput{Ship: next})
		if err != nil {
			return nil, err
		}
		warnings = out.Warnings
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item installed",
		"ship_id", ship.ID,
		"item_id", item.ID,
		"type", item.Type)

	return &AddItemOutput{
		Ship:     ship,
		Item:     item,
		Warnings: warnings,
	}, nil
}

// RemoveItem uninstalls an item and recomputes cost and capacity
func (o *Orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	var warnings []engine.Warning
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		if current.FindItem(input.ItemID) < 0 {
			return nil, errors.NotFoundf("item %s is not installed", input.ItemID).
				WithMeta("item_id", input.ItemID)
		}

		next := current.Clone()
		next.Items = slices.DeleteFunc(next.Items, func(it swn.Item) bool {
			return it.ID == input.ItemID
		})

		out, err := o.engine.CalculateCost(ctx, &engine.CalculateCostInput{Ship: next})
		if err != nil {
			return nil, err
		}
		warnings = out.Warnings
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item removed",
		"ship_id", ship.ID,
		"item_id", input.ItemID)

	return &RemoveItemOutput{
		Ship:     ship,
		Warnings: warnings,
	}, nil
}

// UpdateItem replaces an installed item's fields and recomputes cost and
// capacity. The item keeps its broken and destroyed flags.
func (o *Orchestrator) UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	item := input.Item
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	var warnings []engine.Warning
	ship, err := o.mutate(ctx, input.ShipID, func(current *swn.Ship) (*swn.Ship, error) {
		idx := current.FindItem(item.ID)
		if idx < 0 {
			return nil, errors.NotFoundf("item %s is not installed", item.ID).
				WithMeta("item_id", item.ID)
		}
		if !item.FitsClass(current.HullClass) {
			return nil, errors.FailedPreconditionf("%s requires a %s hull or larger", item.Name, item.MinClass).
				WithMeta("min_class", string(item.MinClass)).
				WithMeta("hull_class", string(current.HullClass))
		}

		next := current.Clone()
		item.Broken = next.Items[idx].Broken
		item.Destroyed = next.Items[idx].Destroyed
		next.Items[idx] = item

		out, err := o.engine.CalculateCost(ctx, &engine.CalculateCostInput{Ship: next})
		if err != nil {
			return nil, err
		}
		warnings = out.Warnings
		return out.Ship, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item updated",
		"ship_id", ship.ID,
		"item_id", item.ID,
		"quantity", item.Units())

	return &UpdateItemOutput{
		Ship:     ship,
		Item:     item,
		Warnings: warnings,
	}, nil
}
