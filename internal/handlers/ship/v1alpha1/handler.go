// Package v1alpha1 handles the ship grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ShipService ship.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ShipService == nil {
		return errors.InvalidArgument("ship service is required")
	}
	return nil
}

// Handler implements the ship gRPC service
type Handler struct {
	shipService ship.Service
}

var _ ShipServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		shipService: cfg.ShipService,
	}, nil
}

func requireShipID(id string) error {
	if id == "" {
		return errors.InvalidArgument("ship_id is required")
	}
	return nil
}

// respond encodes a successful result or converts the error for the wire
func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// CreateShip commissions a ship
func (h *Handler) CreateShip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createShipRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	input := &ship.CreateShipInput{
		OwnerID:          in.OwnerID,
		Name:             in.Name,
		HullType:         in.HullType,
		FuelMax:          in.FuelMax,
		SpikeDriveRating: in.SpikeDriveRating,
		LifeSupportDays:  in.LifeSupportDays,
	}
	if in.Finance != nil {
		input.Finance = *in.Finance
	}

	out, err := h.shipService.CreateShip(ctx, input)
	if err != nil {
		return respond(nil, err)
	}
	return respond(shipResponse{Ship: out.Ship}, nil)
}

// GetShip loads a ship with its resolved crew
func (h *Handler) GetShip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in shipRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.GetShip(ctx, &ship.GetShipInput{ShipID: in.ShipID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(getShipResponse{
		Ship:        out.Ship,
		Crew:        out.Crew,
		MissingCrew: out.MissingCrew,
	}, nil)
}

// ListShips lists ships, optionally for one owner
func (h *Handler) ListShips(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listShipsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ListShips(ctx, &ship.ListShipsInput{OwnerID: in.OwnerID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(listShipsResponse{Ships: out.Ships}, nil)
}

// DeleteShip scraps a ship
func (h *Handler) DeleteShip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in shipRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	_, err := h.shipService.DeleteShip(ctx, &ship.DeleteShipInput{ShipID: in.ShipID})
	return respond(emptyResponse{}, err)
}

// ListHullTemplates returns the hull template table
func (h *Handler) ListHullTemplates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in struct{}
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ListHullTemplates(ctx, &ship.ListHullTemplatesInput{})
	if err != nil {
		return respond(nil, err)
	}
	return respond(hullTemplatesResponse{Types: out.Types, Templates: out.Templates}, nil)
}

// ApplyHullTemplate re-hulls a ship
func (h *Handler) ApplyHullTemplate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in applyHullTemplateRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ApplyHullTemplate(ctx, &ship.ApplyHullTemplateInput{
		ShipID:   in.ShipID,
		HullType: in.HullType,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(applyHullTemplateResponse{Ship: out.Ship, Template: out.Template}, nil)
}

// Travel moves a ship in-system
func (h *Handler) Travel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in travelRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.Travel(ctx, &ship.TravelInput{ShipID: in.ShipID, Days: in.Days})
	if err != nil {
		return respond(nil, err)
	}
	return respond(travelResponse{
		Ship:        out.Ship,
		LifeSupport: convertLifeSupport(out.LifeSupport),
		Warnings:    convertWarnings(out.Warnings),
	}, nil)
}

// SpikeTravel attempts a spike drill
func (h *Handler) SpikeTravel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in spikeTravelRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.SpikeTravel(ctx, &ship.SpikeTravelInput{
		ShipID:       in.ShipID,
		PilotID:      in.PilotID,
		SkillName:    in.Skill,
		StatName:     in.Stat,
		DiceModifier: in.DiceModifier,
		DicePool:     in.DicePool,
		Difficulty:   in.Difficulty,
		TravelDays:   in.TravelDays,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(spikeTravelResponse{
		Ship:          out.Ship,
		Pilot:         out.Pilot,
		SkillModifier: out.SkillModifier,
		StatModifier:  out.StatModifier,
		Roll:          convertRoll(out.Roll),
		LifeSupport:   convertLifeSupport(out.LifeSupport),
		Warnings:      convertWarnings(out.Warnings),
	}, nil)
}

// Refuel fills a ship's tanks
func (h *Handler) Refuel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in refuelRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.Refuel(ctx, &ship.RefuelInput{
		ShipID:       in.ShipID,
		PricePerUnit: in.PricePerUnit,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(refuelResponse{Ship: out.Ship, UnitsAdded: out.UnitsAdded, Cost: out.Cost}, nil)
}

// ResupplyLifeSupport restocks a ship's life support
func (h *Handler) ResupplyLifeSupport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in resupplyRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ResupplyLifeSupport(ctx, &ship.ResupplyLifeSupportInput{
		ShipID:      in.ShipID,
		PricePerDay: in.PricePerDay,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(resupplyResponse{Ship: out.Ship, DaysAdded: out.DaysAdded, Cost: out.Cost}, nil)
}

// RollCrisis rolls on the crisis table
func (h *Handler) RollCrisis(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in shipRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.RollCrisis(ctx, &ship.RollCrisisInput{ShipID: in.ShipID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(crisisResponse{
		Roll: out.Roll,
		Crisis: crisisView{
			Key:         out.Crisis.Key,
			Name:        out.Crisis.Name,
			Description: out.Crisis.Description,
		},
	}, nil)
}

// RollSystemFailure damages a random eligible system
func (h *Handler) RollSystemFailure(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in systemFailureRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.RollSystemFailure(ctx, &ship.RollSystemFailureInput{
		ShipID:   in.ShipID,
		Eligible: convertCategories(in.Eligible),
		Selector: engine.SystemCategory(in.Selector),
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(systemFailureResponse{
		Ship: out.Ship,
		Outcome: failureView{
			Category: string(out.Outcome.Category),
			ItemID:   out.Outcome.ItemID,
			ItemName: out.Outcome.ItemName,
			Severity: string(out.Outcome.Severity),
		},
	}, nil)
}

// Settle pays one period of a finance schedule
func (h *Handler) Settle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in settleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.Settle(ctx, &ship.SettleInput{
		ShipID: in.ShipID,
		Kind:   engine.ScheduleKind(in.Kind),
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(settleResponse{
		Ship:    out.Ship,
		Amount:  out.Amount,
		PaidOn:  out.PaidOn,
		NextDue: out.NextDue,
	}, nil)
}

// CalculateCost recomputes cost and capacity
func (h *Handler) CalculateCost(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in calculateCostRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.CalculateCost(ctx, &ship.CalculateCostInput{
		ShipID:             in.ShipID,
		IncludeMaintenance: in.IncludeMaintenance,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(calculateCostResponse{
		Ship:           out.Ship,
		PowerUsed:      out.PowerUsed,
		MassUsed:       out.MassUsed,
		HardpointsUsed: out.HardpointsUsed,
		Warnings:       convertWarnings(out.Warnings),
	}, nil)
}

// ListLedger returns a ship's credit history
func (h *Handler) ListLedger(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listLedgerRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ListLedger(ctx, &ship.ListLedgerInput{
		ShipID: in.ShipID,
		Kind:   ledger.Kind(in.Kind),
		Limit:  in.Limit,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(listLedgerResponse{
		Entries: convertLedgerEntries(out.Entries),
		Total:   out.Total,
	}, nil)
}

// CreateCrewMember registers a crew member
func (h *Handler) CreateCrewMember(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in crewMemberRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Member == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("member is required"))
	}

	out, err := h.shipService.CreateCrewMember(ctx, &ship.CreateCrewMemberInput{Member: in.Member})
	if err != nil {
		return respond(nil, err)
	}
	return respond(crewMemberResponse{Member: out.Member}, nil)
}

// GetCrewMember loads a crew member
func (h *Handler) GetCrewMember(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in crewIDRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CrewID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("crew_id is required"))
	}

	out, err := h.shipService.GetCrewMember(ctx, &ship.GetCrewMemberInput{CrewID: in.CrewID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(crewMemberResponse{Member: out.Member}, nil)
}

// UpdateCrewMember replaces a crew member
func (h *Handler) UpdateCrewMember(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in crewMemberRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Member == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("member is required"))
	}

	out, err := h.shipService.UpdateCrewMember(ctx, &ship.UpdateCrewMemberInput{Member: in.Member})
	if err != nil {
		return respond(nil, err)
	}
	return respond(crewMemberResponse{Member: out.Member}, nil)
}

// AddCrew boards a crew member
func (h *Handler) AddCrew(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in crewRefRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.AddCrew(ctx, &ship.AddCrewInput{ShipID: in.ShipID, CrewID: in.CrewID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(addCrewResponse{Ship: out.Ship, Added: out.Added}, nil)
}

// RemoveCrew takes a crew member off a ship
func (h *Handler) RemoveCrew(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in crewRefRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.RemoveCrew(ctx, &ship.RemoveCrewInput{ShipID: in.ShipID, CrewID: in.CrewID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(removeCrewResponse{
		Ship:         out.Ship,
		Removed:      out.Removed,
		RolesCleared: out.RolesCleared,
	}, nil)
}

// AssignRole assigns or clears a ship role
func (h *Handler) AssignRole(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in assignRoleRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.AssignRole(ctx, &ship.AssignRoleInput{
		ShipID: in.ShipID,
		Role:   in.Role,
		CrewID: in.CrewID,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(shipResponse{Ship: out.Ship}, nil)
}

// AddItem installs an item
func (h *Handler) AddItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in itemRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Item == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item is required"))
	}

	out, err := h.shipService.AddItem(ctx, &ship.AddItemInput{ShipID: in.ShipID, Item: *in.Item})
	if err != nil {
		return respond(nil, err)
	}
	return respond(itemResponse{
		Ship:     out.Ship,
		Item:     out.Item,
		Warnings: convertWarnings(out.Warnings),
	}, nil)
}

// UpdateItem edits an installed item
func (h *Handler) UpdateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in itemRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Item == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item is required"))
	}

	out, err := h.shipService.UpdateItem(ctx, &ship.UpdateItemInput{ShipID: in.ShipID, Item: *in.Item})
	if err != nil {
		return respond(nil, err)
	}
	return respond(itemResponse{
		Ship:     out.Ship,
		Item:     out.Item,
		Warnings: convertWarnings(out.Warnings),
	}, nil)
}

// FireWeapon rolls an attack and damage with an installed weapon
func (h *Handler) FireWeapon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in fireWeaponRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.WeaponID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_id is required"))
	}

	out, err := h.shipService.FireWeapon(ctx, &ship.FireWeaponInput{
		ShipID:       in.ShipID,
		WeaponID:     in.WeaponID,
		GunnerID:     in.GunnerID,
		SkillName:    in.Skill,
		StatName:     in.Stat,
		DiceModifier: in.DiceModifier,
		DicePool:     in.DicePool,
		Difficulty:   in.Difficulty,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(fireWeaponResponse{
		Ship:          out.Ship,
		Weapon:        out.Weapon,
		Gunner:        out.Gunner,
		SkillModifier: out.SkillModifier,
		StatModifier:  out.StatModifier,
		Attack:        convertRoll(out.Attack),
		Damage:        convertDamage(out.Damage),
	}, nil)
}

// RemoveItem uninstalls an item
func (h *Handler) RemoveItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in itemRefRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.RemoveItem(ctx, &ship.RemoveItemInput{ShipID: in.ShipID, ItemID: in.ItemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(shipWarningsResponse{Ship: out.Ship, Warnings: convertWarnings(out.Warnings)}, nil)
}

// SetItemBroken toggles an item's broken flag
func (h *Handler) SetItemBroken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in setItemBrokenRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.SetItemBroken(ctx, &ship.SetItemBrokenInput{
		ShipID: in.ShipID,
		ItemID: in.ItemID,
		Broken: in.Broken,
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(shipResponse{Ship: out.Ship}, nil)
}

// DestroyItem marks an item destroyed
func (h *Handler) DestroyItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in itemRefRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.DestroyItem(ctx, &ship.DestroyItemInput{ShipID: in.ShipID, ItemID: in.ItemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(shipResponse{Ship: out.Ship}, nil)
}

// ListRolls returns a ship's recent rolls
func (h *Handler) ListRolls(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listRollsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireShipID(in.ShipID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.shipService.ListRolls(ctx, &ship.ListRollsInput{ShipID: in.ShipID, Limit: in.Limit})
	if err != nil {
		return respond(nil, err)
	}
	return respond(listRollsResponse{Entries: out.Entries}, nil)
}
