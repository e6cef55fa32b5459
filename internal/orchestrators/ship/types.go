package ship

import (
	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
)

// CreateShipInput defines the request for commissioning a ship
type CreateShipInput struct {
	OwnerID  string
	Name     string
	HullType string

	// FuelMax defaults to DefaultFuelMax; the tanks start full
	FuelMax int32
	// SpikeDriveRating defaults to DefaultSpikeDriveRating
	SpikeDriveRating int32
	// LifeSupportDays defaults to the hull maximum; clamped to it when set
	LifeSupportDays int32

	Finance swn.Finance
}

// CreateShipOutput defines the response for commissioning a ship
type CreateShipOutput struct {
	Ship *swn.Ship
}

// GetShipInput defines the request for loading a ship
type GetShipInput struct {
	ShipID string
}

// GetShipOutput defines the response for loading a ship
type GetShipOutput struct {
	Ship *swn.Ship
	// Crew holds the roster members that could be resolved, in roster order
	Crew []*swn.CrewMember
	// MissingCrew lists roster IDs with no stored crew member
	MissingCrew []string
}

// ListShipsInput defines the request for listing ships
type ListShipsInput struct {
	OwnerID string
}

// ListShipsOutput defines the response for listing ships
type ListShipsOutput struct {
	Ships []*swn.Ship
}

// DeleteShipInput defines the request for scrapping a ship
type DeleteShipInput struct {
	ShipID string
}

// DeleteShipOutput defines the response for scrapping a ship
type DeleteShipOutput struct{}

// ListHullTemplatesInput defines the request for the hull table
type ListHullTemplatesInput struct{}

// ListHullTemplatesOutput defines the response for the hull table
type ListHullTemplatesOutput struct {
	Types     []string
	Templates map[string]swn.HullTemplate
}

// ApplyHullTemplateInput defines the request for re-hulling a ship
type ApplyHullTemplateInput struct {
	ShipID   string
	HullType string
}

// ApplyHullTemplateOutput defines the response for re-hulling a ship
type ApplyHullTemplateOutput struct {
	Ship     *swn.Ship
	Template swn.HullTemplate
}

// TravelInput defines the request for in-system travel
type TravelInput struct {
	ShipID string
	Days   int32
}

// TravelOutput defines the response for in-system travel
type TravelOutput struct {
	Ship        *swn.Ship
	LifeSupport engine.LifeSupportResult
	Warnings    []engine.Warning
}

// SpikeTravelInput defines the request for a spike drill
type SpikeTravelInput struct {
	ShipID       string
	PilotID      string
	SkillName    string
	StatName     string
	DiceModifier int32
	DicePool     string
	Difficulty   int32
	TravelDays   int32
}

// SpikeTravelOutput defines the response for a spike drill
type SpikeTravelOutput struct {
	Ship          *swn.Ship
	Pilot         *swn.CrewMember
	SkillModifier int32
	StatModifier  int32
	Roll          *engine.RollOutcome
	LifeSupport   engine.LifeSupportResult
	Warnings      []engine.Warning
}

// RefuelInput defines the request for filling the tanks
type RefuelInput struct {
	ShipID       string
	PricePerUnit int64
}

// RefuelOutput defines the response for filling the tanks
type RefuelOutput struct {
	Ship       *swn.Ship
	UnitsAdded int32
	Cost       int64
}

// ResupplyLifeSupportInput defines the request for restocking life support
type ResupplyLifeSupportInput struct {
	ShipID      string
	PricePerDay int64
}

// ResupplyLifeSupportOutput defines the response for restocking life support
type ResupplyLifeSupportOutput struct {
	Ship      *swn.Ship
	DaysAdded int32
	Cost      int64
}

// RollCrisisInput defines the request for a crisis roll
type RollCrisisInput struct {
	ShipID string
}

// RollCrisisOutput defines the response for a crisis roll
type RollCrisisOutput struct {
	Roll   int32
	Crisis engine.Crisis
}

// RollSystemFailureInput defines the request for a system failure roll
type RollSystemFailureInput struct {
	ShipID   string
	Eligible []engine.SystemCategory
	Selector engine.SystemCategory
}

// RollSystemFailureOutput defines the response for a system failure roll
type RollSystemFailureOutput struct {
	Ship    *swn.Ship
	Outcome engine.SystemFailureOutcome
}

// SettleInput defines the request for paying a schedule
type SettleInput struct {
	ShipID string
	Kind   engine.ScheduleKind
}

// SettleOutput defines the response for paying a schedule
type SettleOutput struct {
	Ship    *swn.Ship
	Amount  int64
	PaidOn  swn.Date
	NextDue swn.Date
}

// CalculateCostInput defines the request for recomputing cost and capacity
type CalculateCostInput struct {
	ShipID             string
	IncludeMaintenance bool
}

// CalculateCostOutput defines the response for recomputing cost and capacity
type CalculateCostOutput struct {
	Ship           *swn.Ship
	PowerUsed      int32
	MassUsed       int32
	HardpointsUsed int32
	Warnings       []engine.Warning
}

// AddCrewInput defines the request for boarding a crew member
type AddCrewInput struct {
	ShipID string
	CrewID string
}

// AddCrewOutput defines the response for boarding a crew member
type AddCrewOutput struct {
	Ship  *swn.Ship
	Added bool
}

// RemoveCrewInput defines the request for removing a crew member
type RemoveCrewInput struct {
	ShipID string
	CrewID string
}

// RemoveCrewOutput defines the response for removing a crew member
type RemoveCrewOutput struct {
	Ship         *swn.Ship
	Removed      bool
	RolesCleared []string
}

// AssignRoleInput defines the request for assigning a ship role
type AssignRoleInput struct {
	ShipID string
	Role   string
	// CrewID clears the role when empty
	CrewID string
}

// AssignRoleOutput defines the response for assigning a ship role
type AssignRoleOutput struct {
	Ship *swn.Ship
}

// AddItemInput defines the request for installing an item
type AddItemInput struct {
	ShipID string
	Item   swn.Item
}

// AddItemOutput defines the response for installing an item
type AddItemOutput struct {
	Ship *swn.Ship
	Item swn.Item
	// Warnings reports capacity the new item overloads
	Warnings []engine.Warning
}

// RemoveItemInput defines the request for uninstalling an item
type RemoveItemInput struct {
	ShipID string
	ItemID string
}

// RemoveItemOutput defines the response for uninstalling an item
type RemoveItemOutput struct {
	Ship     *swn.Ship
	Warnings []engine.Warning
}

// SetItemBrokenInput defines the request for toggling an item's broken flag
type SetItemBrokenInput struct {
	ShipID string
	ItemID string
	Broken bool
}

// SetItemBrokenOutput defines the response for toggling an item's broken flag
type SetItemBrokenOutput struct {
	Ship *swn.Ship
}

// DestroyItemInput defines the request for destroying an item
type DestroyItemInput struct {
	ShipID string
	ItemID string
}

// DestroyItemOutput defines the response for destroying an item
type DestroyItemOutput struct {
	Ship *swn.Ship
}

// UpdateItemInput defines the request for editing an installed item.
// Item.ID selects the item; broken and destroyed flags are kept.
type UpdateItemInput struct {
	ShipID string
	Item   swn.Item
}

// UpdateItemOutput defines the response for editing an installed item
type UpdateItemOutput struct {
	Ship     *swn.Ship
	Item     swn.Item
	Warnings []engine.Warning
}

// FireWeaponInput defines the request for firing an installed weapon
type FireWeaponInput struct {
	ShipID       string
	WeaponID     string
	GunnerID     string
	SkillName    string
	StatName     string
	DiceModifier int32
	DicePool     string
	Difficulty   int32
}

// FireWeaponOutput defines the response for firing an installed weapon
type FireWeaponOutput struct {
	Ship          *swn.Ship
	Weapon        swn.Item
	Gunner        *swn.CrewMember
	SkillModifier int32
	StatModifier  int32
	Attack        *engine.RollOutcome
	Damage        *engine.DamageRoll
}

// CreateCrewMemberInput defines the request for registering a crew member
type CreateCrewMemberInput struct {
	Member *swn.CrewMember
}

// CreateCrewMemberOutput defines the response for registering a crew member
type CreateCrewMemberOutput struct {
	Member *swn.CrewMember
}

// GetCrewMemberInput defines the request for loading a crew member
type GetCrewMemberInput struct {
	CrewID string
}

// GetCrewMemberOutput defines the response for loading a crew member
type GetCrewMemberOutput struct {
	Member *swn.CrewMember
}

// UpdateCrewMemberInput defines the request for replacing a crew member
type UpdateCrewMemberInput struct {
	Member *swn.CrewMember
}

// UpdateCrewMemberOutput defines the response for replacing a crew member
type UpdateCrewMemberOutput struct {
	Member *swn.CrewMember
}

// ListLedgerInput defines the request for a ship's credit history
type ListLedgerInput struct {
	ShipID string
	Kind   ledger.Kind
	Limit  int32
}

// ListLedgerOutput defines the response for a ship's credit history
type ListLedgerOutput struct {
	Entries []*ledger.Entry
	Total   int64
}

// ListRollsInput defines the request for a ship's recent rolls
type ListRollsInput struct {
	ShipID string
	Limit  int32
}

// ListRollsOutput defines the response for a ship's recent rolls
type ListRollsOutput struct {
	Entries []*rolllog.Entry
}
