package engine

import (
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// Tier grades a skill check
type Tier string

// Check tiers
const (
	TierSuccess Tier = "success"
	TierFailure Tier = "failure"
	TierMishap  Tier = "mishap"
)

// MishapMargin is how far below the difficulty a check must land to be a mishap
const MishapMargin = 4

// SystemCategory names a ship system that can fail
type SystemCategory string

// System categories
const (
	SystemDrive   SystemCategory = "drive"
	SystemWeapon  SystemCategory = "weapon"
	SystemFitting SystemCategory = "fitting"
	SystemDefense SystemCategory = "defense"
)

// SystemCategories lists every category in table order
var SystemCategories = []SystemCategory{SystemDrive, SystemWeapon, SystemFitting, SystemDefense}

// ItemType returns the installed item type for component categories
func (c SystemCategory) ItemType() (swn.ItemType, bool) {
	switch c {
	case SystemWeapon:
		return swn.ItemTypeWeapon, true
	case SystemFitting:
		return swn.ItemTypeFitting, true
	case SystemDefense:
		return swn.ItemTypeDefense, true
	}
	return "", false
}

// Severity describes what a system failure did
type Severity string

// Failure severities
const (
	SeverityNone      Severity = "none"
	SeverityDamaged   Severity = "damaged"
	SeverityDisabled  Severity = "disabled"
	SeverityBroken    Severity = "broken"
	SeverityDestroyed Severity = "destroyed"
)

// ScheduleKind selects a recurring finance schedule
type ScheduleKind string

// Schedule kinds
const (
	SchedulePayment     ScheduleKind = "payment"
	ScheduleMaintenance ScheduleKind = "maintenance"
)

// WarningCode identifies a non-fatal condition on a successful result
type WarningCode string

// Warning codes
const (
	WarningLifeSupportShortfall WarningCode = "LIFE_SUPPORT_SHORTFALL"
	WarningOverloaded           WarningCode = "OVERLOADED"
)

// Warning accompanies a successful result
type Warning struct {
	Code    WarningCode
	Message string
}

// RollOutcome is the detail of a dice pool check
type RollOutcome struct {
	Pool       string
	Dice       []int32
	Kept       []int32
	Modifier   int32
	Total      int32
	Difficulty int32
	Tier       Tier
}

// Succeeded reports whether the check met its difficulty
func (r *RollOutcome) Succeeded() bool {
	return r.Tier == TierSuccess
}

// LifeSupportResult reports how much life support a duration used
type LifeSupportResult struct {
	Requested int32
	Consumed  int32
	Shortfall int32
}

// ApplyHullTemplateInput selects the template to stamp onto a ship
type ApplyHullTemplateInput struct {
	Ship     *swn.Ship
	HullType string
}

// ApplyHullTemplateOutput contains the re-hulled ship
type ApplyHullTemplateOutput struct {
	Ship     *swn.Ship
	Template swn.HullTemplate
}

// ListHullTemplatesOutput contains the hull table in key order
type ListHullTemplatesOutput struct {
	Types     []string
	Templates map[string]swn.HullTemplate
}

// ConsumeLifeSupportInput is a number of days of crew sustenance to spend
type ConsumeLifeSupportInput struct {
	Ship *swn.Ship
	Days int32
}

// ConsumeLifeSupportOutput contains the ship after consumption
type ConsumeLifeSupportOutput struct {
	Ship        *swn.Ship
	LifeSupport LifeSupportResult
	Warnings    []Warning
}

// TravelInput is an in-system trip
type TravelInput struct {
	Ship *swn.Ship
	Days int32
}

// TravelOutput contains the ship after the trip
type TravelOutput struct {
	Ship        *swn.Ship
	LifeSupport LifeSupportResult
	Warnings    []Warning
}

// AttemptSpikeTravelInput describes a spike drill. Crew holds the resolved
// roster members; entries not on the roster are ignored.
type AttemptSpikeTravelInput struct {
	Ship *swn.Ship
	Crew []*swn.CrewMember

	// PilotID overrides default pilot selection when set
	PilotID string
	// SkillName defaults to Pilot
	SkillName string
	// StatName defaults to int
	StatName     string
	DiceModifier int32
	// DicePool defaults to 2d6
	DicePool   string
	Difficulty int32
	TravelDays int32
}

// AttemptSpikeTravelOutput contains the drill result
type AttemptSpikeTravelOutput struct {
	Ship          *swn.Ship
	Pilot         *swn.CrewMember
	SkillModifier int32
	StatModifier  int32
	Roll          *RollOutcome
	LifeSupport   LifeSupportResult
	Warnings      []Warning
}

// RefuelInput fills the tanks at a price per fuel unit
type RefuelInput struct {
	Ship         *swn.Ship
	PricePerUnit int64
}

// RefuelOutput contains the refuelled ship
type RefuelOutput struct {
	Ship       *swn.Ship
	UnitsAdded int32
	Cost       int64
}

// ResupplyLifeSupportInput restocks life support at a price per day
type ResupplyLifeSupportInput struct {
	Ship        *swn.Ship
	PricePerDay int64
}

// ResupplyLifeSupportOutput contains the restocked ship
type ResupplyLifeSupportOutput struct {
	Ship      *swn.Ship
	DaysAdded int32
	Cost      int64
}

// Crisis is an entry on the ship combat crisis table
type Crisis struct {
	Key         string
	Name        string
	Description string
}

// RollCrisisInput rolls on the crisis table for a ship
type RollCrisisInput struct {
	Ship *swn.Ship
}

// RollCrisisOutput contains the rolled crisis
type RollCrisisOutput struct {
	Roll   int32
	Crisis Crisis
}

// RollSystemFailureInput chooses which systems can fail. Selector, when set,
// must be one of Eligible and skips the random category pick.
type RollSystemFailureInput struct {
	Ship     *swn.Ship
	Eligible []SystemCategory
	Selector SystemCategory
}

// SystemFailureOutcome describes the affected system
type SystemFailureOutcome struct {
	Category SystemCategory
	ItemID   string
	ItemName string
	Severity Severity
}

// RollSystemFailureOutput contains the ship with the failure applied
type RollSystemFailureOutput struct {
	Ship    *swn.Ship
	Outcome SystemFailureOutcome
}

// SetItemBrokenInput flips an installed item's broken flag
type SetItemBrokenInput struct {
	Ship   *swn.Ship
	ItemID string
	Broken bool
}

// SetItemBrokenOutput contains the updated ship
type SetItemBrokenOutput struct {
	Ship *swn.Ship
}

// DestroyItemInput marks an installed item destroyed
type DestroyItemInput struct {
	Ship   *swn.Ship
	ItemID string
}

// DestroyItemOutput contains the updated ship
type DestroyItemOutput struct {
	Ship *swn.Ship
}

// FireWeaponInput fires an installed weapon. Crew holds the resolved roster
// members; entries not on the roster are ignored.
type FireWeaponInput struct {
	Ship     *swn.Ship
	Crew     []*swn.CrewMember
	WeaponID string

	// GunnerID overrides the gunnery role holder when set
	GunnerID string
	// SkillName defaults to Shoot
	SkillName string
	// StatName defaults to dex
	StatName     string
	DiceModifier int32
	// DicePool defaults to 1d20
	DicePool string
	// Difficulty is the target's armor class
	Difficulty int32
}

// DamageRoll is the detail of a weapon damage roll
type DamageRoll struct {
	Expression string
	Dice       []int32
	Bonus      int32
	Total      int32
}

// FireWeaponOutput contains the attack and damage rolls and the ship with
// any ammunition spent
type FireWeaponOutput struct {
	Ship          *swn.Ship
	Weapon        swn.Item
	Gunner        *swn.CrewMember
	SkillModifier int32
	StatModifier  int32
	Attack        *RollOutcome
	Damage        *DamageRoll
}

// SettleScheduleInput pays one period of a schedule
type SettleScheduleInput struct {
	Ship *swn.Ship
	Kind ScheduleKind
}

// SettleScheduleOutput contains the ship after payment
type SettleScheduleOutput struct {
	Ship     *swn.Ship
	Amount   int64
	PaidOn   swn.Date
	NextDue  swn.Date
	Interval int32
}

// CalculateCostInput recomputes cost, power, and mass from installed items
type CalculateCostInput struct {
	Ship               *swn.Ship
	IncludeMaintenance bool
}

// CalculateCostOutput contains the recalculated ship
type CalculateCostOutput struct {
	Ship           *swn.Ship
	PowerUsed      int32
	MassUsed       int32
	HardpointsUsed int32
	Warnings       []Warning
}

// AddCrewInput adds a crew reference to the roster
type AddCrewInput struct {
	Ship   *swn.Ship
	CrewID string
}

// AddCrewOutput contains the updated ship
type AddCrewOutput struct {
	Ship  *swn.Ship
	Added bool
}

// RemoveCrewInput removes a crew reference from the roster and its roles
type RemoveCrewInput struct {
	Ship   *swn.Ship
	CrewID string
}

// RemoveCrewOutput contains the updated ship
type RemoveCrewOutput struct {
	Ship         *swn.Ship
	Removed      bool
	RolesCleared []string
}

// AssignRoleInput assigns a roster member to a role; an empty CrewID clears it
type AssignRoleInput struct {
	Ship   *swn.Ship
	Role   string
	CrewID string
}

// AssignRoleOutput contains the updated ship
type AssignRoleOutput struct {
	Ship *swn.Ship
}
