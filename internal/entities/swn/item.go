package swn

// ItemType is the kind of an installed ship item
type ItemType string

// Installed item types
const (
	ItemTypeWeapon  ItemType = "shipWeapon"
	ItemTypeFitting ItemType = "shipFitting"
	ItemTypeDefense ItemType = "shipDefense"
)

// IsValid reports whether t is a known item type
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeFitting, ItemTypeDefense:
		return true
	}
	return false
}

// HullClass is the size class of a hull. It scales item costs and footprints.
type HullClass string

// Hull classes, smallest first
const (
	HullClassFighter HullClass = "fighter"
	HullClassFrigate HullClass = "frigate"
	HullClassCruiser HullClass = "cruiser"
	HullClassCapital HullClass = "capital"
)

// Rank orders hull classes from smallest to largest. Unknown classes rank -1.
func (c HullClass) Rank() int {
	switch c {
	case HullClassFighter:
		return 0
	case HullClassFrigate:
		return 1
	case HullClassCruiser:
		return 2
	case HullClassCapital:
		return 3
	default:
		return -1
	}
}

// CostMultiplier is applied to the cost of items flagged with costMultiplier
func (c HullClass) CostMultiplier() int64 {
	switch c {
	case HullClassFrigate:
		return 10
	case HullClassCruiser:
		return 25
	case HullClassCapital:
		return 100
	default:
		return 1
	}
}

// FootprintMultiplier is applied to power and mass of flagged items
func (c HullClass) FootprintMultiplier() int32 {
	switch c {
	case HullClassFrigate:
		return 2
	case HullClassCruiser:
		return 3
	case HullClassCapital:
		return 4
	default:
		return 1
	}
}

// AmmoNone marks a weapon that never runs dry
const AmmoNone = "none"

// Ammo tracks limited weapon ammunition
type Ammo struct {
	Type  string `json:"type"`
	Value int32  `json:"value"`
	Max   int32  `json:"max"`
}

// Item is a weapon, fitting, or defense installed on a ship. Broken and
// destroyed items keep their record; only the flags change.
type Item struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            ItemType  `json:"type"`
	Description     string    `json:"description,omitempty"`
	Cost            int64     `json:"cost"`
	Power           int32     `json:"power"`
	Mass            int32     `json:"mass"`
	CostMultiplier  bool      `json:"cost_multiplier"`
	PowerMultiplier bool      `json:"power_multiplier"`
	MassMultiplier  bool      `json:"mass_multiplier"`
	MinClass        HullClass `json:"min_class,omitempty"`
	Broken          bool      `json:"broken"`
	Destroyed       bool      `json:"destroyed"`
	Quantity        int32     `json:"quantity"`

	// Weapon only
	Damage    string `json:"damage,omitempty"`
	Hardpoint int32  `json:"hardpoint,omitempty"`
	Qualities string `json:"qualities,omitempty"`
	Ammo      *Ammo  `json:"ammo,omitempty"`

	// Fitting and defense only
	Effect string `json:"effect,omitempty"`
}

// Units returns the item quantity, treating an unset quantity as one
func (i *Item) Units() int32 {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// TotalCost is the item's cost on a hull of the given class
func (i *Item) TotalCost(class HullClass) int64 {
	cost := i.Cost
	if i.CostMultiplier {
		cost *= class.CostMultiplier()
	}
	return cost * int64(i.Units())
}

// TotalPower is the item's power draw on a hull of the given class
func (i *Item) TotalPower(class HullClass) int32 {
	power := i.Power
	if i.PowerMultiplier {
		power *= class.FootprintMultiplier()
	}
	return power * i.Units()
}

// TotalMass is the item's mass on a hull of the given class
func (i *Item) TotalMass(class HullClass) int32 {
	mass := i.Mass
	if i.MassMultiplier {
		mass *= class.FootprintMultiplier()
	}
	return mass * i.Units()
}

// Intact reports whether the item still works
func (i *Item) Intact() bool {
	return !i.Broken && !i.Destroyed
}

// LimitedAmmo reports whether firing the item spends ammunition
func (i *Item) LimitedAmmo() bool {
	return i.Ammo != nil && i.Ammo.Type != AmmoNone && i.Ammo.Max > 0
}

// FitsClass reports whether the item may be installed on a hull of class c
func (i *Item) FitsClass(c HullClass) bool {
	if i.MinClass == "" {
		return true
	}
	return c.Rank() >= i.MinClass.Rank()
}
