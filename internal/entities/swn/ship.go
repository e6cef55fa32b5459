// Package swn defines the starship domain types for Stars Without Number style play.
package swn

import (
	"slices"
	"time"
)

// EntityTypeShip is the rpg-toolkit entity type for ships
const EntityTypeShip = "ship"

// Resource is a current/maximum pair. Value stays within [0, Max].
type Resource struct {
	Value int32 `json:"value"`
	Max   int32 `json:"max"`
}

// Clamped returns the resource with Value forced into [0, Max]
func (r Resource) Clamped() Resource {
	if r.Max < 0 {
		r.Max = 0
	}
	if r.Value < 0 {
		r.Value = 0
	}
	if r.Value > r.Max {
		r.Value = r.Max
	}
	return r
}

// Spend takes up to n from the resource and returns the remaining resource
// plus how much of n could not be covered.
func (r Resource) Spend(n int32) (Resource, int32) {
	if n <= r.Value {
		r.Value -= n
		return r, 0
	}
	shortfall := n - r.Value
	r.Value = 0
	return r, shortfall
}

// Missing is how much is needed to fill the resource
func (r Resource) Missing() int32 {
	if r.Value >= r.Max {
		return 0
	}
	return r.Max - r.Value
}

// SpikeDrive is the ship's faster-than-light drive. A rating of zero disables it.
type SpikeDrive struct {
	Value int32 `json:"value"`
	Max   int32 `json:"max"`
}

// Usable reports whether the drive can fire
func (s SpikeDrive) Usable() bool {
	return s.Value > 0
}

// CrewRange is the minimum and maximum crew a hull supports
type CrewRange struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

// Finance holds the ship's credit pool and recurring payment schedules
type Finance struct {
	CreditPool        int64 `json:"credit_pool"`
	PaymentAmount     int64 `json:"payment_amount"`
	MaintenanceCost   int64 `json:"maintenance_cost"`
	PaymentMonths     int32 `json:"payment_months"`
	MaintenanceMonths int32 `json:"maintenance_months"`
	LastPayment       Date  `json:"last_payment"`
	LastMaintenance   Date  `json:"last_maintenance"`
}

// Ship is the aggregate root for a starship's operational state
type Ship struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Name      string    `json:"name"`
	HullType  string    `json:"hull_type"`
	HullClass HullClass `json:"hull_class"`

	HP              Resource   `json:"hp"`
	Fuel            Resource   `json:"fuel"`
	LifeSupportDays Resource   `json:"life_support_days"`
	Power           Resource   `json:"power"`
	Mass            Resource   `json:"mass"`
	Hardpoints      Resource   `json:"hardpoints"`
	SpikeDrive      SpikeDrive `json:"spike_drive"`

	AC       int32     `json:"ac"`
	Armor    int32     `json:"armor"`
	Speed    int32     `json:"speed"`
	Crew     CrewRange `json:"crew"`
	BaseCost int64     `json:"base_cost"`
	Cost     int64     `json:"cost"`

	// Roster holds crew member IDs in boarding order
	Roster []string `json:"roster"`
	// Roles maps a role name to a roster entry
	Roles map[string]string `json:"roles"`

	Finance Finance `json:"finance"`
	Items   []Item  `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID implements core.Entity
func (s *Ship) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Ship) GetType() string {
	return EntityTypeShip
}

// Clone returns a deep copy so callers can derive a new state without
// touching the original value.
func (s *Ship) Clone() *Ship {
	if s == nil {
		return nil
	}
	out := *s
	out.Roster = slices.Clone(s.Roster)
	if s.Roles != nil {
		out.Roles = make(map[string]string, len(s.Roles))
		for role, ref := range s.Roles {
			out.Roles[role] = ref
		}
	}
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i := range s.Items {
			out.Items[i] = s.Items[i]
			if s.Items[i].Ammo != nil {
				ammo := *s.Items[i].Ammo
				out.Items[i].Ammo = &ammo
			}
		}
	}
	return &out
}

// HasCrew reports whether ref is on the roster
func (s *Ship) HasCrew(ref string) bool {
	return slices.Contains(s.Roster, ref)
}

// RoleHolder returns the crew member assigned to role, if any
func (s *Ship) RoleHolder(role string) (string, bool) {
	ref, ok := s.Roles[role]
	if !ok || ref == "" {
		return "", false
	}
	return ref, true
}

// FindItem returns the index of the item with the given ID, or -1
func (s *Ship) FindItem(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}
