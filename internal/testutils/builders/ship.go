// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
)

// ShipBuilder provides a fluent interface for building test Ship instances
type ShipBuilder struct {
	ship *swn.Ship
}

// NewShipBuilder creates a builder for an empty frigate-class ship
func NewShipBuilder() *ShipBuilder {
	return &ShipBuilder{
		ship: &swn.Ship{
			ID:        "ship-test-123",
			Name:      "Test Ship",
			HullClass: swn.HullClassFrigate,
			Roles:     map[string]string{},
		},
	}
}

// WithID sets the ship ID
func (b *ShipBuilder) WithID(id string) *ShipBuilder {
	b.ship.ID = id
	return b
}

// WithOwnerID sets the owner
func (b *ShipBuilder) WithOwnerID(ownerID string) *ShipBuilder {
	b.ship.OwnerID = ownerID
	return b
}

// WithName sets the ship name
func (b *ShipBuilder) WithName(name string) *ShipBuilder {
	b.ship.Name = name
	return b
}

// WithHull stamps the named template from the default hull table
func (b *ShipBuilder) WithHull(hullType string) *ShipBuilder {
	tmpl, ok := swn.DefaultHullTable().Lookup(hullType)
	if !ok {
		panic("builders: unknown hull type " + hullType)
	}
	b.ship.HullType = hullType
	b.ship.HullClass = tmpl.Class
	b.ship.HP = swn.Resource{Value: tmpl.HP, Max: tmpl.HP}
	b.ship.BaseCost = tmpl.Cost
	b.ship.Cost = tmpl.Cost
	b.ship.Armor = tmpl.Armor
	b.ship.AC = tmpl.AC
	b.ship.Speed = tmpl.Speed
	b.ship.Power = swn.Resource{Value: tmpl.Power, Max: tmpl.Power}
	b.ship.Mass = swn.Resource{Value: tmpl.Mass, Max: tmpl.Mass}
	b.ship.Hardpoints = swn.Resource{Value: tmpl.Hardpoints, Max: tmpl.Hardpoints}
	b.ship.Crew = tmpl.Crew
	b.ship.LifeSupportDays = swn.Resource{Value: tmpl.LifeSupportMax(), Max: tmpl.LifeSupportMax()}
	return b
}

// WithFuel sets current and maximum fuel
func (b *ShipBuilder) WithFuel(value, maxValue int32) *ShipBuilder {
	b.ship.Fuel = swn.Resource{Value: value, Max: maxValue}
	return b
}

// WithSpikeDrive sets the drive rating
func (b *ShipBuilder) WithSpikeDrive(value, maxValue int32) *ShipBuilder {
	b.ship.SpikeDrive = swn.SpikeDrive{Value: value, Max: maxValue}
	return b
}

// WithLifeSupport sets current and maximum life-support days
func (b *ShipBuilder) WithLifeSupport(value, maxValue int32) *ShipBuilder {
	b.ship.LifeSupportDays = swn.Resource{Value: value, Max: maxValue}
	return b
}

// WithCredits sets the credit pool
func (b *ShipBuilder) WithCredits(credits int64) *ShipBuilder {
	b.ship.Finance.CreditPool = credits
	return b
}

// WithPayment sets the loan payment schedule
func (b *ShipBuilder) WithPayment(amount int64, months int32, last swn.Date) *ShipBuilder {
	b.ship.Finance.PaymentAmount = amount
	b.ship.Finance.PaymentMonths = months
	b.ship.Finance.LastPayment = last
	return b
}

// WithMaintenance sets the maintenance schedule
func (b *ShipBuilder) WithMaintenance(cost int64, months int32, last swn.Date) *ShipBuilder {
	b.ship.Finance.MaintenanceCost = cost
	b.ship.Finance.MaintenanceMonths = months
	b.ship.Finance.LastMaintenance = last
	return b
}

// WithCrew appends crew IDs to the roster
func (b *ShipBuilder) WithCrew(ids ...string) *ShipBuilder {
	b.ship.Roster = append(b.ship.Roster, ids...)
	return b
}

// WithRole assigns a role
func (b *ShipBuilder) WithRole(role, crewID string) *ShipBuilder {
	b.ship.Roles[role] = crewID
	return b
}

// WithItems installs items
func (b *ShipBuilder) WithItems(items ...swn.Item) *ShipBuilder {
	b.ship.Items = append(b.ship.Items, items...)
	return b
}

// Build returns the built ship
func (b *ShipBuilder) Build() *swn.Ship {
	return b.ship.Clone()
}
