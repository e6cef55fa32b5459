package testutils

import (
	"time"

	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils/builders"
)

// Fixture IDs shared across packages
const (
	TestShipID    = "ship-test-001"
	TestOwnerID   = "owner-test-001"
	TestShipName  = "Wandering Star"
	TestPilotID   = "crew-pilot-001"
	TestEngineer  = "crew-engineer-001"
	TestPriceFuel = 500
)

// TestTime is the fixed clock reading used by repository and orchestrator tests
var TestTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestShip returns a fuelled, crewed free merchant with a loan and a
// maintenance schedule
func CreateTestShip() *swn.Ship {
	ship := builders.NewShipBuilder().
		WithID(TestShipID).
		WithOwnerID(TestOwnerID).
		WithName(TestShipName).
		WithHull(swn.HullFreeMerchant).
		WithFuel(6, 6).
		WithSpikeDrive(1, 1).
		WithCredits(10000).
		WithPayment(2000, 1, swn.Date{Year: 3200, Month: 1, Day: 15}).
		WithMaintenance(1500, 12, swn.Date{Year: 3199, Month: 6, Day: 1}).
		WithCrew(TestPilotID, TestEngineer).
		WithRole(swn.RoleBridge, TestPilotID).
		Build()
	ship.CreatedAt = TestTime
	ship.UpdatedAt = TestTime
	return ship
}

// CreateTestCrew returns the pilot and engineer referenced by CreateTestShip
func CreateTestCrew() []*swn.CrewMember {
	return []*swn.CrewMember{
		builders.NewCrewMemberBuilder().
			WithID(TestPilotID).
			WithName("Ilsa Varn").
			AsCharacter().
			WithSkill(swn.SkillPilot, 2).
			WithAttribute(swn.AttributeIntelligence, 1).
			WithAttribute(swn.AttributeDexterity, 1).
			Build(),
		builders.NewCrewMemberBuilder().
			WithID(TestEngineer).
			WithName("Deck Hand").
			WithSkill(swn.SkillFix, 1).
			WithAttribute(swn.AttributeIntelligence, 0).
			Build(),
	}
}
