package ship_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship"
	crewrepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/crew"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils/builders"
)

const testGunnerID = "crew-gunner-001"

func torpedoLauncher() swn.Item {
	return swn.Item{
		ID:        "torpedo-1",
		Name:      "Torpedo Launcher",
		Type:      swn.ItemTypeWeapon,
		Cost:      500000,
		Power:     10,
		Mass:      3,
		Damage:    "3d8",
		Hardpoint: 1,
		Qualities: "AP 20, Ammo 4",
		MinClass:  swn.HullClassFrigate,
		Ammo:      &swn.Ammo{Type: "missile", Value: 4, Max: 4},
	}
}

func (s *OrchestratorTestSuite) armPatrolBoat() {
	s.testShip = builders.NewShipBuilder().
		WithID(testutils.TestShipID).
		WithOwnerID(testutils.TestOwnerID).
		WithHull(swn.HullPatrolBoat).
		WithFuel(4, 4).
		WithLifeSupport(90, 1200).
		WithCrew(testGunnerID).
		WithRole(swn.RoleGunnery, testGunnerID).
		WithItems(torpedoLauncher()).
		Build()
}

func (s *OrchestratorTestSuite) TestFireWeapon_SpendsAmmoAndRecordsAttack() {
	s.armPatrolBoat()
	gunner := builders.NewCrewMemberBuilder().
		WithID(testGunnerID).
		WithName("Rook Teller").
		AsCharacter().
		WithSkill(swn.SkillShoot, 2).
		WithAttribute(swn.AttributeDexterity, 1).
		Build()

	s.expectLoad()
	s.mockCrewRepo.EXPECT().
		GetMany(s.ctx, crewrepo.GetManyInput{IDs: []string{testGunnerID}}).
		Return(&crewrepo.GetManyOutput{Members: []*swn.CrewMember{gunner}}, nil)

	fired := s.testShip.Clone()
	fired.Items[0].Ammo.Value = 3
	attack := &engine.RollOutcome{
		Pool:       swn.DicePoolAttack,
		Dice:       []int32{13},
		Kept:       []int32{13},
		Modifier:   3,
		Total:      16,
		Difficulty: 14,
		Tier:       engine.TierSuccess,
	}
	damage := &engine.DamageRoll{Expression: "3d8", Dice: []int32{8, 2, 7}, Total: 17}
	s.mockEngine.EXPECT().
		FireWeapon(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.FireWeaponInput) (*engine.FireWeaponOutput, error) {
			s.Equal(s.testShip, input.Ship)
			s.Equal([]*swn.CrewMember{gunner}, input.Crew)
			s.Equal("torpedo-1", input.WeaponID)
			s.Equal(int32(14), input.Difficulty)
			return &engine.FireWeaponOutput{
				Ship:          fired,
				Weapon:        fired.Items[0],
				Gunner:        gunner,
				SkillModifier: 2,
				StatModifier:  1,
				Attack:        attack,
				Damage:        damage,
			}, nil
		})
	s.expectSave()

	s.mockIDGen.EXPECT().Generate().Return("roll-1")
	s.mockRollLog.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			s.Equal(rolllog.KindWeaponAttack, input.Entry.Kind)
			s.Equal("Torpedo Launcher success (16 vs 14), 17 damage", input.Entry.Summary)
			s.Equal(swn.DicePoolAttack, input.Entry.Pool)
			s.Equal(int32(3), input.Entry.Modifier)
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.FireWeapon(s.ctx, &ship.FireWeaponInput{
		ShipID:     testutils.TestShipID,
		WeaponID:   "torpedo-1",
		Difficulty: 14,
	})

	s.Require().NoError(err)
	s.Equal(testGunnerID, out.Gunner.ID)
	s.Equal(int32(3), out.Ship.Items[0].Ammo.Value)
	s.Equal(int32(17), out.Damage.Total)
	s.True(out.Attack.Succeeded())
}

func (s *OrchestratorTestSuite) TestFireWeapon_RejectedShotSavesNothing() {
	s.armPatrolBoat()
	s.testShip.Items[0].Ammo.Value = 0

	s.expectLoad()
	s.mockCrewRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&crewrepo.GetManyOutput{}, nil)
	s.mockEngine.EXPECT().
		FireWeapon(s.ctx, gomock.Any()).
		Return(nil, errors.OutOfAmmo("torpedo-1"))

	_, err := s.orchestrator.FireWeapon(s.ctx, &ship.FireWeaponInput{
		ShipID:     testutils.TestShipID,
		WeaponID:   "torpedo-1",
		Difficulty: 14,
	})

	s.True(errors.Is(err, errors.ErrOutOfAmmo))
}

func (s *OrchestratorTestSuite) TestUpdateItem() {
	s.Run("replaces fields and keeps damage flags", func() {
		s.armPatrolBoat()
		s.testShip.Items[0].Broken = true

		s.expectLoad()
		s.mockEngine.EXPECT().
			CalculateCost(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *engine.CalculateCostInput) (*engine.CalculateCostOutput, error) {
				s.Require().Len(input.Ship.Items, 1)
				s.Equal(int32(2), input.Ship.Items[0].Quantity)
				s.True(input.Ship.Items[0].Broken)
				recalculated := input.Ship.Clone()
				recalculated.Cost += 2 * 500000
				return &engine.CalculateCostOutput{
					Ship:     recalculated,
					Warnings: []engine.Warning{{Code: engine.WarningOverloaded, Message: "power overloaded"}},
				}, nil
			})
		s.expectSave()

		edited := torpedoLauncher()
		edited.Quantity = 2
		edited.Name = "Twin Torpedo Launcher"

		out, err := s.orchestrator.UpdateItem(s.ctx, &ship.UpdateItemInput{
			ShipID: testutils.TestShipID,
			Item:   edited,
		})

		s.Require().NoError(err)
		s.Equal("Twin Torpedo Launcher", out.Ship.Items[0].Name)
		s.True(out.Item.Broken)
		s.False(out.Item.Destroyed)
		s.Require().Len(out.Warnings, 1)
		s.Equal(engine.WarningOverloaded, out.Warnings[0].Code)
	})

	s.Run("unknown item", func() {
		s.armPatrolBoat()
		s.expectLoad()

		edited := torpedoLauncher()
		edited.ID = "ghost"
		_, err := s.orchestrator.UpdateItem(s.ctx, &ship.UpdateItemInput{
			ShipID: testutils.TestShipID,
			Item:   edited,
		})

		s.True(errors.IsNotFound(err))
	})

	s.Run("hull too small for the edit", func() {
		s.armPatrolBoat()
		s.expectLoad()

		edited := torpedoLauncher()
		edited.MinClass = swn.HullClassCapital
		_, err := s.orchestrator.UpdateItem(s.ctx, &ship.UpdateItemInput{
			ShipID: testutils.TestShipID,
			Item:   edited,
		})

		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("item ID is required", func() {
		edited := torpedoLauncher()
		edited.ID = ""
		_, err := s.orchestrator.UpdateItem(s.ctx, &ship.UpdateItemInput{
			ShipID: testutils.TestShipID,
			Item:   edited,
		})

		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid quantity", func() {
		edited := torpedoLauncher()
		edited.Quantity = -1
		_, err := s.orchestrator.UpdateItem(s.ctx, &ship.UpdateItemInput{
			ShipID: testutils.TestShipID,
			Item:   edited,
		})

		s.True(errors.IsInvalidArgument(err))
	})
}
