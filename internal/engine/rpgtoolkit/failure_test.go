package rpgtoolkit

import (
	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

func armedMerchant() *swn.Ship {
	ship := freeMerchant()
	ship.SpikeDrive = swn.SpikeDrive{Value: 2, Max: 2}
	ship.Items = []swn.Item{
		{ID: "w1", Name: "Multifocal Laser", Type: swn.ItemTypeWeapon},
		{ID: "w2", Name: "Sandthrower", Type: swn.ItemTypeWeapon, Broken: true},
		{ID: "w3", Name: "Flak Emitter", Type: swn.ItemTypeWeapon, Broken: true, Destroyed: true},
		{ID: "f1", Name: "Fuel Scoop", Type: swn.ItemTypeFitting},
	}
	return ship
}

func (s *AdapterTestSuite) TestRollSystemFailureValidation() {
	testCases := []struct {
		name     string
		eligible []engine.SystemCategory
		selector engine.SystemCategory
		check    func(error) bool
	}{
		{
			name:  "empty eligible set",
			check: func(err error) bool { return errors.Is(err, errors.ErrNoEligibleSystems) },
		},
		{
			name:     "unknown category",
			eligible: []engine.SystemCategory{"cargo"},
			check:    errors.IsInvalidArgument,
		},
		{
			name:     "selector outside the eligible set",
			eligible: []engine.SystemCategory{engine.SystemWeapon},
			selector: engine.SystemDrive,
			check:    errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
				Ship:     armedMerchant(),
				Eligible: tc.eligible,
				Selector: tc.selector,
			})
			s.Nil(out)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}

	s.Run("empty set is rejected even with a selector", func() {
		_, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     armedMerchant(),
			Selector: engine.SystemDrive,
		})
		s.True(errors.Is(err, errors.ErrNoEligibleSystems))
	})
}

func (s *AdapterTestSuite) TestRollSystemFailureDrive() {
	s.Run("lowers the rating", func() {
		ship := armedMerchant()

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     ship,
			Eligible: engine.SystemCategories,
			Selector: engine.SystemDrive,
		})
		s.Require().NoError(err)
		s.Equal(engine.SystemDrive, out.Outcome.Category)
		s.Equal(engine.SeverityDamaged, out.Outcome.Severity)
		s.Equal(int32(1), out.Ship.SpikeDrive.Value)
		s.Equal(int32(2), ship.SpikeDrive.Value)
	})

	s.Run("last point disables the drive", func() {
		ship := armedMerchant()
		ship.SpikeDrive.Value = 1

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     ship,
			Eligible: []engine.SystemCategory{engine.SystemDrive},
		})
		s.Require().NoError(err)
		s.Equal(engine.SeverityDisabled, out.Outcome.Severity)
		s.Equal(int32(0), out.Ship.SpikeDrive.Value)
		s.Empty(s.roller.calls)
	})

	s.Run("never goes below zero", func() {
		ship := armedMerchant()
		ship.SpikeDrive.Value = 0

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     ship,
			Eligible: []engine.SystemCategory{engine.SystemDrive},
		})
		s.Require().NoError(err)
		s.Equal(engine.SeverityDisabled, out.Outcome.Severity)
		s.Equal(int32(0), out.Ship.SpikeDrive.Value)
	})
}

func (s *AdapterTestSuite) TestRollSystemFailureComponents() {
	s.Run("uniform pick among eligible categories", func() {
		// duplicates collapse to two choices; the lone fitting needs no roll
		s.roller.push(2)
		ship := armedMerchant()

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     ship,
			Eligible: []engine.SystemCategory{engine.SystemDrive, engine.SystemFitting, engine.SystemDrive},
		})
		s.Require().NoError(err)
		s.Equal([]string{"d2"}, s.roller.calls)
		s.Equal(engine.SystemFitting, out.Outcome.Category)
		s.Equal("f1", out.Outcome.ItemID)
		s.Equal(engine.SeverityBroken, out.Outcome.Severity)
		s.True(out.Ship.Items[3].Broken)
		s.False(ship.Items[3].Broken)
	})

	s.Run("intact weapon breaks", func() {
		s.roller.values = nil
		s.roller.push(1)

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     armedMerchant(),
			Eligible: []engine.SystemCategory{engine.SystemWeapon},
		})
		s.Require().NoError(err)
		s.Equal("w1", out.Outcome.ItemID)
		s.Equal(engine.SeverityBroken, out.Outcome.Severity)
		s.True(out.Ship.Items[0].Broken)
		s.False(out.Ship.Items[0].Destroyed)
	})

	s.Run("broken weapon is destroyed and kept", func() {
		s.roller.values = nil
		s.roller.push(2)

		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     armedMerchant(),
			Eligible: []engine.SystemCategory{engine.SystemWeapon},
		})
		s.Require().NoError(err)
		s.Equal("w2", out.Outcome.ItemID)
		s.Equal("Sandthrower", out.Outcome.ItemName)
		s.Equal(engine.SeverityDestroyed, out.Outcome.Severity)
		s.Len(out.Ship.Items, 4)
		s.True(out.Ship.Items[1].Destroyed)
	})

	s.Run("category without components", func() {
		out, err := s.adapter.RollSystemFailure(s.ctx, &engine.RollSystemFailureInput{
			Ship:     armedMerchant(),
			Eligible: []engine.SystemCategory{engine.SystemDefense},
		})
		s.Require().NoError(err)
		s.Equal(engine.SystemDefense, out.Outcome.Category)
		s.Equal(engine.SeverityNone, out.Outcome.Severity)
		s.Empty(out.Outcome.ItemID)
	})
}

func (s *AdapterTestSuite) TestItemStatus() {
	s.Run("toggle broken", func() {
		ship := armedMerchant()

		out, err := s.adapter.SetItemBroken(s.ctx, &engine.SetItemBrokenInput{
			Ship: ship, ItemID: "w2", Broken: false,
		})
		s.Require().NoError(err)
		s.False(out.Ship.Items[1].Broken)
		s.True(ship.Items[1].Broken)
	})

	s.Run("destroy keeps the record", func() {
		out, err := s.adapter.DestroyItem(s.ctx, &engine.DestroyItemInput{
			Ship: armedMerchant(), ItemID: "f1",
		})
		s.Require().NoError(err)
		s.Len(out.Ship.Items, 4)
		s.True(out.Ship.Items[3].Destroyed)
	})

	s.Run("unknown item", func() {
		_, err := s.adapter.SetItemBroken(s.ctx, &engine.SetItemBrokenInput{
			Ship: armedMerchant(), ItemID: "nope", Broken: true,
		})
		s.True(errors.IsNotFound(err))

		_, err = s.adapter.DestroyItem(s.ctx, &engine.DestroyItemInput{
			Ship: armedMerchant(), ItemID: "nope",
		})
		s.True(errors.IsNotFound(err))
	})
}
