package rpgtoolkit

import (
	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

func gunner(id string, shoot, dex int32) *swn.CrewMember {
	return &swn.CrewMember{
		ID:         id,
		Name:       "Gunner " + id,
		Type:       swn.CrewTypeCharacter,
		Skills:     map[string]int32{swn.SkillShoot: shoot},
		Attributes: map[string]int32{swn.AttributeDexterity: dex},
	}
}

func armedMerchant() *swn.Ship {
	ship := freeMerchant()
	ship.Items = []swn.Item{
		{ID: "laser", Name: "Multifocal Laser", Type: swn.ItemTypeWeapon, Damage: "1d4", Hardpoint: 1},
		{
			ID: "torpedo", Name: "Torpedo Launcher", Type: swn.ItemTypeWeapon, Damage: "3d8+2", Hardpoint: 1,
			Ammo: &swn.Ammo{Type: "missile", Value: 2, Max: 4},
		},
		{ID: "hold", Name: "Cargo Space", Type: swn.ItemTypeFitting},
	}
	return ship
}

func (s *AdapterTestSuite) fireInput(ship *swn.Ship, weaponID string, crew ...*swn.CrewMember) *engine.FireWeaponInput {
	return &engine.FireWeaponInput{
		Ship:       ship,
		Crew:       crew,
		WeaponID:   weaponID,
		Difficulty: 14,
	}
}

func (s *AdapterTestSuite) TestFireWeapon() {
	s.Run("gunnery role holder attacks and limited ammo is spent", func() {
		s.roller.push(12, 5, 7, 3)
		ship := armedMerchant()
		ship.Roles[swn.RoleGunnery] = "crew-b"

		out, err := s.adapter.FireWeapon(s.ctx,
			s.fireInput(ship, "torpedo", gunner("crew-a", 0, 0), gunner("crew-b", 1, 1)))
		s.Require().NoError(err)

		s.Require().NotNil(out.Gunner)
		s.Equal("crew-b", out.Gunner.ID)
		s.Equal(int32(1), out.SkillModifier)
		s.Equal(int32(1), out.StatModifier)

		s.Equal("1d20", out.Attack.Pool)
		s.Equal(int32(14), out.Attack.Total)
		s.Equal(engine.TierSuccess, out.Attack.Tier)

		s.Equal("3d8+2", out.Damage.Expression)
		s.Equal([]int32{5, 7, 3}, out.Damage.Dice)
		s.Equal(int32(2), out.Damage.Bonus)
		s.Equal(int32(17), out.Damage.Total)

		s.Equal(int32(1), out.Ship.Items[1].Ammo.Value)
		s.Equal(int32(1), out.Weapon.Ammo.Value)
		s.Equal(int32(2), ship.Items[1].Ammo.Value, "input ship must not change")
		s.Equal([]string{"1d20", "3d8"}, s.roller.calls)
		s.Equal(1, s.bus.count())
	})

	s.Run("weapon without ammo tracking fires freely", func() {
		s.roller.values = nil
		s.roller.push(3, 4)

		out, err := s.adapter.FireWeapon(s.ctx, s.fireInput(armedMerchant(), "laser"))
		s.Require().NoError(err)
		s.Nil(out.Gunner)
		s.Equal(int32(3), out.Attack.Total)
		s.Equal(engine.TierMishap, out.Attack.Tier)
		s.Equal(int32(4), out.Damage.Total)
		s.Nil(out.Ship.Items[0].Ammo)
	})

	s.Run("explicit gunner overrides the role holder", func() {
		s.roller.values = nil
		s.roller.push(10, 2)
		ship := armedMerchant()
		ship.Roles[swn.RoleGunnery] = "crew-b"
		input := s.fireInput(ship, "laser", gunner("crew-a", 2, 2), gunner("crew-b", 0, 0))
		input.GunnerID = "crew-a"
		input.DiceModifier = -1

		out, err := s.adapter.FireWeapon(s.ctx, input)
		s.Require().NoError(err)
		s.Equal("crew-a", out.Gunner.ID)
		s.Equal(int32(3), out.Attack.Modifier)
		s.Equal(int32(13), out.Attack.Total)
		s.Equal(engine.TierFailure, out.Attack.Tier)
	})

	s.Run("negative damage bonus never drops below zero", func() {
		s.roller.values = nil
		s.roller.push(15, 1)
		ship := armedMerchant()
		ship.Items[0].Damage = "1d4-3"

		out, err := s.adapter.FireWeapon(s.ctx, s.fireInput(ship, "laser"))
		s.Require().NoError(err)
		s.Equal(int32(-3), out.Damage.Bonus)
		s.Equal(int32(0), out.Damage.Total)
	})
}

func (s *AdapterTestSuite) TestFireWeaponRejects() {
	testCases := []struct {
		name   string
		mutate func(ship *swn.Ship)
		id     string
		check  func(err error) bool
	}{
		{name: "unknown weapon", id: "ghost", check: errors.IsNotFound},
		{name: "missing weapon ID", id: "", check: errors.IsInvalidArgument},
		{name: "item is not a weapon", id: "hold", check: errors.IsFailedPrecondition},
		{
			name:   "broken weapon",
			id:     "laser",
			mutate: func(ship *swn.Ship) { ship.Items[0].Broken = true },
			check:  errors.IsFailedPrecondition,
		},
		{
			name: "destroyed weapon",
			id:   "laser",
			mutate: func(ship *swn.Ship) {
				ship.Items[0].Broken = true
				ship.Items[0].Destroyed = true
			},
			check: errors.IsFailedPrecondition,
		},
		{
			name:   "empty magazine",
			id:     "torpedo",
			mutate: func(ship *swn.Ship) { ship.Items[1].Ammo.Value = 0 },
			check:  func(err error) bool { return errors.Is(err, errors.ErrOutOfAmmo) },
		},
		{
			name:   "malformed damage",
			id:     "laser",
			mutate: func(ship *swn.Ship) { ship.Items[0].Damage = "lots" },
			check:  errors.IsInvalidArgument,
		},
		{
			name:   "no damage expression",
			id:     "laser",
			mutate: func(ship *swn.Ship) { ship.Items[0].Damage = "" },
			check:  errors.IsFailedPrecondition,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.values = nil
			s.roller.calls = nil
			ship := armedMerchant()
			if tc.mutate != nil {
				tc.mutate(ship)
			}

			out, err := s.adapter.FireWeapon(s.ctx, s.fireInput(ship, tc.id))
			s.Nil(out)
			s.True(tc.check(err), "unexpected error %v", err)
			s.Empty(s.roller.calls)
		})
	}
}

func (s *AdapterTestSuite) TestParseDicePoolBonus() {
	testCases := []struct {
		expr  string
		valid bool
		bonus int32
	}{
		{expr: "2d6", valid: true},
		{expr: "3d8+2", valid: true, bonus: 2},
		{expr: "2d6kh1-1", valid: true, bonus: -1},
		{expr: "1d10+101"},
		{expr: "1d10+"},
		{expr: "+2"},
	}

	for _, tc := range testCases {
		s.Run(tc.expr, func() {
			pool, err := parseDicePool(tc.expr)
			if !tc.valid {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.bonus, pool.bonus)
		})
	}
}
