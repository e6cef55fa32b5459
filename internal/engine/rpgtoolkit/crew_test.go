package rpgtoolkit

import (
	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

func (s *AdapterTestSuite) TestAddCrew() {
	s.Run("appends in boarding order", func() {
		ship := freeMerchant()

		out, err := s.adapter.AddCrew(s.ctx, &engine.AddCrewInput{Ship: ship, CrewID: "crew-c"})
		s.Require().NoError(err)
		s.True(out.Added)
		s.Equal([]string{"crew-a", "crew-b", "crew-c"}, out.Ship.Roster)
		s.Equal([]string{"crew-a", "crew-b"}, ship.Roster)
	})

	s.Run("adding twice is the same as adding once", func() {
		once, err := s.adapter.AddCrew(s.ctx, &engine.AddCrewInput{Ship: freeMerchant(), CrewID: "crew-c"})
		s.Require().NoError(err)

		twice, err := s.adapter.AddCrew(s.ctx, &engine.AddCrewInput{Ship: once.Ship, CrewID: "crew-c"})
		s.Require().NoError(err)
		s.False(twice.Added)
		s.Equal(once.Ship, twice.Ship)
	})

	s.Run("requires an ID", func() {
		_, err := s.adapter.AddCrew(s.ctx, &engine.AddCrewInput{Ship: freeMerchant()})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *AdapterTestSuite) TestRemoveCrew() {
	s.Run("add then remove restores the roster and clears roles", func() {
		start := freeMerchant()

		added, err := s.adapter.AddCrew(s.ctx, &engine.AddCrewInput{Ship: start, CrewID: "crew-c"})
		s.Require().NoError(err)
		assigned, err := s.adapter.AssignRole(s.ctx, &engine.AssignRoleInput{
			Ship: added.Ship, Role: swn.RoleBridge, CrewID: "crew-c",
		})
		s.Require().NoError(err)
		assigned, err = s.adapter.AssignRole(s.ctx, &engine.AssignRoleInput{
			Ship: assigned.Ship, Role: swn.RoleGunnery, CrewID: "crew-c",
		})
		s.Require().NoError(err)

		out, err := s.adapter.RemoveCrew(s.ctx, &engine.RemoveCrewInput{Ship: assigned.Ship, CrewID: "crew-c"})
		s.Require().NoError(err)
		s.True(out.Removed)
		s.Equal(start.Roster, out.Ship.Roster)
		s.Equal([]string{swn.RoleBridge, swn.RoleGunnery}, out.RolesCleared)
		_, ok := out.Ship.RoleHolder(swn.RoleBridge)
		s.False(ok)
	})

	s.Run("unknown reference is a no-op", func() {
		ship := freeMerchant()

		out, err := s.adapter.RemoveCrew(s.ctx, &engine.RemoveCrewInput{Ship: ship, CrewID: "ghost"})
		s.Require().NoError(err)
		s.False(out.Removed)
		s.Empty(out.RolesCleared)
		s.Equal(ship, out.Ship)
	})
}

func (s *AdapterTestSuite) TestAssignRole() {
	s.Run("must be on the roster", func() {
		_, err := s.adapter.AssignRole(s.ctx, &engine.AssignRoleInput{
			Ship: freeMerchant(), Role: swn.RoleBridge, CrewID: "ghost",
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("empty reference clears the role", func() {
		ship := freeMerchant()
		ship.Roles[swn.RoleCaptain] = "crew-a"

		out, err := s.adapter.AssignRole(s.ctx, &engine.AssignRoleInput{Ship: ship, Role: swn.RoleCaptain})
		s.Require().NoError(err)
		_, ok := out.Ship.RoleHolder(swn.RoleCaptain)
		s.False(ok)
		s.Equal("crew-a", ship.Roles[swn.RoleCaptain])
	})

	s.Run("works without a roles map", func() {
		ship := freeMerchant()
		ship.Roles = nil

		out, err := s.adapter.AssignRole(s.ctx, &engine.AssignRoleInput{
			Ship: ship, Role: swn.RoleComms, CrewID: "crew-b",
		})
		s.Require().NoError(err)
		holder, ok := out.Ship.RoleHolder(swn.RoleComms)
		s.True(ok)
		s.Equal("crew-b", holder)
	})
}
