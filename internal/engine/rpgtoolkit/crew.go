package rpgtoolkit

import (
	"context"
	"slices"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
)

// AddCrew appends a crew reference to the roster. Adding a reference that is
// already aboard returns the ship unchanged.
func (a *Adapter) AddCrew(ctx context.Context, input *engine.AddCrewInput) (*engine.AddCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.CrewID == "" {
		return nil, errors.InvalidArgument("crew ID is required")
	}

	ship := input.Ship.Clone()
	if ship.HasCrew(input.CrewID) {
		return &engine.AddCrewOutput{Ship: ship}, nil
	}
	ship.Roster = append(ship.Roster, input.CrewID)

	a.publish(ctx, EventCrewChanged, ship, nil)

	return &engine.AddCrewOutput{Ship: ship, Added: true}, nil
}

// RemoveCrew drops a crew reference from the roster and clears every role it
// held. Unknown references are a no-op.
func (a *Adapter) RemoveCrew(ctx context.Context, input *engine.RemoveCrewInput) (*engine.RemoveCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}

	ship := input.Ship.Clone()
	before := len(ship.Roster)
	ship.Roster = slices.DeleteFunc(ship.Roster, func(ref string) bool {
		return ref == input.CrewID
	})

	var cleared []string
	for role, ref := range ship.Roles {
		if ref == input.CrewID {
			delete(ship.Roles, role)
			cleared = append(cleared, role)
		}
	}
	slices.Sort(cleared)

	removed := len(ship.Roster) < before
	if removed || len(cleared) > 0 {
		a.publish(ctx, EventCrewChanged, ship, nil)
	}

	return &engine.RemoveCrewOutput{
		Ship:         ship,
		Removed:      removed,
		RolesCleared: cleared,
	}, nil
}

// AssignRole points a role at a roster member. An empty crew ID clears it.
func (a *Adapter) AssignRole(ctx context.Context, input *engine.AssignRoleInput) (*engine.AssignRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireShip(input.Ship); err != nil {
		return nil, err
	}
	if input.Role == "" {
		return nil, errors.InvalidArgument("role is required")
	}
	if input.CrewID != "" && !input.Ship.HasCrew(input.CrewID) {
		return nil, errors.FailedPreconditionf("crew member %s is not on the roster", input.CrewID).
			WithMeta("crew_id", input.CrewID)
	}

	ship := input.Ship.Clone()
	if input.CrewID == "" {
		delete(ship.Roles, input.Role)
	} else {
		if ship.Roles == nil {
			ship.Roles = make(map[string]string)
		}
		ship.Roles[input.Role] = input.CrewID
	}

	a.publish(ctx, EventCrewChanged, ship, nil)

	return &engine.AssignRoleOutput{Ship: ship}, nil
}
