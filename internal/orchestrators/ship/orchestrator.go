// Package ship implements the ship orchestrator. It loads ship state from
// storage, hands it to the rules engine, and persists what the engine returns.
package ship

//go:generate mockgen -destination=mock/mock_service.go -package=shipservicemock github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/idgen"
	crewrepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/crew"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
	shiprepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship"
)

// Defaults applied when a ship is commissioned
const (
	DefaultFuelMax          = 1
	DefaultSpikeDriveRating = 1
)

// Service defines the interface for ship operations
type Service interface {
	// Ship lifecycle
	CreateShip(ctx context.Context, input *CreateShipInput) (*CreateShipOutput, error)
	GetShip(ctx context.Context, input *GetShipInput) (*GetShipOutput, error)
	ListShips(ctx context.Context, input *ListShipsInput) (*ListShipsOutput, error)
	DeleteShip(ctx context.Context, input *DeleteShipInput) (*DeleteShipOutput, error)
	ListHullTemplates(ctx context.Context, input *ListHullTemplatesInput) (*ListHullTemplatesOutput, error)
	ApplyHullTemplate(ctx context.Context, input *ApplyHullTemplateInput) (*ApplyHullTemplateOutput, error)

	// Movement and supply
	Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error)
	SpikeTravel(ctx context.Context, input *SpikeTravelInput) (*SpikeTravelOutput, error)
	Refuel(ctx context.Context, input *RefuelInput) (*RefuelOutput, error)
	ResupplyLifeSupport(ctx context.Context, input *ResupplyLifeSupportInput) (*ResupplyLifeSupportOutput, error)

	// Combat damage
	RollCrisis(ctx context.Context, input *RollCrisisInput) (*RollCrisisOutput, error)
	RollSystemFailure(ctx context.Context, input *RollSystemFailureInput) (*RollSystemFailureOutput, error)

	// Finance
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)
	CalculateCost(ctx context.Context, input *CalculateCostInput) (*CalculateCostOutput, error)
	ListLedger(ctx context.Context, input *ListLedgerInput) (*ListLedgerOutput, error)

	// Crew
	CreateCrewMember(ctx context.Context, input *CreateCrewMemberInput) (*CreateCrewMemberOutput, error)
	GetCrewMember(ctx context.Context, input *GetCrewMemberInput) (*GetCrewMemberOutput, error)
	UpdateCrewMember(ctx context.Context, input *UpdateCrewMemberInput) (*UpdateCrewMemberOutput, error)
	AddCrew(ctx context.Context, input *AddCrewInput) (*AddCrewOutput, error)
	RemoveCrew(ctx context.Context, input *RemoveCrewInput) (*RemoveCrewOutput, error)
	AssignRole(ctx context.Context, input *AssignRoleInput) (*AssignRoleOutput, error)

	// Installed items
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error)
	SetItemBroken(ctx context.Context, input *SetItemBrokenInput) (*SetItemBrokenOutput, error)
	DestroyItem(ctx context.Context, input *DestroyItemInput) (*DestroyItemOutput, error)
	FireWeapon(ctx context.Context, input *FireWeaponInput) (*FireWeaponOutput, error)

	// Roll history
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)
}

// Config holds the dependencies for the ship orchestrator
type Config struct {
	Engine      engine.Engine
	ShipRepo    shiprepo.Repository
	CrewRepo    crewrepo.Repository
	RollLogRepo rolllog.Repository
	LedgerRepo  ledger.Repository
	IDGenerator idgen.Generator
	// Clock stamps log entries; defaults to the real clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ShipRepo == nil {
		vb.RequiredField("ShipRepo")
	}
	if c.CrewRepo == nil {
		vb.RequiredField("CrewRepo")
	}
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.LedgerRepo == nil {
		vb.RequiredField("LedgerRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine      engine.Engine
	shipRepo    shiprepo.Repository
	crewRepo    crewrepo.Repository
	rollLogRepo rolllog.Repository
	ledgerRepo  ledger.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	locks       *shipLocks
}

var _ Service = (*Orchestrator)(nil)

// New creates a new ship orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		engine:      cfg.Engine,
		shipRepo:    cfg.ShipRepo,
		crewRepo:    cfg.CrewRepo,
		rollLogRepo: cfg.RollLogRepo,
		ledgerRepo:  cfg.LedgerRepo,
		idGen:       cfg.IDGenerator,
		clock:       c,
		locks:       newShipLocks(),
	}, nil
}

// shipLocks serializes read-modify-write cycles per ship. Entries are
// dropped once no caller holds or waits on them.
type shipLocks struct {
	mu    sync.Mutex
	locks map[string]*shipLock
}

type shipLock struct {
	mu   sync.Mutex
	refs int
}

func newShipLocks() *shipLocks {
	return &shipLocks{locks: make(map[string]*shipLock)}
}

func (l *shipLocks) lock(shipID string) func() {
	l.mu.Lock()
	sl, ok := l.locks[shipID]
	if !ok {
		sl = &shipLock{}
		l.locks[shipID] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()

	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, shipID)
		}
		l.mu.Unlock()
	}
}

func (o *Orchestrator) loadShip(ctx context.Context, shipID string) (*swn.Ship, error) {
	out, err := o.shipRepo.Get(ctx, shiprepo.GetInput{ID: shipID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ship %s", shipID)
	}
	return out.Ship, nil
}

// mutate runs fn against the stored ship while holding the ship's lock and
// persists the ship fn returns. Nothing is written when fn fails.
func (o *Orchestrator) mutate(
	ctx context.Context,
	shipID string,
	fn func(current *swn.Ship) (*swn.Ship, error),
) (*swn.Ship, error) {
	if shipID == "" {
		return nil, errors.InvalidArgument("ship ID is required")
	}

	unlock := o.locks.lock(shipID)
	defer unlock()

	current, err := o.loadShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	out, err := o.shipRepo.Update(ctx, shiprepo.UpdateInput{Ship: next})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save ship %s", shipID)
	}

	return out.Ship, nil
}

// loadRoster resolves the ship's roster to stored crew members
func (o *Orchestrator) loadRoster(ctx context.Context, ship *swn.Ship) ([]*swn.CrewMember, []string, error) {
	if len(ship.Roster) == 0 {
		return nil, nil, nil
	}

	out, err := o.crewRepo.GetMany(ctx, crewrepo.GetManyInput{IDs: ship.Roster})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load crew for ship %s", ship.ID)
	}

	if len(out.Missing) > 0 {
		slog.Warn("ship roster references unknown crew",
			"ship_id", ship.ID,
			"missing", out.Missing)
	}

	return out.Members, out.Missing, nil
}

// recordRoll appends to the roll log. The ship change is already saved, so a
// failure here is logged rather than returned.
func (o *Orchestrator) recordRoll(ctx context.Context, entry *rolllog.Entry) {
	entry.ID = o.idGen.Generate()
	entry.CreatedAt = o.clock.Now()

	if _, err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{Entry: entry}); err != nil {
		slog.Error("failed to record roll",
			"ship_id", entry.ShipID,
			"kind", entry.Kind,
			"error", err)
	}
}

// recordDebit writes a ledger entry for a credit pool debit. Like recordRoll
// it only logs failures.
func (o *Orchestrator) recordDebit(ctx context.Context, ship *swn.Ship, kind ledger.Kind, amount int64, gameDate, note string) {
	if amount <= 0 {
		return
	}

	_, err := o.ledgerRepo.Record(ctx, ledger.RecordInput{Entry: &ledger.Entry{
		ID:           o.idGen.Generate(),
		ShipID:       ship.ID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: ship.Finance.CreditPool,
		GameDate:     gameDate,
		Note:         note,
		CreatedAt:    o.clock.Now(),
	}})
	if err != nil {
		slog.Error("failed to record ledger entry",
			"ship_id", ship.ID,
			"kind", kind,
			"amount", amount,
			"error", err)
	}
}
