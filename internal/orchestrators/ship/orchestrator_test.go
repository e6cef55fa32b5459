package ship_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/swn-ship-api/internal/engine"
	enginemock "github.com/KirkDiggler/swn-ship-api/internal/engine/mock"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/swn-ship-api/internal/pkg/idgen/mock"
	crewrepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/crew"
	crewrepomock "github.com/KirkDiggler/swn-ship-api/internal/repositories/crew/mock"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	ledgermock "github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger/mock"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
	rolllogmock "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log/mock"
	shiprepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship"
	shiprepomock "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship/mock"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *enginemock.MockEngine
	mockShipRepo *shiprepomock.MockRepository
	mockCrewRepo *crewrepomock.MockRepository
	mockRollLog  *rolllogmock.MockRepository
	mockLedger   *ledgermock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	orchestrator *ship.Orchestrator
	ctx          context.Context
	testShip     *swn.Ship
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockShipRepo = shiprepomock.NewMockRepository(s.ctrl)
	s.mockCrewRepo = crewrepomock.NewMockRepository(s.ctrl)
	s.mockRollLog = rolllogmock.NewMockRepository(s.ctrl)
	s.mockLedger = ledgermock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()
	s.testShip = testutils.CreateTestShip()

	orchestrator, err := ship.New(&ship.Config{
		Engine:      s.mockEngine,
		ShipRepo:    s.mockShipRepo,
		CrewRepo:    s.mockCrewRepo,
		RollLogRepo: s.mockRollLog,
		LedgerRepo:  s.mockLedger,
		IDGenerator: s.mockIDGen,
		Clock:       &clock.Fixed{At: testutils.TestTime},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectLoad() {
	mocks.ExpectShipLoad(s.ctx, s.mockShipRepo, s.testShip)
}

func (s *OrchestratorTestSuite) expectSave() {
	mocks.ExpectShipSave(s.ctx, s.mockShipRepo)
}

func (s *OrchestratorTestSuite) TestNew_MissingDependencies() {
	_, err := ship.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = ship.New(&ship.Config{Engine: s.mockEngine})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestCreateShip_Success() {
	s.mockIDGen.EXPECT().Generate().Return("ship-new")

	s.mockEngine.EXPECT().
		ApplyHullTemplate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.ApplyHullTemplateInput) (*engine.ApplyHullTemplateOutput, error) {
			s.Equal(swn.HullFreeMerchant, input.HullType)
			s.Equal("ship-new", input.Ship.ID)
			s.Equal(swn.Resource{Value: ship.DefaultFuelMax, Max: ship.DefaultFuelMax}, input.Ship.Fuel)
			s.Equal(int32(ship.DefaultSpikeDriveRating), input.Ship.SpikeDrive.Value)
			hulled := input.Ship.Clone()
			hulled.HullType = input.HullType
			return &engine.ApplyHullTemplateOutput{Ship: hulled}, nil
		})

	s.mockShipRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input shiprepo.CreateInput) (*shiprepo.CreateOutput, error) {
			return &shiprepo.CreateOutput{Ship: input.Ship}, nil
		})

	out, err := s.orchestrator.CreateShip(s.ctx, &ship.CreateShipInput{
		OwnerID:  testutils.TestOwnerID,
		Name:     testutils.TestShipName,
		HullType: swn.HullFreeMerchant,
		Finance:  swn.Finance{CreditPool: 1000},
	})

	s.Require().NoError(err)
	s.Equal("ship-new", out.Ship.ID)
	s.Equal(testutils.TestOwnerID, out.Ship.OwnerID)
	s.Equal(int64(1000), out.Ship.Finance.CreditPool)
}

func (s *OrchestratorTestSuite) TestCreateShip_LifeSupportStock() {
	testCases := []struct {
		name  string
		stock int32
		want  swn.Resource
	}{
		{name: "omitted stock fills to the hull maximum", stock: 0, want: swn.Resource{Value: 360, Max: 360}},
		{name: "explicit stock is kept", stock: 45, want: swn.Resource{Value: 45, Max: 360}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockIDGen.EXPECT().Generate().Return("ship-new")
			s.mockEngine.EXPECT().
				ApplyHullTemplate(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, input *engine.ApplyHullTemplateInput) (*engine.ApplyHullTemplateOutput, error) {
					s.Equal(tc.stock, input.Ship.LifeSupportDays.Value)
					hulled := input.Ship.Clone()
					hulled.LifeSupportDays.Max = 360
					return &engine.ApplyHullTemplateOutput{Ship: hulled}, nil
				})
			s.mockShipRepo.EXPECT().
				Create(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, input shiprepo.CreateInput) (*shiprepo.CreateOutput, error) {
					s.Equal(tc.want, input.Ship.LifeSupportDays)
					return &shiprepo.CreateOutput{Ship: input.Ship}, nil
				})

			out, err := s.orchestrator.CreateShip(s.ctx, &ship.CreateShipInput{
				Name:            testutils.TestShipName,
				HullType:        swn.HullFreeMerchant,
				LifeSupportDays: tc.stock,
			})

			s.Require().NoError(err)
			s.Equal(tc.want, out.Ship.LifeSupportDays)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateShip_Validation() {
	out, err := s.orchestrator.CreateShip(s.ctx, &ship.CreateShipInput{
		HullType: swn.HullFreeMerchant,
		FuelMax:  -1,
	})

	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
}

func (s *OrchestratorTestSuite) TestCreateShip_UnknownHull() {
	s.mockIDGen.EXPECT().Generate().Return("ship-new")
	s.mockEngine.EXPECT().
		ApplyHullTemplate(s.ctx, gomock.Any()).
		Return(nil, errors.UnknownHullType("dreadnought"))

	_, err := s.orchestrator.CreateShip(s.ctx, &ship.CreateShipInput{
		Name:     testutils.TestShipName,
		HullType: "dreadnought",
	})

	s.True(errors.Is(err, errors.ErrUnknownHullType))
}

func (s *OrchestratorTestSuite) TestGetShip_ResolvesRoster() {
	crew := testutils.CreateTestCrew()
	s.testShip.Roster = []string{testutils.TestPilotID, testutils.TestEngineer, "crew-gone"}

	s.expectLoad()
	s.mockCrewRepo.EXPECT().
		GetMany(s.ctx, crewrepo.GetManyInput{IDs: s.testShip.Roster}).
		Return(&crewrepo.GetManyOutput{Members: crew, Missing: []string{"crew-gone"}}, nil)

	out, err := s.orchestrator.GetShip(s.ctx, &ship.GetShipInput{ShipID: testutils.TestShipID})

	s.Require().NoError(err)
	s.Equal(s.testShip, out.Ship)
	s.Len(out.Crew, 2)
	s.Equal([]string{"crew-gone"}, out.MissingCrew)
}

func (s *OrchestratorTestSuite) TestGetShip_NotFound() {
	mocks.ExpectShipMissing(s.ctx, s.mockShipRepo, "missing", errors.NotFound("ship not found"))

	_, err := s.orchestrator.GetShip(s.ctx, &ship.GetShipInput{ShipID: "missing"})

	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestTravel_PersistsEngineResult() {
	s.expectLoad()

	travelled := s.testShip.Clone()
	travelled.LifeSupportDays.Value = 350
	s.mockEngine.EXPECT().
		Travel(s.ctx, &engine.TravelInput{Ship: s.testShip, Days: 10}).
		Return(&engine.TravelOutput{
			Ship:        travelled,
			LifeSupport: engine.LifeSupportResult{Requested: 10, Consumed: 10},
		}, nil)
	s.expectSave()

	out, err := s.orchestrator.Travel(s.ctx, &ship.TravelInput{ShipID: testutils.TestShipID, Days: 10})

	s.Require().NoError(err)
	s.Equal(int32(350), out.Ship.LifeSupportDays.Value)
	s.Equal(int32(10), out.LifeSupport.Consumed)
}

func (s *OrchestratorTestSuite) TestTravel_RequiresShipID() {
	_, err := s.orchestrator.Travel(s.ctx, &ship.TravelInput{Days: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSpikeTravel_RecordsRoll() {
	crew := testutils.CreateTestCrew()
	s.testShip.Roster = []string{testutils.TestPilotID, testutils.TestEngineer}

	s.expectLoad()
	s.mockCrewRepo.EXPECT().
		GetMany(s.ctx, gomock.Any()).
		Return(&crewrepo.GetManyOutput{Members: crew}, nil)

	drilled := s.testShip.Clone()
	drilled.Fuel.Value--
	roll := &engine.RollOutcome{
		Pool:       swn.DicePool2d6,
		Dice:       []int32{4, 5},
		Kept:       []int32{5, 4},
		Modifier:   3,
		Total:      12,
		Difficulty: 9,
		Tier:       engine.TierSuccess,
	}
	s.mockEngine.EXPECT().
		AttemptSpikeTravel(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.AttemptSpikeTravelInput) (*engine.AttemptSpikeTravelOutput, error) {
			s.Equal(crew, input.Crew)
			s.Equal(int32(9), input.Difficulty)
			return &engine.AttemptSpikeTravelOutput{Ship: drilled, Pilot: crew[0], Roll: roll}, nil
		})
	s.expectSave()

	s.mockIDGen.EXPECT().Generate().Return("roll-1")
	s.mockRollLog.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			s.Equal("roll-1", input.Entry.ID)
			s.Equal(rolllog.KindSpikeDrill, input.Entry.Kind)
			s.Equal("success (12 vs 9)", input.Entry.Summary)
			s.Equal(testutils.TestTime, input.Entry.CreatedAt)
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.SpikeTravel(s.ctx, &ship.SpikeTravelInput{
		ShipID:     testutils.TestShipID,
		Difficulty: 9,
		TravelDays: 6,
	})

	s.Require().NoError(err)
	s.Equal(testutils.TestPilotID, out.Pilot.ID)
	s.Equal(int32(5), out.Ship.Fuel.Value)
	s.True(out.Roll.Succeeded())
}

func (s *OrchestratorTestSuite) TestSpikeTravel_OutOfFuelSavesNothing() {
	s.testShip.Fuel.Value = 0

	s.expectLoad()
	s.mockEngine.EXPECT().
		AttemptSpikeTravel(s.ctx, gomock.Any()).
		Return(nil, errors.OutOfFuel())

	_, err := s.orchestrator.SpikeTravel(s.ctx, &ship.SpikeTravelInput{
		ShipID:     testutils.TestShipID,
		Difficulty: 7,
		TravelDays: 6,
	})

	s.True(errors.Is(err, errors.ErrOutOfFuel))
}

func (s *OrchestratorTestSuite) TestRefuel_RecordsDebit() {
	s.testShip.Fuel.Value = 2

	s.expectLoad()
	refuelled := s.testShip.Clone()
	refuelled.Fuel.Value = refuelled.Fuel.Max
	refuelled.Finance.CreditPool -= 4 * testutils.TestPriceFuel
	s.mockEngine.EXPECT().
		Refuel(s.ctx, &engine.RefuelInput{Ship: s.testShip, PricePerUnit: testutils.TestPriceFuel}).
		Return(&engine.RefuelOutput{Ship: refuelled, UnitsAdded: 4, Cost: 4 * testutils.TestPriceFuel}, nil)
	s.expectSave()

	s.mockIDGen.EXPECT().Generate().Return("ledger-1")
	s.mockLedger.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input ledger.RecordInput) (*ledger.RecordOutput, error) {
			s.Equal(ledger.KindRefuel, input.Entry.Kind)
			s.Equal(int64(2000), input.Entry.Amount)
			s.Equal(refuelled.Finance.CreditPool, input.Entry.BalanceAfter)
			return &ledger.RecordOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.Refuel(s.ctx, &ship.RefuelInput{
		ShipID:       testutils.TestShipID,
		PricePerUnit: testutils.TestPriceFuel,
	})

	s.Require().NoError(err)
	s.Equal(int32(4), out.UnitsAdded)
	s.Equal(int64(8000), out.Ship.Finance.CreditPool)
}

func (s *OrchestratorTestSuite) TestRefuel_FullTankRecordsNothing() {
	s.expectLoad()
	s.mockEngine.EXPECT().
		Refuel(s.ctx, gomock.Any()).
		Return(&engine.RefuelOutput{Ship: s.testShip.Clone()}, nil)
	s.expectSave()

	out, err := s.orchestrator.Refuel(s.ctx, &ship.RefuelInput{
		ShipID:       testutils.TestShipID,
		PricePerUnit: testutils.TestPriceFuel,
	})

	s.Require().NoError(err)
	s.Zero(out.Cost)
}

func (s *OrchestratorTestSuite) TestRefuel_LedgerFailureIsNotFatal() {
	s.testShip.Fuel.Value = 5

	s.expectLoad()
	refuelled := s.testShip.Clone()
	refuelled.Fuel.Value = 6
	s.mockEngine.EXPECT().
		Refuel(s.ctx, gomock.Any()).
		Return(&engine.RefuelOutput{Ship: refuelled, UnitsAdded: 1, Cost: 500}, nil)
	s.expectSave()
	s.mockIDGen.EXPECT().Generate().Return("ledger-1")
	s.mockLedger.EXPECT().
		Record(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("database is locked"))

	out, err := s.orchestrator.Refuel(s.ctx, &ship.RefuelInput{
		ShipID:       testutils.TestShipID,
		PricePerUnit: 500,
	})

	s.Require().NoError(err)
	s.Equal(int32(6), out.Ship.Fuel.Value)
}

func (s *OrchestratorTestSuite) TestRefuel_InsufficientFundsSavesNothing() {
	s.expectLoad()
	s.mockEngine.EXPECT().
		Refuel(s.ctx, gomock.Any()).
		Return(nil, errors.InsufficientFunds(5000, 100))

	_, err := s.orchestrator.Refuel(s.ctx, &ship.RefuelInput{
		ShipID:       testutils.TestShipID,
		PricePerUnit: 1000,
	})

	s.True(errors.Is(err, errors.ErrInsufficientFunds))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSettle_RecordsPayment() {
	s.expectLoad()
	settled := s.testShip.Clone()
	settled.Finance.CreditPool -= settled.Finance.PaymentAmount
	paidOn := swn.Date{Year: 3200, Month: 2, Day: 1}
	s.mockEngine.EXPECT().
		SettleSchedule(s.ctx, &engine.SettleScheduleInput{Ship: s.testShip, Kind: engine.SchedulePayment}).
		Return(&engine.SettleScheduleOutput{
			Ship:    settled,
			Amount:  settled.Finance.PaymentAmount,
			PaidOn:  paidOn,
			NextDue: paidOn.AddMonths(1),
		}, nil)
	s.expectSave()

	s.mockIDGen.EXPECT().Generate().Return("ledger-1")
	s.mockLedger.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input ledger.RecordInput) (*ledger.RecordOutput, error) {
			s.Equal(ledger.KindPayment, input.Entry.Kind)
			s.Equal("3200-02-01", input.Entry.GameDate)
			s.Equal("next due 3200-03-01", input.Entry.Note)
			return &ledger.RecordOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.Settle(s.ctx, &ship.SettleInput{
		ShipID: testutils.TestShipID,
		Kind:   engine.SchedulePayment,
	})

	s.Require().NoError(err)
	s.Equal(paidOn, out.PaidOn)
	s.Equal(int64(8000), out.Ship.Finance.CreditPool)
}

func (s *OrchestratorTestSuite) TestRollCrisis_DoesNotSaveShip() {
	s.expectLoad()
	s.mockEngine.EXPECT().
		RollCrisis(s.ctx, &engine.RollCrisisInput{Ship: s.testShip}).
		Return(&engine.RollCrisisOutput{
			Roll:   7,
			Crisis: engine.Crisis{Key: "hullBreach", Name: "Hull Breach"},
		}, nil)
	s.mockIDGen.EXPECT().Generate().Return("roll-1")
	s.mockRollLog.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			s.Equal(rolllog.KindCrisis, input.Entry.Kind)
			s.Equal("Hull Breach", input.Entry.Summary)
			s.Equal(int32(7), input.Entry.Total)
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.RollCrisis(s.ctx, &ship.RollCrisisInput{ShipID: testutils.TestShipID})

	s.Require().NoError(err)
	s.Equal("hullBreach", out.Crisis.Key)
}

func (s *OrchestratorTestSuite) TestRollSystemFailure_RecordsOutcome() {
	s.expectLoad()
	damaged := s.testShip.Clone()
	s.mockEngine.EXPECT().
		RollSystemFailure(s.ctx, gomock.Any()).
		Return(&engine.RollSystemFailureOutput{
			Ship: damaged,
			Outcome: engine.SystemFailureOutcome{
				Category: engine.SystemWeapon,
				ItemID:   "w1",
				ItemName: "Plasma Beam",
				Severity: engine.SeverityBroken,
			},
		}, nil)
	s.expectSave()
	s.mockIDGen.EXPECT().Generate().Return("roll-1")
	s.mockRollLog.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			s.Equal("weapon: Plasma Beam broken", input.Entry.Summary)
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.RollSystemFailure(s.ctx, &ship.RollSystemFailureInput{
		ShipID:   testutils.TestShipID,
		Eligible: []engine.SystemCategory{engine.SystemWeapon},
	})

	s.Require().NoError(err)
	s.Equal(engine.SeverityBroken, out.Outcome.Severity)
}

func (s *OrchestratorTestSuite) TestAddCrew_UnknownCrewMember() {
	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: "crew-ghost"}).
		Return(nil, errors.NotFound("crew member not found"))

	_, err := s.orchestrator.AddCrew(s.ctx, &ship.AddCrewInput{
		ShipID: testutils.TestShipID,
		CrewID: "crew-ghost",
	})

	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAddCrew_Boards() {
	crew := testutils.CreateTestCrew()
	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: testutils.TestEngineer}).
		Return(&crewrepo.GetOutput{Member: crew[1]}, nil)
	s.expectLoad()

	boarded := s.testShip.Clone()
	boarded.Roster = append(boarded.Roster, testutils.TestEngineer)
	s.mockEngine.EXPECT().
		AddCrew(s.ctx, &engine.AddCrewInput{Ship: s.testShip, CrewID: testutils.TestEngineer}).
		Return(&engine.AddCrewOutput{Ship: boarded, Added: true}, nil)
	s.expectSave()

	out, err := s.orchestrator.AddCrew(s.ctx, &ship.AddCrewInput{
		ShipID: testutils.TestShipID,
		CrewID: testutils.TestEngineer,
	})

	s.Require().NoError(err)
	s.True(out.Added)
	s.Contains(out.Ship.Roster, testutils.TestEngineer)
}

func (s *OrchestratorTestSuite) TestAssignRole_PassesThroughPrecondition() {
	s.expectLoad()
	s.mockEngine.EXPECT().
		AssignRole(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("crew member is not aboard"))

	_, err := s.orchestrator.AssignRole(s.ctx, &ship.AssignRoleInput{
		ShipID: testutils.TestShipID,
		Role:   swn.RoleGunnery,
		CrewID: "crew-ghost",
	})

	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAddItem_Success() {
	s.testShip.HullClass = swn.HullClassFrigate
	s.mockIDGen.EXPECT().Generate().Return("item-1")
	s.expectLoad()
	s.mockEngine.EXPECT().
		CalculateCost(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CalculateCostInput) (*engine.CalculateCostOutput, error) {
			s.Require().Len(input.Ship.Items, 1)
			s.Equal("item-1", input.Ship.Items[0].ID)
			s.False(input.IncludeMaintenance)
			return &engine.CalculateCostOutput{Ship: input.Ship}, nil
		})
	s.expectSave()

	out, err := s.orchestrator.AddItem(s.ctx, &ship.AddItemInput{
		ShipID: testutils.TestShipID,
		Item: swn.Item{
			Name:     "Plasma Beam",
			Type:     swn.ItemTypeWeapon,
			Broken:   true,
			MinClass: swn.HullClassFrigate,
		},
	})

	s.Require().NoError(err)
	s.Equal("item-1", out.Item.ID)
	s.False(out.Item.Broken)
	s.Empty(s.testShip.Items)
}

func (s *OrchestratorTestSuite) TestAddItem_HullTooSmall() {
	s.testShip.HullClass = swn.HullClassFighter
	s.expectLoad()

	_, err := s.orchestrator.AddItem(s.ctx, &ship.AddItemInput{
		ShipID: testutils.TestShipID,
		Item: swn.Item{
			ID:       "spinal-1",
			Name:     "Spinal Beam Cannon",
			Type:     swn.ItemTypeWeapon,
			MinClass: swn.HullClassCruiser,
		},
	})

	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAddItem_InvalidItem() {
	_, err := s.orchestrator.AddItem(s.ctx, &ship.AddItemInput{
		ShipID: testutils.TestShipID,
		Item:   swn.Item{Name: "Mystery Box", Type: "cargo"},
	})

	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddItem_DuplicateID() {
	s.testShip.Items = []swn.Item{{ID: "w1", Name: "Laser", Type: swn.ItemTypeWeapon}}
	s.expectLoad()

	_, err := s.orchestrator.AddItem(s.ctx, &ship.AddItemInput{
		ShipID: testutils.TestShipID,
		Item:   swn.Item{ID: "w1", Name: "Laser", Type: swn.ItemTypeWeapon},
	})

	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestRemoveItem() {
	s.testShip.Items = []swn.Item{
		{ID: "w1", Name: "Laser", Type: swn.ItemTypeWeapon},
		{ID: "f1", Name: "Fuel Bunkers", Type: swn.ItemTypeFitting},
	}

	s.Run("removes and recalculates", func() {
		s.expectLoad()
		s.mockEngine.EXPECT().
			CalculateCost(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *engine.CalculateCostInput) (*engine.CalculateCostOutput, error) {
				return &engine.CalculateCostOutput{Ship: input.Ship}, nil
			})
		s.expectSave()

		out, err := s.orchestrator.RemoveItem(s.ctx, &ship.RemoveItemInput{
			ShipID: testutils.TestShipID,
			ItemID: "w1",
		})

		s.Require().NoError(err)
		s.Require().Len(out.Ship.Items, 1)
		s.Equal("f1", out.Ship.Items[0].ID)
	})

	s.Run("unknown item", func() {
		s.expectLoad()

		_, err := s.orchestrator.RemoveItem(s.ctx, &ship.RemoveItemInput{
			ShipID: testutils.TestShipID,
			ItemID: "nope",
		})

		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteShip_DropsRollLog() {
	s.mockShipRepo.EXPECT().
		Delete(s.ctx, shiprepo.DeleteInput{ID: testutils.TestShipID}).
		Return(&shiprepo.DeleteOutput{}, nil)
	s.mockRollLog.EXPECT().
		Delete(s.ctx, rolllog.DeleteInput{ShipID: testutils.TestShipID}).
		Return(&rolllog.DeleteOutput{EntriesDeleted: 3}, nil)

	_, err := s.orchestrator.DeleteShip(s.ctx, &ship.DeleteShipInput{ShipID: testutils.TestShipID})

	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestListLedger() {
	entries := []*ledger.Entry{{ID: "l2", Amount: 300}, {ID: "l1", Amount: 200}}
	s.mockLedger.EXPECT().
		List(s.ctx, ledger.ListInput{ShipID: testutils.TestShipID, Limit: 10}).
		Return(&ledger.ListOutput{Entries: entries, Total: 500}, nil)

	out, err := s.orchestrator.ListLedger(s.ctx, &ship.ListLedgerInput{
		ShipID: testutils.TestShipID,
		Limit:  10,
	})

	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
	s.Equal(int64(500), out.Total)

	_, err = s.orchestrator.ListLedger(s.ctx, &ship.ListLedgerInput{ShipID: testutils.TestShipID, Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCrewMember_AssignsID() {
	s.mockIDGen.EXPECT().Generate().Return("crew-new")
	s.mockCrewRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.CreateInput) (*crewrepo.CreateOutput, error) {
			return &crewrepo.CreateOutput{Member: input.Member}, nil
		})

	out, err := s.orchestrator.CreateCrewMember(s.ctx, &ship.CreateCrewMemberInput{
		Member: &swn.CrewMember{Name: "Vex", Type: swn.CrewTypeNPC},
	})

	s.Require().NoError(err)
	s.Equal("crew-new", out.Member.ID)
}

func (s *OrchestratorTestSuite) TestListShips() {
	ships := []*swn.Ship{s.testShip}
	s.mockShipRepo.EXPECT().
		List(s.ctx, shiprepo.ListInput{OwnerID: testutils.TestOwnerID}).
		Return(&shiprepo.ListOutput{Ships: ships}, nil)

	out, err := s.orchestrator.ListShips(s.ctx, &ship.ListShipsInput{OwnerID: testutils.TestOwnerID})

	s.Require().NoError(err)
	s.Equal(ships, out.Ships)
}

func (s *OrchestratorTestSuite) TestListHullTemplates() {
	s.mockEngine.EXPECT().
		ListHullTemplates(s.ctx).
		Return(&engine.ListHullTemplatesOutput{
			Types:     []string{swn.HullFreeMerchant},
			Templates: map[string]swn.HullTemplate{swn.HullFreeMerchant: {Name: "Free Merchant"}},
		}, nil)

	out, err := s.orchestrator.ListHullTemplates(s.ctx, &ship.ListHullTemplatesInput{})

	s.Require().NoError(err)
	s.Equal([]string{swn.HullFreeMerchant}, out.Types)
	s.Equal("Free Merchant", out.Templates[swn.HullFreeMerchant].Name)
}

func (s *OrchestratorTestSuite) TestApplyHullTemplate_RecalculatesFittedShip() {
	s.testShip.Items = []swn.Item{{ID: "w1", Name: "Laser", Type: swn.ItemTypeWeapon}}
	s.expectLoad()

	rehulled := s.testShip.Clone()
	rehulled.HullType = swn.HullPatrolBoat
	s.mockEngine.EXPECT().
		ApplyHullTemplate(s.ctx, &engine.ApplyHullTemplateInput{Ship: s.testShip, HullType: swn.HullPatrolBoat}).
		Return(&engine.ApplyHullTemplateOutput{Ship: rehulled, Template: swn.HullTemplate{Name: "Patrol Boat"}}, nil)
	s.mockEngine.EXPECT().
		CalculateCost(s.ctx, &engine.CalculateCostInput{Ship: rehulled}).
		Return(&engine.CalculateCostOutput{Ship: rehulled}, nil)
	s.expectSave()

	out, err := s.orchestrator.ApplyHullTemplate(s.ctx, &ship.ApplyHullTemplateInput{
		ShipID:   testutils.TestShipID,
		HullType: swn.HullPatrolBoat,
	})

	s.Require().NoError(err)
	s.Equal(swn.HullPatrolBoat, out.Ship.HullType)
	s.Equal("Patrol Boat", out.Template.Name)
}

func (s *OrchestratorTestSuite) TestResupplyLifeSupport_RecordsDebit() {
	s.expectLoad()
	restocked := s.testShip.Clone()
	restocked.Finance.CreditPool -= 400
	s.mockEngine.EXPECT().
		ResupplyLifeSupport(s.ctx, &engine.ResupplyLifeSupportInput{Ship: s.testShip, PricePerDay: 20}).
		Return(&engine.ResupplyLifeSupportOutput{Ship: restocked, DaysAdded: 20, Cost: 400}, nil)
	s.expectSave()
	s.mockIDGen.EXPECT().Generate().Return("ledger-1")
	s.mockLedger.EXPECT().
		Record(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input ledger.RecordInput) (*ledger.RecordOutput, error) {
			s.Equal(ledger.KindResupply, input.Entry.Kind)
			s.Equal(int64(400), input.Entry.Amount)
			s.Equal(restocked.Finance.CreditPool, input.Entry.BalanceAfter)
			s.Equal("20 days at 20", input.Entry.Note)
			return &ledger.RecordOutput{Entry: input.Entry}, nil
		})

	out, err := s.orchestrator.ResupplyLifeSupport(s.ctx, &ship.ResupplyLifeSupportInput{
		ShipID:      testutils.TestShipID,
		PricePerDay: 20,
	})

	s.Require().NoError(err)
	s.Equal(int32(20), out.DaysAdded)
	s.Equal(int64(400), out.Cost)
}

func (s *OrchestratorTestSuite) TestRemoveCrew_ClearsRoles() {
	s.expectLoad()
	removed := s.testShip.Clone()
	removed.Roster = []string{testutils.TestEngineer}
	delete(removed.Roles, swn.RoleBridge)
	s.mockEngine.EXPECT().
		RemoveCrew(s.ctx, &engine.RemoveCrewInput{Ship: s.testShip, CrewID: testutils.TestPilotID}).
		Return(&engine.RemoveCrewOutput{Ship: removed, Removed: true, RolesCleared: []string{swn.RoleBridge}}, nil)
	s.expectSave()

	out, err := s.orchestrator.RemoveCrew(s.ctx, &ship.RemoveCrewInput{
		ShipID: testutils.TestShipID,
		CrewID: testutils.TestPilotID,
	})

	s.Require().NoError(err)
	s.True(out.Removed)
	s.Equal([]string{swn.RoleBridge}, out.RolesCleared)
	s.Equal([]string{testutils.TestEngineer}, out.Ship.Roster)
}

func (s *OrchestratorTestSuite) TestItemFlags() {
	s.testShip.Items = []swn.Item{{ID: "w1", Name: "Laser", Type: swn.ItemTypeWeapon}}

	s.Run("set broken", func() {
		s.expectLoad()
		broken := s.testShip.Clone()
		broken.Items[0].Broken = true
		s.mockEngine.EXPECT().
			SetItemBroken(s.ctx, &engine.SetItemBrokenInput{Ship: s.testShip, ItemID: "w1", Broken: true}).
			Return(&engine.SetItemBrokenOutput{Ship: broken}, nil)
		s.expectSave()

		out, err := s.orchestrator.SetItemBroken(s.ctx, &ship.SetItemBrokenInput{
			ShipID: testutils.TestShipID,
			ItemID: "w1",
			Broken: true,
		})

		s.Require().NoError(err)
		s.True(out.Ship.Items[0].Broken)
	})

	s.Run("destroy", func() {
		s.expectLoad()
		destroyed := s.testShip.Clone()
		destroyed.Items[0].Destroyed = true
		s.mockEngine.EXPECT().
			DestroyItem(s.ctx, &engine.DestroyItemInput{Ship: s.testShip, ItemID: "w1"}).
			Return(&engine.DestroyItemOutput{Ship: destroyed}, nil)
		s.expectSave()

		out, err := s.orchestrator.DestroyItem(s.ctx, &ship.DestroyItemInput{
			ShipID: testutils.TestShipID,
			ItemID: "w1",
		})

		s.Require().NoError(err)
		s.Require().Len(out.Ship.Items, 1)
		s.True(out.Ship.Items[0].Destroyed)
	})

	s.Run("unknown item saves nothing", func() {
		s.expectLoad()
		s.mockEngine.EXPECT().
			DestroyItem(s.ctx, gomock.Any()).
			Return(nil, errors.NotFound("item not installed"))

		_, err := s.orchestrator.DestroyItem(s.ctx, &ship.DestroyItemInput{
			ShipID: testutils.TestShipID,
			ItemID: "nope",
		})

		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestListRolls() {
	entries := []*rolllog.Entry{{ID: "roll-2"}, {ID: "roll-1"}}
	s.mockRollLog.EXPECT().
		List(s.ctx, rolllog.ListInput{ShipID: testutils.TestShipID, Limit: 5}).
		Return(&rolllog.ListOutput{Entries: entries}, nil)

	out, err := s.orchestrator.ListRolls(s.ctx, &ship.ListRollsInput{ShipID: testutils.TestShipID, Limit: 5})

	s.Require().NoError(err)
	s.Equal(entries, out.Entries)

	_, err = s.orchestrator.ListRolls(s.ctx, &ship.ListRollsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCrewMemberLookups() {
	member := testutils.CreateTestCrew()[0]

	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: member.ID}).
		Return(&crewrepo.GetOutput{Member: member}, nil)

	got, err := s.orchestrator.GetCrewMember(s.ctx, &ship.GetCrewMemberInput{CrewID: member.ID})
	s.Require().NoError(err)
	s.Equal(member, got.Member)

	s.mockCrewRepo.EXPECT().
		Update(s.ctx, crewrepo.UpdateInput{Member: member}).
		Return(&crewrepo.UpdateOutput{Member: member}, nil)

	updated, err := s.orchestrator.UpdateCrewMember(s.ctx, &ship.UpdateCrewMemberInput{Member: member})
	s.Require().NoError(err)
	s.Equal(member.ID, updated.Member.ID)

	_, err = s.orchestrator.UpdateCrewMember(s.ctx, &ship.UpdateCrewMemberInput{Member: &swn.CrewMember{Name: "Nobody"}})
	s.True(errors.IsInvalidArgument(err))
}
