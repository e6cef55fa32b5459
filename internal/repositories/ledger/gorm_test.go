package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/swn-ship-api/internal/errors"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	"github.com/KirkDiggler/swn-ship-api/internal/testutils"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  ledger.Repository
}

func TestGormRepositorySuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func (s *GormRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: testutils.TestTime}

	db, err := ledger.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo, err := ledger.NewGorm(&ledger.GormConfig{DB: db, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *GormRepositoryTestSuite) record(id string, kind ledger.Kind, amount int64) {
	_, err := s.repo.Record(s.ctx, ledger.RecordInput{Entry: &ledger.Entry{
		ID:     id,
		ShipID: testutils.TestShipID,
		Kind:   kind,
		Amount: amount,
	}})
	s.Require().NoError(err)
	s.clock.At = s.clock.At.Add(time.Minute)
}

func (s *GormRepositoryTestSuite) TestNewGorm() {
	_, err := ledger.NewGorm(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = ledger.NewGorm(&ledger.GormConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GormRepositoryTestSuite) TestRecordAndList() {
	s.record("e1", ledger.KindPayment, 200)
	s.record("e2", ledger.KindRefuel, 50)
	s.record("e3", ledger.KindPayment, 200)

	out, err := s.repo.List(s.ctx, ledger.ListInput{ShipID: testutils.TestShipID})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal("e3", out.Entries[0].ID)
	s.Equal("e1", out.Entries[2].ID)
	s.Equal(int64(450), out.Total)
	s.True(testutils.TestTime.Equal(out.Entries[2].CreatedAt))

	payments, err := s.repo.List(s.ctx, ledger.ListInput{ShipID: testutils.TestShipID, Kind: ledger.KindPayment})
	s.Require().NoError(err)
	s.Len(payments.Entries, 2)
	s.Equal(int64(400), payments.Total)

	limited, err := s.repo.List(s.ctx, ledger.ListInput{ShipID: testutils.TestShipID, Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Entries, 1)

	other, err := s.repo.List(s.ctx, ledger.ListInput{ShipID: "other"})
	s.Require().NoError(err)
	s.Empty(other.Entries)
}

func (s *GormRepositoryTestSuite) TestRecordValidation() {
	testCases := []struct {
		name  string
		entry *ledger.Entry
	}{
		{name: "nil entry"},
		{name: "missing ID", entry: &ledger.Entry{ShipID: "s", Kind: ledger.KindRefuel}},
		{name: "missing ship", entry: &ledger.Entry{ID: "e", Kind: ledger.KindRefuel}},
		{name: "unknown kind", entry: &ledger.Entry{ID: "e", ShipID: "s", Kind: "bribe"}},
		{name: "negative amount", entry: &ledger.Entry{ID: "e", ShipID: "s", Kind: ledger.KindRefuel, Amount: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Record(s.ctx, ledger.RecordInput{Entry: tc.entry})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *GormRepositoryTestSuite) TestRecordDuplicate() {
	s.record("e1", ledger.KindPayment, 200)

	_, err := s.repo.Record(s.ctx, ledger.RecordInput{Entry: &ledger.Entry{
		ID: "e1", ShipID: testutils.TestShipID, Kind: ledger.KindPayment, Amount: 1,
	}})
	s.True(errors.IsAlreadyExists(err))
}

func (s *GormRepositoryTestSuite) TestListRequiresShip() {
	_, err := s.repo.List(s.ctx, ledger.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}
