package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
	"banking-client/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func testLimitsConfig() config.LimitsConfig {
	return config.LimitsConfig{
		WithdrawalCap: decimal.NewFromInt(500000),
		TransferCap:   decimal.NewFromInt(1000000),
		Currency:      "KSh",
	}
}

type DailyLimitPolicySuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	fx     *fixture
	clock  *testClock
	policy *DailyLimitPolicy
	ctx    context.Context
}

func (s *DailyLimitPolicySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fx = newFixture(s.T(), s.ctrl)
	s.clock = &testClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)}
	s.policy = s.newPolicy()
	s.ctx = context.Background()
}

func (s *DailyLimitPolicySuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDailyLimitPolicySuite(t *testing.T) {
	suite.Run(t, new(DailyLimitPolicySuite))
}

func (s *DailyLimitPolicySuite) newPolicy() *DailyLimitPolicy {
	return NewDailyLimitPolicy(s.fx.gateway, s.fx.mirror, s.fx.audit, s.fx.metrics, s.fx.logger, testLimitsConfig(), WithClock(s.clock.Now))
}

func (s *DailyLimitPolicySuite) TestDefaults() {
	snapshot := s.policy.Snapshot(s.ctx)

	s.True(decimal.NewFromInt(500000).Equal(snapshot.WithdrawalLimit))
	s.True(decimal.NewFromInt(1000000).Equal(snapshot.TransferLimit))
	s.True(snapshot.WithdrawalUsed.IsZero())
	s.True(snapshot.TransferUsed.IsZero())
}

func (s *DailyLimitPolicySuite) TestRemainingIsCapMinusUsed() {
	amounts := []int64{1200, 35000, 7, 100000}
	used := decimal.Zero

	for _, amount := range amounts {
		s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(amount)))
		used = used.Add(decimal.NewFromInt(amount))

		remaining, err := s.policy.Remaining(s.ctx, models.LimitCategoryWithdrawal)
		s.Require().NoError(err)
		s.True(decimal.NewFromInt(500000).Sub(used).Equal(remaining))
	}

	transferRemaining, err := s.policy.Remaining(s.ctx, models.LimitCategoryTransfer)
	s.NoError(err)
	s.True(decimal.NewFromInt(1000000).Equal(transferRemaining))
}

func (s *DailyLimitPolicySuite) TestCanSpend_Boundary() {
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(499990)))

	ok, err := s.policy.CanSpend(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(10))
	s.NoError(err)
	s.True(ok)

	ok, err = s.policy.CanSpend(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(20))
	s.NoError(err)
	s.False(ok)
}

func (s *DailyLimitPolicySuite) TestUnknownCategory() {
	_, err := s.policy.Remaining(s.ctx, "loan")
	s.ErrorIs(err, models.ErrInvalidLimitCategory)

	_, err = s.policy.CanSpend(s.ctx, "loan", decimal.NewFromInt(1))
	s.ErrorIs(err, models.ErrInvalidLimitCategory)

	s.ErrorIs(s.policy.RecordUsage(s.ctx, "loan", decimal.NewFromInt(1)), models.ErrInvalidLimitCategory)
}

func (s *DailyLimitPolicySuite) TestDayBoundaryResetsUsageOnce() {
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(20000)))
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryTransfer, decimal.NewFromInt(300)))

	s.clock.now = time.Date(2024, 5, 2, 0, 0, 1, 0, time.Local)

	first := s.policy.Snapshot(s.ctx)
	s.True(first.WithdrawalUsed.IsZero())
	s.True(first.TransferUsed.IsZero())
	s.True(models.SameDay(first.LastResetDate, s.clock.now))

	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(50)))
	s.clock.now = s.clock.now.Add(20 * time.Hour)

	second := s.policy.Snapshot(s.ctx)
	s.True(decimal.NewFromInt(50).Equal(second.WithdrawalUsed), "a second read on the same day does not reset")
	s.True(decimal.NewFromInt(500000).Equal(second.WithdrawalLimit))
}

func (s *DailyLimitPolicySuite) TestRestore_RoundTripAndStaleReset() {
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryTransfer, decimal.NewFromInt(4500)))

	restored := s.newPolicy()
	restored.Restore(s.ctx)
	s.True(decimal.NewFromInt(4500).Equal(restored.Snapshot(s.ctx).TransferUsed))

	s.clock.now = s.clock.now.AddDate(0, 0, 3)
	stale := s.newPolicy()
	stale.Restore(s.ctx)
	s.True(stale.Snapshot(s.ctx).TransferUsed.IsZero())

	var mirrored models.DailyLimit
	_, err := repositories.LoadJSON(s.ctx, s.fx.mirror, models.MirrorKeyDailyLimit, &mirrored)
	s.Require().NoError(err)
	s.True(mirrored.TransferUsed.IsZero())
	s.True(models.SameDay(mirrored.LastResetDate, s.clock.now))
}

func (s *DailyLimitPolicySuite) TestRestore_EmptyMirrorPersistsDefaults() {
	s.policy.Restore(s.ctx)

	var mirrored models.DailyLimit
	found, err := repositories.LoadJSON(s.ctx, s.fx.mirror, models.MirrorKeyDailyLimit, &mirrored)
	s.Require().NoError(err)
	s.True(found)
	s.True(decimal.NewFromInt(500000).Equal(mirrored.WithdrawalLimit))
}

func (s *DailyLimitPolicySuite) TestSync() {
	remote := &models.DailyLimit{
		WithdrawalLimit: decimal.NewFromInt(200000),
		WithdrawalUsed:  decimal.NewFromInt(15000),
		TransferLimit:   decimal.NewFromInt(800000),
		TransferUsed:    decimal.NewFromInt(1000),
		LastResetDate:   s.clock.now,
	}
	s.fx.gateway.EXPECT().GetDailyLimits(s.ctx, models.ID("12")).Return(remote, nil)

	s.Require().NoError(s.policy.Sync(s.ctx, "12"))

	remaining, err := s.policy.Remaining(s.ctx, models.LimitCategoryWithdrawal)
	s.NoError(err)
	s.True(decimal.NewFromInt(185000).Equal(remaining))
}

func (s *DailyLimitPolicySuite) TestSync_KeepsCurrentValues() {
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryWithdrawal, decimal.NewFromInt(700)))

	s.fx.gateway.EXPECT().GetDailyLimits(s.ctx, models.ID("12")).Return(nil, nil)
	s.NoError(s.policy.Sync(s.ctx, "12"))

	ledgerDown := &gateway.Error{Kind: gateway.KindTransport, Err: errors.New("timeout")}
	s.fx.gateway.EXPECT().GetDailyLimits(s.ctx, models.ID("12")).Return(nil, ledgerDown)
	s.Error(s.policy.Sync(s.ctx, "12"))

	s.True(decimal.NewFromInt(700).Equal(s.policy.Snapshot(s.ctx).WithdrawalUsed))
}

func (s *DailyLimitPolicySuite) TestReset() {
	s.Require().NoError(s.policy.RecordUsage(s.ctx, models.LimitCategoryTransfer, decimal.NewFromInt(9)))

	s.policy.Reset(s.ctx)

	s.True(s.policy.Snapshot(s.ctx).TransferUsed.IsZero())
}

func TestDailyLimitPolicy_MirrorWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := repository_mocks.NewMockMirrorRepositoryInterface(ctrl)
	mirror.EXPECT().Set(gomock.Any(), models.MirrorKeyDailyLimit, gomock.Any()).Return(errors.New("disk full"))

	logger := discardLogger()
	policy := NewDailyLimitPolicy(nil, mirror, NewAuditLogger(logger), newTestMetrics(), logger, testLimitsConfig())

	err := policy.RecordUsage(context.Background(), models.LimitCategoryWithdrawal, decimal.NewFromInt(10))

	assert.NoError(t, err)
	remaining, err := policy.Remaining(context.Background(), models.LimitCategoryWithdrawal)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(499990).Equal(remaining))
}
