package ledger_test

import (
	"context"
	"time"

	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCompose() {
	// Prior cumulative: donations 500, expenses 200.
	suite.createTestDonation(donation(500, types.NewDate(2025, 6, 15)))
	suite.createTestExpense(expense(200, types.NewDate(2025, 7, 20)))

	// Current month: donations 300, expenses 100.
	suite.createTestDonation(donation(300, types.NewDate(2025, 8, 5)))
	suite.createTestExpense(expense(100, types.NewDate(2025, 8, 10)))

	now := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)
	balances, err := ledger.Compose(context.Background(), now)
	suite.Require().Nil(err)

	suite.Assert().True(balances.PreviousBalance.Equal(decimal.NewFromInt(300)), "previous balance is %s", balances.PreviousBalance)
	suite.Assert().True(balances.CurrentNet.Equal(decimal.NewFromInt(200)), "current net is %s", balances.CurrentNet)
	suite.Assert().True(balances.TotalBalance.Equal(decimal.NewFromInt(500)), "total balance is %s", balances.TotalBalance)
	suite.Assert().Equal(types.NewMonth(2025, 8), balances.Month)
}

// The composition identity must hold for any data set.
func (suite *TestSuiteStandard) TestComposeIdentity() {
	suite.createTestDonation(donation(123, types.NewDate(2024, 1, 1)))
	suite.createTestExpense(expense(999, types.NewDate(2025, 3, 3)))
	suite.createTestDonation(donation(7, types.NewDate(2025, 8, 29)))

	balances, err := ledger.Compose(context.Background(), time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	suite.Assert().True(balances.TotalBalance.Equal(balances.PreviousBalance.Add(balances.CurrentNet)))
}

// Deficits are legitimate balances and must not be clamped.
func (suite *TestSuiteStandard) TestComposeNegativeBalances() {
	suite.createTestExpense(expense(400, types.NewDate(2025, 7, 1)))
	suite.createTestExpense(expense(50, types.NewDate(2025, 8, 1)))

	balances, err := ledger.Compose(context.Background(), time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	suite.Assert().True(balances.PreviousBalance.Equal(decimal.NewFromInt(-400)))
	suite.Assert().True(balances.CurrentNet.Equal(decimal.NewFromInt(-50)))
	suite.Assert().True(balances.TotalBalance.Equal(decimal.NewFromInt(-450)))
}

// A record on the boundary between the periods belongs to exactly one.
func (suite *TestSuiteStandard) TestComposePeriodPartition() {
	suite.createTestDonation(donation(10, types.NewDate(2025, 7, 31)))
	suite.createTestDonation(donation(20, types.NewDate(2025, 8, 1)))

	balances, err := ledger.Compose(context.Background(), time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	suite.Assert().True(balances.PreviousBalance.Equal(decimal.NewFromInt(10)))
	suite.Assert().True(balances.CurrentDonations.Equal(decimal.NewFromInt(20)))
	suite.Assert().True(balances.TotalBalance.Equal(decimal.NewFromInt(30)))
}

// Records dated after the reporting month count for neither period.
func (suite *TestSuiteStandard) TestComposeIgnoresFuture() {
	suite.createTestDonation(donation(77, types.NewDate(2025, 9, 1)))

	balances, err := ledger.Compose(context.Background(), time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	suite.Assert().True(balances.TotalBalance.IsZero())
}

func (suite *TestSuiteStandard) TestTrackerRefresh() {
	suite.createTestDonation(donation(100, types.NewDate(2025, 8, 1)))

	tracker := ledger.NewTracker(time.Millisecond)
	defer tracker.Stop()

	_, ok := tracker.Latest()
	suite.Assert().False(ok, "tracker must not report balances before the first refresh")

	balances, err := tracker.Refresh(context.Background(), time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)
	suite.Assert().True(balances.TotalBalance.Equal(decimal.NewFromInt(100)))

	latest, ok := tracker.Latest()
	suite.Assert().True(ok)
	suite.Assert().True(latest.TotalBalance.Equal(decimal.NewFromInt(100)))
}
