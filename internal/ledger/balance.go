package ledger

import (
	"context"
	"time"

	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Balances are the headline numbers of the public dashboard for one
// reporting month. All values are signed, a deficit is not clamped.
type Balances struct {
	Month            types.Month     `json:"month"`            // The reporting month
	PreviousBalance  decimal.Decimal `json:"previousBalance"`  // Cumulative balance of everything before the reporting month
	CurrentDonations decimal.Decimal `json:"currentDonations"` // Donations within the reporting month
	CurrentExpenses  decimal.Decimal `json:"currentExpenses"`  // Expenses within the reporting month
	CurrentNet       decimal.Decimal `json:"currentNet"`       // CurrentDonations - CurrentExpenses
	TotalBalance     decimal.Decimal `json:"totalBalance"`     // PreviousBalance + CurrentNet
}

// Compose calculates the headline balances for the month the given
// instant falls in. The four underlying sum queries are issued
// concurrently; only their totals are needed, never the records.
func Compose(ctx context.Context, now time.Time) (Balances, error) {
	month := types.MonthOf(now)
	current := CurrentPeriod(month)
	prior := PriorCumulative(month)

	var priorDon, priorExp, curDon, curExp Sums

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		priorDon, err = DonationSums(gCtx, Filter{Window: prior})
		return err
	})

	g.Go(func() (err error) {
		priorExp, err = ExpenseSums(gCtx, Filter{Window: prior})
		return err
	})

	g.Go(func() (err error) {
		curDon, err = DonationSums(gCtx, Filter{Window: current})
		return err
	})

	g.Go(func() (err error) {
		curExp, err = ExpenseSums(gCtx, Filter{Window: current})
		return err
	})

	if err := g.Wait(); err != nil {
		return Balances{}, err
	}

	previous := priorDon.TotalAmount.Sub(priorExp.TotalAmount)
	net := curDon.TotalAmount.Sub(curExp.TotalAmount)

	return Balances{
		Month:            month,
		PreviousBalance:  previous,
		CurrentDonations: curDon.TotalAmount,
		CurrentExpenses:  curExp.TotalAmount,
		CurrentNet:       net,
		TotalBalance:     previous.Add(net),
	}, nil
}
