package ledger

import (
	"context"
	"fmt"

	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLimit is the page size used when the caller does not specify one.
const DefaultLimit = 50

// Unpaginated disables pagination for a query. The export endpoints use
// it to fetch the full matched set.
const Unpaginated = -1

// Filter selects a subset of a collection: a date window, an optional
// free-text search on the primary descriptive field, an optional exact
// category match, and a page of the result.
type Filter struct {
	Window   Window
	Search   string
	Category string
	Page     int // 1-based, defaults to 1
	Limit    int // defaults to DefaultLimit; Unpaginated returns everything
}

// Sums are the aggregates over the entire matched set of a filter,
// independent of which page is returned.
type Sums struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalCount    int64           `json:"totalCount"`
}

func (f Filter) page() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

func (f Filter) limit() int {
	if f.Limit == 0 {
		return DefaultLimit
	}
	return f.Limit
}

// Donations returns the donations matching the filter together with the
// aggregates over the full matched set.
func Donations(ctx context.Context, f Filter) ([]models.Donation, Sums, error) {
	return records[models.Donation](ctx, "donor_name", f)
}

// Expenses returns the expenses matching the filter together with the
// aggregates over the full matched set.
func Expenses(ctx context.Context, f Filter) ([]models.Expense, Sums, error) {
	return records[models.Expense](ctx, "description", f)
}

// DonationSums returns only the aggregates for the filter.
func DonationSums(ctx context.Context, f Filter) (Sums, error) {
	return sums[models.Donation](ctx, "donor_name", f)
}

// ExpenseSums returns only the aggregates for the filter.
func ExpenseSums(ctx context.Context, f Filter) (Sums, error) {
	return sums[models.Expense](ctx, "description", f)
}

// match builds the WHERE clauses for the filter. The window bounds on
// the authoritative date column, both ends inclusive. The search matches
// the primary descriptive field as a case-insensitive substring.
func match[R models.Donation | models.Expense](ctx context.Context, searchColumn string, f Filter) *gorm.DB {
	var model R
	q := models.DB.WithContext(ctx).Model(&model)

	if !f.Window.From.IsZero() {
		q = q.Where("date >= date(?)", f.Window.From.Time())
	}

	if !f.Window.Until.IsZero() {
		q = q.Where("date < date(?)", f.Window.Until.AddDate(0, 0, 1).Time())
	}

	if f.Search != "" {
		q = q.Where(fmt.Sprintf("%s LIKE ?", searchColumn), fmt.Sprintf("%%%s%%", f.Search))
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	return q
}

func sums[R models.Donation | models.Expense](ctx context.Context, searchColumn string, f Filter) (Sums, error) {
	if err := f.Window.Validate(); err != nil {
		return Sums{}, err
	}

	var amount, quantity decimal.NullDecimal
	var s Sums

	err := match[R](ctx, searchColumn, f).
		Select("SUM(amount)", "SUM(quantity)").
		Row().
		Scan(&amount, &quantity)
	if err != nil {
		return Sums{}, err
	}

	err = match[R](ctx, searchColumn, f).Count(&s.TotalCount).Error
	if err != nil {
		return Sums{}, err
	}

	s.TotalAmount = amount.Decimal
	s.TotalQuantity = quantity.Decimal
	return s, nil
}

func records[R models.Donation | models.Expense](ctx context.Context, searchColumn string, f Filter) ([]R, Sums, error) {
	s, err := sums[R](ctx, searchColumn, f)
	if err != nil {
		return nil, Sums{}, err
	}

	q := match[R](ctx, searchColumn, f).
		Order("datetime(date) DESC, datetime(created_at) DESC")

	// A page past the last one returns an empty slice but keeps the
	// aggregates of the full matched set. That is not an error.
	if f.Limit != Unpaginated {
		q = q.Offset((f.page() - 1) * f.limit()).Limit(f.limit())
	}

	results := make([]R, 0)
	err = q.Find(&results).Error
	if err != nil {
		return nil, Sums{}, err
	}

	return results, s, nil
}
