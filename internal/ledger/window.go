// Package ledger implements the read-side aggregation over donation and
// expense records: window queries, pagination, and the balance figures
// shown on the public dashboard.
package ledger

import (
	"errors"

	"github.com/gs866812/kustia-mosque-backend/internal/types"
)

// ErrInvalidFilter is returned for malformed date windows. Malformed
// bounds are rejected before any query is dispatched, they are never
// silently treated as unbounded.
var ErrInvalidFilter = errors.New("the start date must not be after the end date")

// Window is an inclusive date range. A zero From means "everything up to
// Until", a zero Until leaves the range open-ended.
type Window struct {
	From  types.Date
	Until types.Date
}

// Validate checks the window bounds.
func (w Window) Validate() error {
	if !w.From.IsZero() && !w.Until.IsZero() && w.From.After(w.Until) {
		return ErrInvalidFilter
	}

	return nil
}

// Contains reports whether the date falls within the window. Both bounds
// are inclusive.
func (w Window) Contains(d types.Date) bool {
	if !w.From.IsZero() && d.Before(w.From) {
		return false
	}

	if !w.Until.IsZero() && d.After(w.Until) {
		return false
	}

	return true
}

// CurrentPeriod returns the reporting window for the month the given
// instant falls in.
func CurrentPeriod(month types.Month) Window {
	return Window{From: month.First(), Until: month.Last()}
}

// PriorCumulative returns the window covering everything before the given
// month: epoch through the end of the previous month. Together with
// CurrentPeriod it partitions all past records without overlap.
func PriorCumulative(month types.Month) Window {
	return Window{Until: month.AddDate(0, -1).Last()}
}
