package v1

import (
	"github.com/google/uuid"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/types"
)

type URIID struct {
	ID uuid.UUID `uri:"id,parser=encoding.TextUnmarshaler" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count int   `json:"count" example:"25"`  // The number of records in this response
	Page  int   `json:"page" example:"1"`    // The 1-based page of the matched set
	Limit int   `json:"limit" example:"50"`  // The maximum number of records per page
	Total int64 `json:"total" example:"827"` // The total number of records matching the query
}

// ListQueryFilter are the query parameters shared by the donation and
// expense list endpoints. Dates are bound as strings so that a malformed
// bound is rejected before any query is dispatched.
type ListQueryFilter struct {
	StartDate string `form:"startDate"` // Records at and after this date
	EndDate   string `form:"endDate"`   // Records before and at this date
	Search    string `form:"search"`    // Case-insensitive substring on the descriptive field
	Category  string `form:"category"`  // Exact category match
	Page      int    `form:"page"`      // 1-based page. Defaults to 1
	Limit     int    `form:"limit"`     // Maximum number of records to return. Defaults to 50
}

// filter converts the bound query parameters into a ledger filter
func (f ListQueryFilter) filter() (ledger.Filter, error) {
	window, err := parseWindow(f.StartDate, f.EndDate)
	if err != nil {
		return ledger.Filter{}, err
	}

	return ledger.Filter{
		Window:   window,
		Search:   f.Search,
		Category: f.Category,
		Page:     f.Page,
		Limit:    f.Limit,
	}, nil
}

// pagination describes the returned page of a matched set
func pagination(f ledger.Filter, count int, total int64) *Pagination {
	page := f.Page
	if page < 1 {
		page = 1
	}

	limit := f.Limit
	if limit == 0 {
		limit = ledger.DefaultLimit
	}

	return &Pagination{
		Count: count,
		Page:  page,
		Limit: limit,
		Total: total,
	}
}

func parseWindow(start, end string) (ledger.Window, error) {
	var window ledger.Window

	if start != "" {
		from, err := types.ParseDate(start)
		if err != nil {
			return ledger.Window{}, errInvalidDate
		}
		window.From = from
	}

	if end != "" {
		until, err := types.ParseDate(end)
		if err != nil {
			return ledger.Window{}, errInvalidDate
		}
		window.Until = until
	}

	if err := window.Validate(); err != nil {
		return ledger.Window{}, err
	}

	return window, nil
}
