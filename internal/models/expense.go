package models

import (
	"strings"
	"time"

	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single expense entry in the ledger.
type Expense struct {
	DefaultModel
	Date        types.Date      // Authoritative date of the expense
	Month       string          // Derived from Date, e.g. "August". Never used for range queries.
	Year        string          // Derived from Date, e.g. "2025". Never used for range queries.
	Description string
	Category    string
	Unit        string
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Units consumed, defaults to 0
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Reference   string
	Note        string
}

// BeforeSave mirrors the donation hook: date default, derived month and
// year columns, non-negative amounts, trimmed strings.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.Unit = strings.TrimSpace(e.Unit)
	e.Reference = strings.TrimSpace(e.Reference)
	e.Note = strings.TrimSpace(e.Note)

	if e.Date.IsZero() {
		e.Date = types.DateOf(time.Now().In(time.UTC))
	}

	e.Month = e.Date.MonthName()
	e.Year = e.Date.YearString()

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.Quantity.IsNegative() {
		return ErrQuantityNegative
	}

	return nil
}
