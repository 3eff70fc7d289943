package models

import (
	"strings"
	"time"

	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Donation is a single donation entry in the ledger.
type Donation struct {
	DefaultModel
	Date        types.Date      // Authoritative date of the donation
	Month       string          // Derived from Date, e.g. "August". Never used for range queries.
	Year        string          // Derived from Date, e.g. "2025". Never used for range queries.
	DonorNumber uint64          // Human-facing serial id of the donor, 0 when anonymous
	DonorName   string
	Address     string
	Phone       string
	Category    string
	Unit        string
	Quantity    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // In-kind quantity, defaults to 0
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Reference   string
	Note        string
}

// BeforeSave
//   - defaults the date to today
//   - recomputes the redundant month and year columns from the date
//   - rejects negative amounts and quantities
//   - trims whitespace from string fields
func (d *Donation) BeforeSave(_ *gorm.DB) (err error) {
	d.DonorName = strings.TrimSpace(d.DonorName)
	d.Address = strings.TrimSpace(d.Address)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Category = strings.TrimSpace(d.Category)
	d.Unit = strings.TrimSpace(d.Unit)
	d.Reference = strings.TrimSpace(d.Reference)
	d.Note = strings.TrimSpace(d.Note)

	if d.Date.IsZero() {
		d.Date = types.DateOf(time.Now().In(time.UTC))
	}

	d.Month = d.Date.MonthName()
	d.Year = d.Date.YearString()

	if d.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if d.Quantity.IsNegative() {
		return ErrQuantityNegative
	}

	return nil
}
