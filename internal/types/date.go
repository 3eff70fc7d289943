// Package types implements special types for the mosque ledger.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// displayLayout is the legacy date format of the bookkeeping records,
// e.g. "07.Aug.2025". It stays the wire format so existing clients keep
// working, but the authoritative value is a real calendar date.
const displayLayout = "02.Jan.2006"

var isoDatePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date is a calendar day without a time of day. It is the authoritative
// field for all window queries; the month and year columns on records are
// derived from it at write time.
type Date time.Time

// NewDate returns the Date for the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time instant occurs, in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.In(time.UTC).Date()
	return NewDate(year, month, day)
}

// ParseDate parses a date string. The legacy "DD.MMM.YYYY" format, the
// RFC3339 full-date format and full RFC3339 timestamps are accepted.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(displayLayout, s); err == nil {
		return DateOf(t), nil
	}

	if isoDatePattern.MatchString(s) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return Date{}, err
		}
		return DateOf(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q is not in DD.MMM.YYYY, YYYY-MM-DD or RFC3339 format", s)
	}
	return DateOf(t), nil
}

// String returns the date formatted as DD.MMM.YYYY.
func (d Date) String() string {
	return time.Time(d).Format(displayLayout)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the legacy DD.MMM.YYYY string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds a specified amount of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return DateOf(time.Time(d).AddDate(years, months, days))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Month returns the Month the date falls in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// MonthName returns the English month name, e.g. "August".
// It is stored on records as a redundant, non-authoritative column.
func (d Date) MonthName() string {
	return time.Time(d).Format("January")
}

// YearString returns the four digit year, e.g. "2025".
func (d Date) YearString() string {
	return time.Time(d).Format("2006")
}
