package models

import (
	"strings"

	"gorm.io/gorm"
)

// Donor is a registered donor. The Number is the short id donors quote on
// the submission form to have their details filled in.
type Donor struct {
	DefaultModel
	Number  uint64 `gorm:"uniqueIndex"`
	Name    string
	Address string
	Contact string
}

// BeforeSave trims whitespace and assigns the next free donor number
// when none was given.
func (d *Donor) BeforeSave(tx *gorm.DB) (err error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Contact = strings.TrimSpace(d.Contact)

	if d.Number == 0 {
		var max uint64
		err := tx.Model(&Donor{}).Select("COALESCE(MAX(number), 0)").Row().Scan(&max)
		if err != nil {
			return err
		}
		d.Number = max + 1
	}

	return nil
}
