package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// LookupKind selects which of the structurally identical reference lists
// a Lookup value belongs to. The admin screens manage all of them through
// one table-driven endpoint instead of one handler per list.
type LookupKind string

const (
	KindAddresses         LookupKind = "addresses"
	KindIncomeCategories  LookupKind = "income-categories"
	KindExpenseCategories LookupKind = "expense-categories"
	KindUnits             LookupKind = "units"
	KindExpenseUnits      LookupKind = "expense-units"
	KindReferences        LookupKind = "references"
	KindExpenseReferences LookupKind = "expense-references"
)

// LookupKinds lists all valid kinds.
var LookupKinds = []LookupKind{
	KindAddresses,
	KindIncomeCategories,
	KindExpenseCategories,
	KindUnits,
	KindExpenseUnits,
	KindReferences,
	KindExpenseReferences,
}

// Valid reports whether the kind is one of the known lists.
func (k LookupKind) Valid() bool {
	for _, kind := range LookupKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// Lookup is one value of a reference list, e.g. one address or one
// income category.
type Lookup struct {
	DefaultModel
	Kind  LookupKind `gorm:"uniqueIndex:lookup_kind_value"`
	Value string     `gorm:"uniqueIndex:lookup_kind_value"`
}

// BeforeSave validates the kind and rejects empty values.
func (l *Lookup) BeforeSave(_ *gorm.DB) (err error) {
	l.Value = strings.TrimSpace(l.Value)

	if !l.Kind.Valid() {
		return fmt.Errorf("%q is not a valid lookup kind", l.Kind)
	}

	if l.Value == "" {
		return fmt.Errorf("the lookup value must not be empty")
	}

	return nil
}
