package models

import (
	"strings"
	"time"

	"github.com/gs866812/kustia-mosque-backend/internal/types"
	"gorm.io/gorm"
)

// Hadith is a quote shown in rotation on the public dashboard.
type Hadith struct {
	DefaultModel
	Text string
	Date types.Date
}

// BeforeSave trims the text and defaults the date to today.
func (h *Hadith) BeforeSave(_ *gorm.DB) (err error) {
	h.Text = strings.TrimSpace(h.Text)

	if h.Date.IsZero() {
		h.Date = types.DateOf(time.Now().In(time.UTC))
	}

	return nil
}
