package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records are append-only: never edited or deleted once written,
// except as part of deleting the owning booking.
type Payment struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID string `gorm:"type:uuid;not null;index" json:"bookingId"`

	Amount float64 `gorm:"not null" json:"amount"`
	Method string  `gorm:"size:20;not null" json:"method"`
	Note   string  `gorm:"size:255" json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
