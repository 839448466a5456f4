package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicePackage struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// ServiceNumber drives the display order on the public site.
	ServiceNumber string `gorm:"size:20;not null;index" json:"serviceNumber"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Category    string   `gorm:"size:50" json:"category"`
	Price       float64  `gorm:"not null" json:"price"`
	Duration    string   `gorm:"size:50" json:"duration"`
	Description string   `gorm:"size:500" json:"description"`
	Features    []string `gorm:"serializer:json" json:"features,omitempty"`
	Active      bool     `gorm:"default:true" json:"active"`
	ImageURL    string   `gorm:"size:500" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *ServicePackage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
