package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type MediaItem struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type        string `gorm:"size:10;not null" json:"type"`
	URL         string `gorm:"size:500;not null" json:"url"`
	Title       string `gorm:"size:150" json:"title,omitempty"`
	Description string `gorm:"size:500" json:"description,omitempty"`

	InstagramURL string `gorm:"size:500" json:"instagramUrl,omitempty"`

	IsActive   bool `gorm:"default:true" json:"isActive"`
	OrderIndex int  `gorm:"default:0;index" json:"orderIndex"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MediaItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
