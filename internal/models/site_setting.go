package models

import "time"

// HeroStat is one headline figure shown in the public hero section.
type HeroStat struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix,omitempty"`
}

// SiteSetting stores keyed JSON documents ("heroStats", ...).
type SiteSetting struct {
	Key   string     `gorm:"size:50;primaryKey" json:"key"`
	Stats []HeroStat `gorm:"serializer:json" json:"stats,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// VisitorStats is a singleton counter row incremented by the public site.
type VisitorStats struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TotalVisitors int64          `json:"totalVisitors"`
	MonthlyVisits map[string]int `gorm:"serializer:json" json:"monthlyVisits"`
	LastVisit     time.Time      `json:"lastVisit"`
}
