package models

import "time"

// Staff is a bookable specialist (nails / epilation / cosmetology).
type Staff struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Category string `gorm:"size:20;not null" json:"category"`

	// external calendar identifier; empty means no calendar sync for this staff
	CalendarID string `gorm:"size:100" json:"calendar_id"`

	SortOrder int `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
