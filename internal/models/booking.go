package models

import "time"

type Booking struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Service string `gorm:"size:255;not null" json:"service"`

	StaffID *uint `json:"staff_id"`
	// denormalized so the booking survives staff deletion
	StaffName string `gorm:"size:100" json:"staff_name"`

	Date time.Time `gorm:"type:date" json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	// minutes, text-encoded as the original schema stores it
	Duration string `gorm:"size:10;default:'90'" json:"duration"`

	Status          string `gorm:"size:20;default:'pending'" json:"status"`
	RejectionReason string `gorm:"size:255" json:"rejection_reason"`
	Notes           string `gorm:"size:255" json:"notes"`

	// set only after a successful external calendar sync
	CalendarEventID string `gorm:"size:100" json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
