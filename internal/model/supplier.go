package model

import "time"

// Supplier provides products through purchase orders.
type Supplier struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	ContactInfo string    `json:"contact_info,omitempty" gorm:"size:255"`
	Address     string    `json:"address,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
