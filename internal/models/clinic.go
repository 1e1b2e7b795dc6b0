package models

import "time"

// Clinic represents a clinic location that employs doctors
type Clinic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"size:200" json:"address,omitempty"`
	City      string    `gorm:"size:50" json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Clinic model
func (Clinic) TableName() string {
	return "clinics"
}
