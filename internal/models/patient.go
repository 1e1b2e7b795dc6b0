package models

import "time"

// Patient represents a registered patient
// Email is unique across all patients; phone is optional
type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone     *string   `gorm:"size:20" json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
