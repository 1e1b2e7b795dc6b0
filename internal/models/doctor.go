package models

import "time"

// Doctor represents a doctor employed by exactly one clinic
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:50;not null" json:"first_name"`
	LastName       string    `gorm:"size:50;not null" json:"last_name"`
	Specialization string    `gorm:"size:100" json:"specialization,omitempty"`
	ClinicID       uint      `gorm:"not null;index" json:"clinic_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Clinic Clinic `gorm:"foreignKey:ClinicID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"clinic,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// FullName returns the doctor's display name
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
