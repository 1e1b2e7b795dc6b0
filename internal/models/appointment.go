package models

import "time"

// AppointmentStatus is the closed set of states an appointment can be in.
// Any other value is rejected at the boundary.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusNoShow    AppointmentStatus = "NoShow"
)

// AllStatuses lists the valid appointment statuses in menu order.
var AllStatuses = []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

// Valid reports whether s is one of the four known statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked visit between one patient and one doctor.
// Status is set to Scheduled on creation and only changes via explicit update.
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint              `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`

	// Relationships (query-time preloads only, never embedded graphs)
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
