package models

// AppointmentTreatment links a treatment to an appointment (many-to-many).
// The composite key keeps each pair unique; rows are only created or
// deleted, never updated.
type AppointmentTreatment struct {
	AppointmentID uint `gorm:"primaryKey;autoIncrement:false" json:"appointment_id"`
	TreatmentID   uint `gorm:"primaryKey;autoIncrement:false" json:"treatment_id"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"appointment,omitempty"`
	Treatment   Treatment   `gorm:"foreignKey:TreatmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"treatment,omitempty"`
}

// TableName specifies the table name for AppointmentTreatment model
func (AppointmentTreatment) TableName() string {
	return "appointment_treatments"
}
