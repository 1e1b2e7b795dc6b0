package models

// Treatment represents a billable treatment that can be linked to appointments
type Treatment struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`
}

// TableName specifies the table name for Treatment model
func (Treatment) TableName() string {
	return "treatments"
}
