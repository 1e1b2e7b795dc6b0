package repository

import (
	"errors"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

// List caps for the menu flows. The appointment list shows the latest 30;
// status-update and delete pickers the latest 20; treatment-link pickers
// the latest 15 scheduled appointments.
const (
	ListLimit      = 30
	CandidateLimit = 20
	ScheduledLimit = 15
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListRecent retrieves the most recent appointments by appointment date,
// with patient and doctor preloaded. limit <= 0 means no cap.
func (r *AppointmentRepository) ListRecent(limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := r.db.Preload("Patient").Preload("Doctor").
		Order("appointment_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, apperror.Storef(err, "failed to list appointments")
	}
	return appointments, nil
}

// ListScheduled retrieves the most recent appointments still in Scheduled
// status, the candidate set for linking treatments.
func (r *AppointmentRepository) ListScheduled(limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := r.db.Preload("Patient").Preload("Doctor").
		Where("status = ?", models.StatusScheduled).
		Order("appointment_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, apperror.Storef(err, "failed to list scheduled appointments")
	}
	return appointments, nil
}

// GetByID retrieves an appointment with patient and doctor preloaded
func (r *AppointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Patient").Preload("Doctor").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("appointment %d not found", id)
		}
		return nil, apperror.Storef(err, "failed to fetch appointment %d", id)
	}
	return &appointment, nil
}

// Create inserts a new appointment. Both the patient and the doctor must
// already exist; the status and creation time are set by the caller.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Patient{}).Where("id = ?", appointment.PatientID).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check patient %d", appointment.PatientID)
		}
		if count == 0 {
			return apperror.Referencef("patient %d does not exist", appointment.PatientID)
		}
		if err := tx.Model(&models.Doctor{}).Where("id = ?", appointment.DoctorID).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check doctor %d", appointment.DoctorID)
		}
		if count == 0 {
			return apperror.Referencef("doctor %d does not exist", appointment.DoctorID)
		}
		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperror.Referencef("patient %d or doctor %d does not exist", appointment.PatientID, appointment.DoctorID)
			}
			return apperror.Storef(err, "failed to create appointment")
		}
		return nil
	})
}

// AddTreatment links a treatment to an appointment. Each pair may only be
// linked once. Status is intentionally not checked here: the candidate
// lists shown to callers are restricted to Scheduled appointments, but the
// operation accepts any existing appointment.
func (r *AppointmentRepository) AddTreatment(appointmentID, treatmentID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Appointment{}).Where("id = ?", appointmentID).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check appointment %d", appointmentID)
		}
		if count == 0 {
			return apperror.Referencef("appointment %d does not exist", appointmentID)
		}
		if err := tx.Model(&models.Treatment{}).Where("id = ?", treatmentID).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check treatment %d", treatmentID)
		}
		if count == 0 {
			return apperror.Referencef("treatment %d does not exist", treatmentID)
		}

		err := tx.Model(&models.AppointmentTreatment{}).
			Where("appointment_id = ? AND treatment_id = ?", appointmentID, treatmentID).
			Count(&count).Error
		if err != nil {
			return apperror.Storef(err, "failed to check link %d/%d", appointmentID, treatmentID)
		}
		if count > 0 {
			return apperror.Conflictf("treatment %d is already linked to appointment %d", treatmentID, appointmentID)
		}

		link := models.AppointmentTreatment{AppointmentID: appointmentID, TreatmentID: treatmentID}
		if err := tx.Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflictf("treatment %d is already linked to appointment %d", treatmentID, appointmentID)
			}
			return apperror.Storef(err, "failed to link treatment %d to appointment %d", treatmentID, appointmentID)
		}
		return nil
	})
}

// ListTreatments retrieves the treatments linked to an appointment
func (r *AppointmentRepository) ListTreatments(appointmentID uint) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.Table("treatments").
		Joins("INNER JOIN appointment_treatments ON appointment_treatments.treatment_id = treatments.id").
		Where("appointment_treatments.appointment_id = ?", appointmentID).
		Order("treatments.name ASC").
		Find(&treatments).Error
	if err != nil {
		return nil, apperror.Storef(err, "failed to list treatments for appointment %d", appointmentID)
	}
	return treatments, nil
}

// UpdateStatus overwrites the status of an appointment in place.
// No status history is retained.
func (r *AppointmentRepository) UpdateStatus(id uint, status models.AppointmentStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			return apperror.Storef(result.Error, "failed to update appointment %d", id)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error; err == nil && count == 0 {
				return apperror.NotFoundf("appointment %d not found", id)
			}
			// Row exists but already carries the requested status
		}
		return nil
	})
}

// Delete removes an appointment and all of its treatment links in one
// transaction. The cascade is explicit rather than store-side so behavior
// is identical across storage backends.
func (r *AppointmentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFoundf("appointment %d not found", id)
			}
			return apperror.Storef(err, "failed to fetch appointment %d", id)
		}

		if err := tx.Where("appointment_id = ?", id).Delete(&models.AppointmentTreatment{}).Error; err != nil {
			return apperror.Storef(err, "failed to delete links for appointment %d", id)
		}
		if err := tx.Delete(&appointment).Error; err != nil {
			return apperror.Storef(err, "failed to delete appointment %d", id)
		}
		return nil
	})
}

// CountTreatmentLinks returns the number of join rows for an appointment
func (r *AppointmentRepository) CountTreatmentLinks(appointmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AppointmentTreatment{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Storef(err, "failed to count links for appointment %d", appointmentID)
	}
	return count, nil
}
