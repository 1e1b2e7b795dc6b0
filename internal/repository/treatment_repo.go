package repository

import (
	"errors"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepo(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

// List retrieves all treatments ordered by name
func (r *TreatmentRepository) List() ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.Order("name ASC").Find(&treatments).Error
	if err != nil {
		return nil, apperror.Storef(err, "failed to list treatments")
	}
	return treatments, nil
}

// GetByID retrieves a treatment by ID
func (r *TreatmentRepository) GetByID(id uint) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.db.First(&treatment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("treatment %d not found", id)
		}
		return nil, apperror.Storef(err, "failed to fetch treatment %d", id)
	}
	return &treatment, nil
}

// Create inserts a new treatment
func (r *TreatmentRepository) Create(treatment *models.Treatment) error {
	if err := r.db.Create(treatment).Error; err != nil {
		return apperror.Storef(err, "failed to create treatment")
	}
	return nil
}

// Delete removes a treatment. A treatment still referenced by appointment
// links is not deletable; the links must be removed first.
func (r *TreatmentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var treatment models.Treatment
		if err := tx.First(&treatment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFoundf("treatment %d not found", id)
			}
			return apperror.Storef(err, "failed to fetch treatment %d", id)
		}

		var linked int64
		if err := tx.Model(&models.AppointmentTreatment{}).Where("treatment_id = ?", id).Count(&linked).Error; err != nil {
			return apperror.Storef(err, "failed to check links for treatment %d", id)
		}
		if linked > 0 {
			return apperror.Conflictf("treatment %d is linked to %d appointment(s)", id, linked)
		}

		if err := tx.Delete(&treatment).Error; err != nil {
			return apperror.Storef(err, "failed to delete treatment %d", id)
		}
		return nil
	})
}
