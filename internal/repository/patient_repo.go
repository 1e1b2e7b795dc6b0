package repository

import (
	"errors"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// List retrieves all patients ordered by last name, then first name
func (r *PatientRepository) List() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("last_name ASC, first_name ASC").Find(&patients).Error
	if err != nil {
		return nil, apperror.Storef(err, "failed to list patients")
	}
	return patients, nil
}

// GetByID retrieves a patient by ID
func (r *PatientRepository) GetByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("patient %d not found", id)
		}
		return nil, apperror.Storef(err, "failed to fetch patient %d", id)
	}
	return &patient, nil
}

// ExistsByEmail reports whether a patient with the given email exists
func (r *PatientRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, apperror.Storef(err, "failed to check email %q", email)
	}
	return count > 0, nil
}

// Create inserts a new patient. The caller supplies validated fields; the
// email uniqueness check runs inside the same transaction as the insert so
// a concurrent duplicate still surfaces as a conflict.
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Patient{}).Where("email = ?", patient.Email).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check email %q", patient.Email)
		}
		if count > 0 {
			return apperror.Conflictf("email %q already exists", patient.Email)
		}
		if err := tx.Create(patient).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflictf("email %q already exists", patient.Email)
			}
			return apperror.Storef(err, "failed to create patient")
		}
		return nil
	})
}

// Count returns the total number of patients
func (r *PatientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Count(&count).Error
	if err != nil {
		return 0, apperror.Storef(err, "failed to count patients")
	}
	return count, nil
}
