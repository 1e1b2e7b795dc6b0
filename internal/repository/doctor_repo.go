package repository

import (
	"errors"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// List retrieves all doctors with their clinic, ordered by last name then first name
func (r *DoctorRepository) List() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Preload("Clinic").
		Order("last_name ASC, first_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, apperror.Storef(err, "failed to list doctors")
	}
	return doctors, nil
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("Clinic").First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("doctor %d not found", id)
		}
		return nil, apperror.Storef(err, "failed to fetch doctor %d", id)
	}
	return &doctor, nil
}

// Create inserts a new doctor. The clinic must already exist.
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Clinic{}).Where("id = ?", doctor.ClinicID).Count(&count).Error; err != nil {
			return apperror.Storef(err, "failed to check clinic %d", doctor.ClinicID)
		}
		if count == 0 {
			return apperror.Referencef("clinic %d does not exist", doctor.ClinicID)
		}
		if err := tx.Create(doctor).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return apperror.Referencef("clinic %d does not exist", doctor.ClinicID)
			}
			return apperror.Storef(err, "failed to create doctor")
		}
		return nil
	})
}
