package repository

import (
	"errors"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

type ClinicRepository struct {
	db *gorm.DB
}

func NewClinicRepo(db *gorm.DB) *ClinicRepository {
	return &ClinicRepository{db: db}
}

// List retrieves all clinics ordered by name
func (r *ClinicRepository) List() ([]models.Clinic, error) {
	var clinics []models.Clinic
	err := r.db.Order("name ASC").Find(&clinics).Error
	if err != nil {
		return nil, apperror.Storef(err, "failed to list clinics")
	}
	return clinics, nil
}

// GetByID retrieves a clinic by ID
func (r *ClinicRepository) GetByID(id uint) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.db.First(&clinic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("clinic %d not found", id)
		}
		return nil, apperror.Storef(err, "failed to fetch clinic %d", id)
	}
	return &clinic, nil
}

// Create inserts a new clinic
func (r *ClinicRepository) Create(clinic *models.Clinic) error {
	if err := r.db.Create(clinic).Error; err != nil {
		return apperror.Storef(err, "failed to create clinic")
	}
	return nil
}
