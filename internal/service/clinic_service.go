package service

import (
	"strings"
	"time"

	"clinicflow/internal/apperror"
	"clinicflow/internal/logger"
	"clinicflow/internal/models"
	"clinicflow/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CreateClinicInput carries the inputs for registering a clinic
type CreateClinicInput struct {
	Name    string `validate:"required,max=100"`
	Address string `validate:"omitempty,max=200"`
	City    string `validate:"omitempty,max=50"`
}

type ClinicService struct {
	clinicRepo *repository.ClinicRepository
	validate   *validator.Validate
}

func NewClinicService(clinicRepo *repository.ClinicRepository) *ClinicService {
	return &ClinicService{
		clinicRepo: clinicRepo,
		validate:   validator.New(),
	}
}

// ListClinics retrieves all clinics ordered by name
func (s *ClinicService) ListClinics() ([]models.Clinic, error) {
	return s.clinicRepo.List()
}

// CreateClinic validates the input and registers a new clinic
func (s *ClinicService) CreateClinic(input CreateClinicInput) (*models.Clinic, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)

	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Wrap(apperror.Validation, "invalid clinic details", err)
	}

	clinic := &models.Clinic{
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.clinicRepo.Create(clinic); err != nil {
		return nil, err
	}

	logger.Log.Info("Clinic created", zap.Uint("id", clinic.ID), zap.String("name", clinic.Name))
	return clinic, nil
}
