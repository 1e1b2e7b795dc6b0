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

// CreatePatientInput carries the validated primitive inputs for patient
// registration. Phone is optional.
type CreatePatientInput struct {
	FirstName string `validate:"required,max=50"`
	LastName  string `validate:"required,max=50"`
	Email     string `validate:"required,contains=@,max=100"`
	Phone     string `validate:"omitempty,max=20"`
}

type PatientService struct {
	patientRepo *repository.PatientRepository
	validate    *validator.Validate
}

func NewPatientService(patientRepo *repository.PatientRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		validate:    validator.New(),
	}
}

// ListPatients retrieves all patients ordered by last name, first name
func (s *PatientService) ListPatients() ([]models.Patient, error) {
	return s.patientRepo.List()
}

// CreatePatient validates the input and registers a new patient.
// Validation happens before any write; a duplicate email is a conflict.
func (s *PatientService) CreatePatient(input CreatePatientInput) (*models.Patient, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Wrap(apperror.Validation, "invalid patient details", err)
	}

	patient := &models.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}
	if input.Phone != "" {
		patient.Phone = &input.Phone
	}

	if err := s.patientRepo.Create(patient); err != nil {
		return nil, err
	}

	logger.Log.Info("Patient created",
		zap.Uint("id", patient.ID),
		zap.String("email", patient.Email))
	return patient, nil
}
