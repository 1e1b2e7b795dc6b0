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

// CreateDoctorInput carries the inputs for registering a doctor under an
// existing clinic
type CreateDoctorInput struct {
	FirstName      string `validate:"required,max=50"`
	LastName       string `validate:"required,max=50"`
	Specialization string `validate:"omitempty,max=100"`
	ClinicID       uint   `validate:"required"`
}

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
	validate   *validator.Validate
}

func NewDoctorService(doctorRepo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		validate:   validator.New(),
	}
}

// ListDoctors retrieves all doctors with their clinic
func (s *DoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.doctorRepo.List()
}

// CreateDoctor validates the input and registers a new doctor.
// The clinic must already exist.
func (s *DoctorService) CreateDoctor(input CreateDoctorInput) (*models.Doctor, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Specialization = strings.TrimSpace(input.Specialization)

	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Wrap(apperror.Validation, "invalid doctor details", err)
	}

	doctor := &models.Doctor{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Specialization: input.Specialization,
		ClinicID:       input.ClinicID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.doctorRepo.Create(doctor); err != nil {
		return nil, err
	}

	logger.Log.Info("Doctor created",
		zap.Uint("id", doctor.ID),
		zap.Uint("clinic_id", doctor.ClinicID))
	return doctor, nil
}
