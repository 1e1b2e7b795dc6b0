package service

import (
	"strings"

	"clinicflow/internal/apperror"
	"clinicflow/internal/logger"
	"clinicflow/internal/models"
	"clinicflow/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CreateTreatmentInput carries the inputs for adding a treatment to the catalog
type CreateTreatmentInput struct {
	Name            string  `validate:"required,max=100"`
	DurationMinutes int     `validate:"gt=0"`
	Price           float64 `validate:"gte=0"`
}

type TreatmentService struct {
	treatmentRepo *repository.TreatmentRepository
	validate      *validator.Validate
}

func NewTreatmentService(treatmentRepo *repository.TreatmentRepository) *TreatmentService {
	return &TreatmentService{
		treatmentRepo: treatmentRepo,
		validate:      validator.New(),
	}
}

// ListTreatments retrieves all treatments ordered by name
func (s *TreatmentService) ListTreatments() ([]models.Treatment, error) {
	return s.treatmentRepo.List()
}

// CreateTreatment validates the input and adds a treatment to the catalog
func (s *TreatmentService) CreateTreatment(input CreateTreatmentInput) (*models.Treatment, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := s.validate.Struct(input); err != nil {
		return nil, apperror.Wrap(apperror.Validation, "invalid treatment details", err)
	}

	treatment := &models.Treatment{
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
	}
	if err := s.treatmentRepo.Create(treatment); err != nil {
		return nil, err
	}

	logger.Log.Info("Treatment created", zap.Uint("id", treatment.ID), zap.String("name", treatment.Name))
	return treatment, nil
}

// DeleteTreatment removes a treatment from the catalog. Treatments still
// linked to appointments cannot be deleted.
func (s *TreatmentService) DeleteTreatment(id uint) error {
	if err := s.treatmentRepo.Delete(id); err != nil {
		return err
	}
	logger.Log.Info("Treatment deleted", zap.Uint("id", id))
	return nil
}
