package service

import (
	"time"

	"clinicflow/internal/apperror"
	"clinicflow/internal/logger"
	"clinicflow/internal/models"
	"clinicflow/internal/repository"

	"go.uber.org/zap"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
}

func NewAppointmentService(appointmentRepo *repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

// ListAppointments retrieves the latest appointments by date, capped to 30
func (s *AppointmentService) ListAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.ListRecent(repository.ListLimit)
}

// ListCandidates retrieves the latest appointments for status-update and
// delete pickers, capped to 20
func (s *AppointmentService) ListCandidates() ([]models.Appointment, error) {
	return s.appointmentRepo.ListRecent(repository.CandidateLimit)
}

// ListScheduled retrieves the latest Scheduled appointments, the candidate
// set for linking treatments, capped to 15
func (s *AppointmentService) ListScheduled() ([]models.Appointment, error) {
	return s.appointmentRepo.ListScheduled(repository.ScheduledLimit)
}

// GetAppointment retrieves one appointment with patient and doctor
func (s *AppointmentService) GetAppointment(id uint) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(id)
}

// CreateAppointment books a visit for an existing patient with an existing
// doctor. New appointments always start out Scheduled; the creation time
// is set here, not by the store.
func (s *AppointmentService) CreateAppointment(patientID, doctorID uint, date time.Time) (*models.Appointment, error) {
	if patientID == 0 || doctorID == 0 {
		return nil, apperror.Validationf("patient and doctor are required")
	}
	if date.IsZero() {
		return nil, apperror.Validationf("appointment date is required")
	}

	appointment := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, err
	}

	logger.Log.Info("Appointment created",
		zap.Uint("id", appointment.ID),
		zap.Uint("patient_id", patientID),
		zap.Uint("doctor_id", doctorID),
		zap.Time("date", date))
	return appointment, nil
}

// AddTreatment links a treatment to an appointment. The pair must not be
// linked already.
func (s *AppointmentService) AddTreatment(appointmentID, treatmentID uint) error {
	if err := s.appointmentRepo.AddTreatment(appointmentID, treatmentID); err != nil {
		return err
	}
	logger.Log.Info("Treatment linked to appointment",
		zap.Uint("appointment_id", appointmentID),
		zap.Uint("treatment_id", treatmentID))
	return nil
}

// ListAppointmentTreatments retrieves the treatments linked to an appointment
func (s *AppointmentService) ListAppointmentTreatments(appointmentID uint) ([]models.Treatment, error) {
	return s.appointmentRepo.ListTreatments(appointmentID)
}

// UpdateStatus overwrites the appointment status. Only the four known
// statuses are accepted.
func (s *AppointmentService) UpdateStatus(id uint, status models.AppointmentStatus) error {
	if !status.Valid() {
		return apperror.Validationf("unknown appointment status %q", status)
	}
	if err := s.appointmentRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	logger.Log.Info("Appointment status updated",
		zap.Uint("id", id),
		zap.String("status", string(status)))
	return nil
}

// DeleteAppointment removes an appointment together with its treatment links
func (s *AppointmentService) DeleteAppointment(id uint) error {
	if err := s.appointmentRepo.Delete(id); err != nil {
		return err
	}
	logger.Log.Info("Appointment deleted", zap.Uint("id", id))
	return nil
}
