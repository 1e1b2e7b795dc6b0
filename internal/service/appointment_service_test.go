package service

import (
	"testing"
	"time"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"
	"clinicflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type services struct {
	clinics      *ClinicService
	doctors      *DoctorService
	patients     *PatientService
	treatments   *TreatmentService
	appointments *AppointmentService
}

func newServices(db *gorm.DB) services {
	return services{
		clinics:      NewClinicService(repository.NewClinicRepo(db)),
		doctors:      NewDoctorService(repository.NewDoctorRepo(db)),
		patients:     NewPatientService(repository.NewPatientRepo(db)),
		treatments:   NewTreatmentService(repository.NewTreatmentRepo(db)),
		appointments: NewAppointmentService(repository.NewAppointmentRepo(db)),
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	_, err := s.appointments.CreateAppointment(0, 1, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))

	_, err = s.appointments.CreateAppointment(1, 0, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))

	_, err = s.appointments.CreateAppointment(1, 1, time.Time{})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	err := s.appointments.UpdateStatus(1, models.AppointmentStatus("Rescheduled"))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))

	for _, status := range models.AllStatuses {
		assert.True(t, status.Valid())
	}
	assert.False(t, models.AppointmentStatus("").Valid())
	assert.False(t, models.AppointmentStatus("scheduled").Valid())
}

// TestAppointmentLifecycle walks one visit from registration to deletion
func TestAppointmentLifecycle(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	clinic, err := s.clinics.CreateClinic(CreateClinicInput{Name: "Downtown Clinic", City: "Springfield"})
	require.NoError(t, err)

	doctor, err := s.doctors.CreateDoctor(CreateDoctorInput{
		FirstName: "Gregory", LastName: "House", Specialization: "Diagnostics", ClinicID: clinic.ID,
	})
	require.NoError(t, err)

	patient, err := s.patients.CreatePatient(CreatePatientInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com",
	})
	require.NoError(t, err)

	treatment, err := s.treatments.CreateTreatment(CreateTreatmentInput{
		Name: "Dental Cleaning", DurationMinutes: 30, Price: 50.00,
	})
	require.NoError(t, err)

	when := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	appointment, err := s.appointments.CreateAppointment(patient.ID, doctor.ID, when)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appointment.Status)

	require.NoError(t, s.appointments.AddTreatment(appointment.ID, treatment.ID))

	linked, err := s.appointments.ListAppointmentTreatments(appointment.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "Dental Cleaning", linked[0].Name)

	require.NoError(t, s.appointments.UpdateStatus(appointment.ID, models.StatusCompleted))

	fetched, err := s.appointments.GetAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, fetched.Status)
	assert.Equal(t, "Jane Doe", fetched.Patient.FullName())

	require.NoError(t, s.appointments.DeleteAppointment(appointment.ID))

	_, err = s.appointments.GetAppointment(appointment.ID)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.NotFound))

	// No orphaned treatment links survive the delete
	var orphans int64
	require.NoError(t, db.Model(&models.AppointmentTreatment{}).Count(&orphans).Error)
	assert.EqualValues(t, 0, orphans)
}

func TestListCaps(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	clinic, err := s.clinics.CreateClinic(CreateClinicInput{Name: "Downtown Clinic"})
	require.NoError(t, err)
	doctor, err := s.doctors.CreateDoctor(CreateDoctorInput{FirstName: "Gregory", LastName: "House", ClinicID: clinic.ID})
	require.NoError(t, err)
	patient, err := s.patients.CreatePatient(CreatePatientInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < repository.ListLimit+5; i++ {
		_, err := s.appointments.CreateAppointment(patient.ID, doctor.ID, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}

	all, err := s.appointments.ListAppointments()
	require.NoError(t, err)
	assert.Len(t, all, repository.ListLimit)

	candidates, err := s.appointments.ListCandidates()
	require.NoError(t, err)
	assert.Len(t, candidates, repository.CandidateLimit)

	scheduled, err := s.appointments.ListScheduled()
	require.NoError(t, err)
	assert.Len(t, scheduled, repository.ScheduledLimit)
}

func TestCreateDoctorValidation(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	_, err := s.doctors.CreateDoctor(CreateDoctorInput{FirstName: "Gregory", LastName: "House"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))

	_, err = s.doctors.CreateDoctor(CreateDoctorInput{FirstName: "Gregory", LastName: "House", ClinicID: 999})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Reference))
}

func TestCreateTreatmentValidation(t *testing.T) {
	db := newTestDB(t)
	s := newServices(db)

	_, err := s.treatments.CreateTreatment(CreateTreatmentInput{Name: "X-Ray", DurationMinutes: 0, Price: 80.00})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))

	_, err = s.treatments.CreateTreatment(CreateTreatmentInput{Name: "X-Ray", DurationMinutes: 15, Price: -1})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.Validation))
}
