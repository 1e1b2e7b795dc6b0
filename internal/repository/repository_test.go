package repository

import (
	"testing"
	"time"

	"clinicflow/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and
// foreign keys enforced
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Clinic{},
		&models.Doctor{},
		&models.Patient{},
		&models.Treatment{},
		&models.Appointment{},
		&models.AppointmentTreatment{},
	))
	return db
}

func createClinic(t *testing.T, db *gorm.DB, name string) models.Clinic {
	t.Helper()
	clinic := models.Clinic{Name: name, Address: "1 Test St", City: "Testville", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&clinic).Error)
	return clinic
}

func createDoctor(t *testing.T, db *gorm.DB, clinicID uint, first, last string) models.Doctor {
	t.Helper()
	doctor := models.Doctor{FirstName: first, LastName: last, Specialization: "General", ClinicID: clinicID, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&doctor).Error)
	return doctor
}

func createPatient(t *testing.T, db *gorm.DB, first, last, email string) models.Patient {
	t.Helper()
	patient := models.Patient{FirstName: first, LastName: last, Email: email, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func createTreatment(t *testing.T, db *gorm.DB, name string, price float64) models.Treatment {
	t.Helper()
	treatment := models.Treatment{Name: name, DurationMinutes: 30, Price: price}
	require.NoError(t, db.Create(&treatment).Error)
	return treatment
}

func createAppointment(t *testing.T, db *gorm.DB, patientID, doctorID uint, at time.Time, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: at,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, db.Create(&appointment).Error)
	return appointment
}
