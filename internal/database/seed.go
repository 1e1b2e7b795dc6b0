package database

import (
	"time"

	applog "clinicflow/internal/logger"
	"clinicflow/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed loads a small demo dataset. It is idempotent: if any clinic
// already exists the seed is skipped.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Clinic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		applog.Log.Info("Seed skipped, data already present")
		return nil
	}

	now := time.Now().UTC()

	return db.Transaction(func(tx *gorm.DB) error {
		clinics := []models.Clinic{
			{Name: "Downtown Medical Center", Address: "12 Main St", City: "Stockholm", CreatedAt: now},
			{Name: "Riverside Clinic", Address: "4 Quay Rd", City: "Gothenburg", CreatedAt: now},
		}
		if err := tx.Create(&clinics).Error; err != nil {
			return err
		}

		doctors := []models.Doctor{
			{FirstName: "Anna", LastName: "Berg", Specialization: "General Practice", ClinicID: clinics[0].ID, CreatedAt: now},
			{FirstName: "Erik", LastName: "Lind", Specialization: "Dermatology", ClinicID: clinics[0].ID, CreatedAt: now},
			{FirstName: "Sara", LastName: "Holm", Specialization: "Cardiology", ClinicID: clinics[1].ID, CreatedAt: now},
		}
		if err := tx.Create(&doctors).Error; err != nil {
			return err
		}

		patients := []models.Patient{
			{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Phone: strPtr("+46 70 123 45 67"), CreatedAt: now},
			{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com", CreatedAt: now},
			{FirstName: "Maria", LastName: "Karlsson", Email: "maria.karlsson@example.com", Phone: strPtr("+46 73 987 65 43"), CreatedAt: now},
			{FirstName: "Omar", LastName: "Ali", Email: "omar.ali@example.com", CreatedAt: now},
		}
		if err := tx.Create(&patients).Error; err != nil {
			return err
		}

		treatments := []models.Treatment{
			{Name: "General Checkup", DurationMinutes: 30, Price: 50.00},
			{Name: "Skin Screening", DurationMinutes: 45, Price: 80.00},
			{Name: "ECG", DurationMinutes: 20, Price: 120.00},
			{Name: "Blood Panel", DurationMinutes: 15, Price: 35.00},
		}
		if err := tx.Create(&treatments).Error; err != nil {
			return err
		}

		appointments := []models.Appointment{
			{PatientID: patients[0].ID, DoctorID: doctors[0].ID, AppointmentDate: now.AddDate(0, 0, 7), Status: models.StatusScheduled, CreatedAt: now},
			{PatientID: patients[0].ID, DoctorID: doctors[1].ID, AppointmentDate: now.AddDate(0, 0, -14), Status: models.StatusCompleted, CreatedAt: now.AddDate(0, 0, -20)},
			{PatientID: patients[1].ID, DoctorID: doctors[0].ID, AppointmentDate: now.AddDate(0, 0, -7), Status: models.StatusNoShow, CreatedAt: now.AddDate(0, 0, -10)},
			{PatientID: patients[1].ID, DoctorID: doctors[2].ID, AppointmentDate: now.AddDate(0, 0, -3), Status: models.StatusNoShow, CreatedAt: now.AddDate(0, 0, -5)},
			{PatientID: patients[1].ID, DoctorID: doctors[2].ID, AppointmentDate: now.AddDate(0, 0, 2), Status: models.StatusScheduled, CreatedAt: now.AddDate(0, 0, -1)},
			{PatientID: patients[2].ID, DoctorID: doctors[2].ID, AppointmentDate: now.AddDate(0, 0, -30), Status: models.StatusCancelled, CreatedAt: now.AddDate(0, 0, -35)},
			{PatientID: patients[2].ID, DoctorID: doctors[1].ID, AppointmentDate: now.AddDate(0, 0, 14), Status: models.StatusScheduled, CreatedAt: now.AddDate(0, 0, -2)},
		}
		if err := tx.Create(&appointments).Error; err != nil {
			return err
		}

		links := []models.AppointmentTreatment{
			{AppointmentID: appointments[1].ID, TreatmentID: treatments[1].ID},
			{AppointmentID: appointments[0].ID, TreatmentID: treatments[0].ID},
			{AppointmentID: appointments[4].ID, TreatmentID: treatments[2].ID},
			{AppointmentID: appointments[4].ID, TreatmentID: treatments[3].ID},
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}

		applog.Log.Info("Seed completed",
			zap.Int("clinics", len(clinics)),
			zap.Int("doctors", len(doctors)),
			zap.Int("patients", len(patients)),
			zap.Int("treatments", len(treatments)),
			zap.Int("appointments", len(appointments)))
		return nil
	})
}
