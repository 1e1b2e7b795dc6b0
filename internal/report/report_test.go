package report

import (
	"testing"
	"time"

	"clinicflow/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

// reportFixture holds the seeded graph the report tests share
type reportFixture struct {
	downtown models.Clinic
	eastside models.Clinic
	house    models.Doctor
	wilson   models.Doctor
	smith    models.Patient
	doe      models.Patient
	cleaning models.Treatment
	xray     models.Treatment
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	require.NoError(t, db.Create(value).Error)
}

func seedReportFixture(t *testing.T, db *gorm.DB) reportFixture {
	t.Helper()
	now := time.Now().UTC()

	f := reportFixture{
		downtown: models.Clinic{Name: "Downtown Clinic", City: "Springfield", CreatedAt: now},
		eastside: models.Clinic{Name: "Eastside Clinic", City: "Shelbyville", CreatedAt: now},
	}
	mustCreate(t, db, &f.downtown)
	mustCreate(t, db, &f.eastside)

	f.house = models.Doctor{FirstName: "Gregory", LastName: "House", Specialization: "Diagnostics", ClinicID: f.downtown.ID, CreatedAt: now}
	f.wilson = models.Doctor{FirstName: "James", LastName: "Wilson", Specialization: "Oncology", ClinicID: f.eastside.ID, CreatedAt: now}
	mustCreate(t, db, &f.house)
	mustCreate(t, db, &f.wilson)

	f.smith = models.Patient{FirstName: "John", LastName: "Smith", Email: "john@x.com", CreatedAt: now}
	f.doe = models.Patient{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", CreatedAt: now}
	mustCreate(t, db, &f.smith)
	mustCreate(t, db, &f.doe)

	f.cleaning = models.Treatment{Name: "Dental Cleaning", DurationMinutes: 30, Price: 50.00}
	f.xray = models.Treatment{Name: "X-Ray", DurationMinutes: 15, Price: 80.00}
	mustCreate(t, db, &f.cleaning)
	mustCreate(t, db, &f.xray)

	return f
}

func addAppointment(t *testing.T, db *gorm.DB, patientID, doctorID uint, at, created time.Time, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	appointment := models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: at,
		Status:          status,
		CreatedAt:       created,
	}
	mustCreate(t, db, &appointment)
	return appointment
}

func TestTopPatients(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	// Smith: 3 visits, Doe: 1 visit. A third patient with none must not appear.
	idle := models.Patient{FirstName: "Ida", LastName: "Idle", Email: "ida@x.com", CreatedAt: base}
	mustCreate(t, db, &idle)

	addAppointment(t, db, f.smith.ID, f.house.ID, base, base, models.StatusCompleted)
	addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(24*time.Hour), base, models.StatusNoShow)
	addAppointment(t, db, f.smith.ID, f.wilson.ID, base.Add(48*time.Hour), base, models.StatusCancelled)
	addAppointment(t, db, f.doe.ID, f.wilson.ID, base, base, models.StatusCompleted)

	rows, err := reporter.TopPatients()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.smith.ID, rows[0].PatientID)
	assert.Equal(t, 3, rows[0].TotalVisits)
	assert.Equal(t, 1, rows[0].Completed)
	assert.Equal(t, 1, rows[0].NoShows)
	assert.Equal(t, 1, rows[0].Cancelled)

	assert.Equal(t, f.doe.ID, rows[1].PatientID)
	assert.Equal(t, 1, rows[1].TotalVisits)
}

func TestDoctorWorkloads(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-72 * time.Hour)
	future := now.Add(72 * time.Hour)

	addAppointment(t, db, f.smith.ID, f.house.ID, past, past, models.StatusCompleted)
	addAppointment(t, db, f.smith.ID, f.house.ID, future, past, models.StatusScheduled)
	// A Scheduled appointment in the past does not count as upcoming
	addAppointment(t, db, f.doe.ID, f.house.ID, past, past, models.StatusScheduled)

	rows, err := reporter.DoctorWorkloads(now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.house.ID, rows[0].DoctorID)
	assert.Equal(t, 3, rows[0].TotalAppointments)
	assert.Equal(t, 1, rows[0].Completed)
	assert.Equal(t, 1, rows[0].Upcoming)

	// Wilson has no appointments but still appears with zero counts
	assert.Equal(t, f.wilson.ID, rows[1].DoctorID)
	assert.Equal(t, 0, rows[1].TotalAppointments)
	assert.Equal(t, 0, rows[1].Completed)
	assert.Equal(t, 0, rows[1].Upcoming)
}

func TestAtRiskPatients(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	// Smith: 2 no-shows out of 5 visits -> 40% rate, Medium risk
	addAppointment(t, db, f.smith.ID, f.house.ID, base, base, models.StatusNoShow)
	addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(24*time.Hour), base, models.StatusNoShow)
	addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(48*time.Hour), base, models.StatusCompleted)
	addAppointment(t, db, f.smith.ID, f.wilson.ID, base.Add(72*time.Hour), base, models.StatusCompleted)
	addAppointment(t, db, f.smith.ID, f.wilson.ID, base.Add(96*time.Hour), base, models.StatusScheduled)

	// Doe: only 1 no-show, stays below the threshold
	addAppointment(t, db, f.doe.ID, f.wilson.ID, base, base, models.StatusNoShow)
	addAppointment(t, db, f.doe.ID, f.wilson.ID, base.Add(24*time.Hour), base, models.StatusCompleted)

	rows, err := reporter.AtRiskPatients()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, f.smith.ID, rows[0].PatientID)
	assert.Equal(t, 5, rows[0].TotalVisits)
	assert.Equal(t, 2, rows[0].NoShows)
	assert.InDelta(t, 40.0, rows[0].NoShowRate, 0.001)
	assert.Equal(t, RiskMedium, rows[0].Risk)
}

func TestAtRiskPatientsHighRisk(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(time.Duration(i)*24*time.Hour), base, models.StatusNoShow)
	}
	addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(96*time.Hour), base, models.StatusCompleted)

	rows, err := reporter.AtRiskPatients()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].NoShows)
	assert.Equal(t, RiskHigh, rows[0].Risk)
}

func TestLatestActivity(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(240*time.Hour), base, models.StatusScheduled)
	newest := addAppointment(t, db, f.doe.ID, f.wilson.ID, base.Add(24*time.Hour), base.Add(48*time.Hour), models.StatusCompleted)

	rows, err := reporter.LatestActivity()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by creation time, not appointment date
	assert.Equal(t, newest.ID, rows[0].AppointmentID)
	assert.Equal(t, "Jane Doe", rows[0].PatientName)
	assert.Equal(t, "James Wilson", rows[0].DoctorName)
	assert.Equal(t, "Eastside Clinic", rows[0].ClinicName)
	assert.Equal(t, models.StatusCompleted, rows[0].Status)

	assert.Equal(t, "John Smith", rows[1].PatientName)
	assert.Equal(t, "Downtown Clinic", rows[1].ClinicName)
}

func TestPopularTreatments(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	a1 := addAppointment(t, db, f.smith.ID, f.house.ID, base, base, models.StatusCompleted)
	a2 := addAppointment(t, db, f.smith.ID, f.house.ID, base.Add(24*time.Hour), base, models.StatusCompleted)
	a3 := addAppointment(t, db, f.doe.ID, f.wilson.ID, base, base, models.StatusScheduled)

	// Dental Cleaning booked three times at 50.00 -> 150.00 revenue
	for _, a := range []models.Appointment{a1, a2, a3} {
		mustCreate(t, db, &models.AppointmentTreatment{AppointmentID: a.ID, TreatmentID: f.cleaning.ID})
	}

	rows, err := reporter.PopularTreatments()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.cleaning.ID, rows[0].TreatmentID)
	assert.Equal(t, 3, rows[0].TimesBooked)
	assert.InDelta(t, 150.00, rows[0].TotalRevenue, 0.001)

	// Never-booked treatments still appear with zero counts
	assert.Equal(t, f.xray.ID, rows[1].TreatmentID)
	assert.Equal(t, 0, rows[1].TimesBooked)
	assert.InDelta(t, 0.0, rows[1].TotalRevenue, 0.001)
}

func TestClinicSummaries(t *testing.T) {
	db := newTestDB(t)
	f := seedReportFixture(t, db)
	reporter := NewReporter(db)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	addAppointment(t, db, f.smith.ID, f.house.ID, base, base, models.StatusCompleted)
	addAppointment(t, db, f.doe.ID, f.house.ID, base.Add(24*time.Hour), base, models.StatusScheduled)

	rows, err := reporter.ClinicSummaries()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.downtown.ID, rows[0].ClinicID)
	assert.Equal(t, 1, rows[0].DoctorCount)
	assert.Equal(t, 2, rows[0].TotalAppointments)
	assert.Equal(t, 1, rows[0].CompletedAppointments)

	assert.Equal(t, f.eastside.ID, rows[1].ClinicID)
	assert.Equal(t, 1, rows[1].DoctorCount)
	assert.Equal(t, 0, rows[1].TotalAppointments)
	assert.Equal(t, 0, rows[1].CompletedAppointments)
}
