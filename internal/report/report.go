// Package report computes the read-only aggregation reports. Every report
// is a pure query over current state; nothing is cached or maintained
// incrementally.
package report

import (
	"time"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"

	"gorm.io/gorm"
)

// TopPatientsLimit caps the top-patients ranking
const TopPatientsLimit = 10

// LatestActivityLimit caps the latest-activity feed
const LatestActivityLimit = 20

// Risk classifies an at-risk patient
type Risk string

const (
	// RiskHigh means three or more no-shows
	RiskHigh Risk = "High"
	// RiskMedium means exactly two no-shows
	RiskMedium Risk = "Medium"
)

// PatientVisits is one row of the top-patients ranking
type PatientVisits struct {
	PatientID   uint   `json:"patient_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TotalVisits int    `json:"total_visits"`
	Completed   int    `json:"completed"`
	NoShows     int    `json:"no_shows"`
	Cancelled   int    `json:"cancelled"`
}

// DoctorWorkload is one row of the doctor workload report
type DoctorWorkload struct {
	DoctorID          uint   `json:"doctor_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Specialization    string `json:"specialization"`
	TotalAppointments int    `json:"total_appointments"`
	Completed         int    `json:"completed"`
	NoShows           int    `json:"no_shows"`
	Upcoming          int    `json:"upcoming"`
}

// AtRiskPatient is one row of the no-show analysis
type AtRiskPatient struct {
	PatientID   uint    `json:"patient_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	TotalVisits int     `json:"total_visits"`
	NoShows     int     `json:"no_shows"`
	NoShowRate  float64 `json:"no_show_rate"`
	Risk        Risk    `json:"risk" gorm:"-"`
}

// ActivityEntry is one row of the latest-activity feed, ordered by when the
// appointment was created rather than when it takes place
type ActivityEntry struct {
	AppointmentID   uint                     `json:"appointment_id"`
	AppointmentDate time.Time                `json:"appointment_date"`
	Status          models.AppointmentStatus `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	PatientName     string                   `json:"patient_name" gorm:"-"`
	DoctorName      string                   `json:"doctor_name" gorm:"-"`
	ClinicName      string                   `json:"clinic_name"`

	PatientFirstName string `json:"-"`
	PatientLastName  string `json:"-"`
	DoctorFirstName  string `json:"-"`
	DoctorLastName   string `json:"-"`
}

// TreatmentPopularity is one row of the popular-treatments report
type TreatmentPopularity struct {
	TreatmentID     uint    `json:"treatment_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	TimesBooked     int     `json:"times_booked"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// ClinicSummary is one row of the per-clinic overview
type ClinicSummary struct {
	ClinicID              uint   `json:"clinic_id"`
	Name                  string `json:"name"`
	City                  string `json:"city"`
	DoctorCount           int    `json:"doctor_count"`
	TotalAppointments     int    `json:"total_appointments"`
	CompletedAppointments int    `json:"completed_appointments"`
}

// Reporter runs the aggregation queries
type Reporter struct {
	db *gorm.DB
}

func NewReporter(db *gorm.DB) *Reporter {
	return &Reporter{db: db}
}

// TopPatients ranks patients with at least one appointment by total visit
// count, descending, capped to the top 10.
func (r *Reporter) TopPatients() ([]PatientVisits, error) {
	var rows []PatientVisits
	err := r.db.Table("patients").
		Select(`patients.id AS patient_id,
			patients.first_name,
			patients.last_name,
			COUNT(appointments.id) AS total_visits,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) AS no_shows,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) AS cancelled`,
			models.StatusCompleted, models.StatusNoShow, models.StatusCancelled).
		Joins("INNER JOIN appointments ON appointments.patient_id = patients.id").
		Group("patients.id, patients.first_name, patients.last_name").
		Order("total_visits DESC").
		Limit(TopPatientsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "top patients report failed")
	}
	return rows, nil
}

// DoctorWorkloads reports appointment counts per doctor, ordered by total
// descending. Upcoming counts Scheduled appointments strictly after now.
func (r *Reporter) DoctorWorkloads(now time.Time) ([]DoctorWorkload, error) {
	var rows []DoctorWorkload
	err := r.db.Table("doctors").
		Select(`doctors.id AS doctor_id,
			doctors.first_name,
			doctors.last_name,
			doctors.specialization,
			COUNT(appointments.id) AS total_appointments,
			COALESCE(SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END), 0) AS no_shows,
			COALESCE(SUM(CASE WHEN appointments.status = ? AND appointments.appointment_date > ? THEN 1 ELSE 0 END), 0) AS upcoming`,
			models.StatusCompleted, models.StatusNoShow, models.StatusScheduled, now).
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.id").
		Group("doctors.id, doctors.first_name, doctors.last_name, doctors.specialization").
		Order("total_appointments DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "doctor workload report failed")
	}
	return rows, nil
}

// AtRiskPatients lists patients with two or more no-shows, ordered by
// no-show count descending then no-show rate descending. The rate is
// no-shows over total appointments as a percentage.
func (r *Reporter) AtRiskPatients() ([]AtRiskPatient, error) {
	var rows []AtRiskPatient
	err := r.db.Table("patients").
		Select(`patients.id AS patient_id,
			patients.first_name,
			patients.last_name,
			patients.email,
			COUNT(appointments.id) AS total_visits,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) AS no_shows,
			SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) * 100.0 / COUNT(appointments.id) AS no_show_rate`,
			models.StatusNoShow, models.StatusNoShow).
		Joins("INNER JOIN appointments ON appointments.patient_id = patients.id").
		Group("patients.id, patients.first_name, patients.last_name, patients.email").
		Having("SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END) >= ?", models.StatusNoShow, 2).
		Order("no_shows DESC, no_show_rate DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "at-risk patients report failed")
	}
	for i := range rows {
		if rows[i].NoShows >= 3 {
			rows[i].Risk = RiskHigh
		} else {
			rows[i].Risk = RiskMedium
		}
	}
	return rows, nil
}

// LatestActivity returns the 20 most recently created appointments,
// annotated with patient, doctor and clinic names.
func (r *Reporter) LatestActivity() ([]ActivityEntry, error) {
	var rows []ActivityEntry
	err := r.db.Table("appointments").
		Select(`appointments.id AS appointment_id,
			appointments.appointment_date,
			appointments.status,
			appointments.created_at,
			patients.first_name AS patient_first_name,
			patients.last_name AS patient_last_name,
			doctors.first_name AS doctor_first_name,
			doctors.last_name AS doctor_last_name,
			clinics.name AS clinic_name`).
		Joins("INNER JOIN patients ON patients.id = appointments.patient_id").
		Joins("INNER JOIN doctors ON doctors.id = appointments.doctor_id").
		Joins("INNER JOIN clinics ON clinics.id = doctors.clinic_id").
		Order("appointments.created_at DESC").
		Limit(LatestActivityLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "latest activity report failed")
	}
	for i := range rows {
		rows[i].PatientName = rows[i].PatientFirstName + " " + rows[i].PatientLastName
		rows[i].DoctorName = rows[i].DoctorFirstName + " " + rows[i].DoctorLastName
	}
	return rows, nil
}

// PopularTreatments reports booking counts and revenue per treatment,
// ordered by times booked descending. Revenue is bookings times price.
func (r *Reporter) PopularTreatments() ([]TreatmentPopularity, error) {
	var rows []TreatmentPopularity
	err := r.db.Table("treatments").
		Select(`treatments.id AS treatment_id,
			treatments.name,
			treatments.duration_minutes,
			treatments.price,
			COUNT(appointment_treatments.treatment_id) AS times_booked,
			COUNT(appointment_treatments.treatment_id) * treatments.price AS total_revenue`).
		Joins("LEFT JOIN appointment_treatments ON appointment_treatments.treatment_id = treatments.id").
		Group("treatments.id, treatments.name, treatments.duration_minutes, treatments.price").
		Order("times_booked DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "popular treatments report failed")
	}
	return rows, nil
}

// ClinicSummaries reports doctor and appointment counts per clinic,
// ordered by total appointments descending.
func (r *Reporter) ClinicSummaries() ([]ClinicSummary, error) {
	var rows []ClinicSummary
	err := r.db.Table("clinics").
		Select(`clinics.id AS clinic_id,
			clinics.name,
			clinics.city,
			COUNT(DISTINCT doctors.id) AS doctor_count,
			COUNT(appointments.id) AS total_appointments,
			COALESCE(SUM(CASE WHEN appointments.status = ? THEN 1 ELSE 0 END), 0) AS completed_appointments`,
			models.StatusCompleted).
		Joins("LEFT JOIN doctors ON doctors.clinic_id = clinics.id").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.id").
		Group("clinics.id, clinics.name, clinics.city").
		Order("total_appointments DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Storef(err, "clinic summary report failed")
	}
	return rows, nil
}
