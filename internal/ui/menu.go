// Package ui implements the interactive console menu. It consumes the
// service and report layers only, renders their results, and translates
// typed failures into prompts or messages; no business rules live here
// beyond restricting treatment-link candidates to Scheduled appointments.
package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinicflow/internal/apperror"
	"clinicflow/internal/models"
	"clinicflow/internal/report"
	"clinicflow/internal/service"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

const backChoice = "Back to main menu"

// Menu drives the interactive console loop
type Menu struct {
	patients     *service.PatientService
	doctors      *service.DoctorService
	treatments   *service.TreatmentService
	appointments *service.AppointmentService
	reporter     *report.Reporter
}

func NewMenu(
	patients *service.PatientService,
	doctors *service.DoctorService,
	treatments *service.TreatmentService,
	appointments *service.AppointmentService,
	reporter *report.Reporter,
) *Menu {
	return &Menu{
		patients:     patients,
		doctors:      doctors,
		treatments:   treatments,
		appointments: appointments,
		reporter:     reporter,
	}
}

// Run shows the main menu until the user exits
func (m *Menu) Run() {
	for {
		showHeader("ClinicFlow")

		var choice string
		prompt := &survey.Select{
			Message:  "Select an option:",
			PageSize: 15,
			Options: []string{
				"List all patients",
				"List all doctors",
				"List all appointments",
				"List all treatments",
				"Create new appointment",
				"Add treatment to appointment",
				"Update appointment status",
				"Create new patient",
				"Delete appointment",
				"Reports",
				"Exit",
			},
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return
			}
			showError(err.Error())
			return
		}

		switch choice {
		case "List all patients":
			m.listPatients()
		case "List all doctors":
			m.listDoctors()
		case "List all appointments":
			m.listAppointments()
		case "List all treatments":
			m.listTreatments()
		case "Create new appointment":
			m.createAppointment()
		case "Add treatment to appointment":
			m.addTreatmentToAppointment()
		case "Update appointment status":
			m.updateAppointmentStatus()
		case "Create new patient":
			m.createPatient()
		case "Delete appointment":
			m.deleteAppointment()
		case "Reports":
			m.reportsMenu()
		case "Exit":
			return
		}
	}
}

func (m *Menu) listPatients() {
	showHeader("All Patients")
	patients, err := m.patients.ListPatients()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(patients) == 0 {
		showWarning("No patients found.")
		return
	}
	renderPatients(patients)
}

func (m *Menu) listDoctors() {
	showHeader("All Doctors")
	doctors, err := m.doctors.ListDoctors()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(doctors) == 0 {
		showWarning("No doctors found.")
		return
	}
	renderDoctors(doctors)
}

func (m *Menu) listTreatments() {
	showHeader("All Treatments")
	treatments, err := m.treatments.ListTreatments()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(treatments) == 0 {
		showWarning("No treatments found.")
		return
	}
	renderTreatments(treatments)
}

func (m *Menu) listAppointments() {
	showHeader("Appointments")
	appointments, err := m.appointments.ListAppointments()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(appointments) == 0 {
		showWarning("No appointments found.")
		return
	}
	renderAppointments(appointments)
	showInfof("Showing latest %d appointments", len(appointments))
}

// pickID shows a select of "<id>. <label>" options plus a back escape and
// returns the chosen id
func pickID(message string, options []string) (uint, bool) {
	var choice string
	prompt := &survey.Select{
		Message:  message,
		Options:  append(options, backChoice),
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice); err != nil || choice == backChoice {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.SplitN(choice, ".", 2)[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (m *Menu) createAppointment() {
	showHeader("Create Appointment")

	patients, err := m.patients.ListPatients()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(patients) == 0 {
		showError("No patients found. Please create a patient first.")
		return
	}
	if len(patients) > 20 {
		patients = patients[:20]
	}
	patientOpts := make([]string, 0, len(patients))
	for _, p := range patients {
		patientOpts = append(patientOpts, fmt.Sprintf("%d. %s", p.ID, p.FullName()))
	}
	patientID, ok := pickID("Select patient:", patientOpts)
	if !ok {
		return
	}

	doctors, err := m.doctors.ListDoctors()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(doctors) == 0 {
		showError("No doctors found.")
		return
	}
	doctorOpts := make([]string, 0, len(doctors))
	for _, d := range doctors {
		doctorOpts = append(doctorOpts, fmt.Sprintf("%d. Dr. %s", d.ID, d.FullName()))
	}
	doctorID, ok := pickID("Select doctor:", doctorOpts)
	if !ok {
		return
	}

	var dateInput string
	if err := survey.AskOne(&survey.Input{Message: "Appointment date and time (YYYY-MM-DD HH:MM):"}, &dateInput); err != nil {
		return
	}
	date, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(dateInput))
	if err != nil {
		showError("Invalid date format.")
		return
	}

	appointment, err := m.appointments.CreateAppointment(patientID, doctorID, date)
	if err != nil {
		showError(err.Error())
		return
	}
	showSuccess(fmt.Sprintf("Appointment created successfully! ID: %d", appointment.ID))
}

func (m *Menu) addTreatmentToAppointment() {
	showHeader("Add Treatment to Appointment")

	appointments, err := m.appointments.ListScheduled()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(appointments) == 0 {
		showWarning("No scheduled appointments found.")
		return
	}
	apptOpts := make([]string, 0, len(appointments))
	for _, a := range appointments {
		apptOpts = append(apptOpts, fmt.Sprintf("%d. %s - %s",
			a.ID, a.AppointmentDate.Format("2006-01-02 15:04"), a.Patient.FullName()))
	}
	appointmentID, ok := pickID("Select appointment:", apptOpts)
	if !ok {
		return
	}

	treatments, err := m.treatments.ListTreatments()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(treatments) == 0 {
		showWarning("No treatments found.")
		return
	}
	treatmentOpts := make([]string, 0, len(treatments))
	for _, t := range treatments {
		treatmentOpts = append(treatmentOpts, fmt.Sprintf("%d. %s - %.2f (%d min)",
			t.ID, t.Name, t.Price, t.DurationMinutes))
	}
	treatmentID, ok := pickID("Select treatment:", treatmentOpts)
	if !ok {
		return
	}

	if err := m.appointments.AddTreatment(appointmentID, treatmentID); err != nil {
		if apperror.Is(err, apperror.Conflict) {
			showWarning("This treatment is already added to the appointment.")
			return
		}
		showError(err.Error())
		return
	}
	showSuccess("Treatment added to appointment successfully!")
}

func (m *Menu) updateAppointmentStatus() {
	showHeader("Update Appointment Status")

	appointments, err := m.appointments.ListCandidates()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(appointments) == 0 {
		showWarning("No appointments found.")
		return
	}
	renderAppointments(appointments)

	apptOpts := make([]string, 0, len(appointments))
	for _, a := range appointments {
		apptOpts = append(apptOpts, fmt.Sprintf("%d. %s - %s [%s]",
			a.ID, a.AppointmentDate.Format("2006-01-02 15:04"), a.Patient.FullName(), a.Status))
	}
	appointmentID, ok := pickID("Select appointment:", apptOpts)
	if !ok {
		return
	}

	appointment, err := m.appointments.GetAppointment(appointmentID)
	if err != nil {
		showError(err.Error())
		return
	}
	showInfof("Patient: %s", appointment.Patient.FullName())
	showInfof("Doctor: Dr. %s", appointment.Doctor.FullName())
	showInfof("Date: %s", appointment.AppointmentDate.Format("2006-01-02 15:04"))
	showInfof("Current status: %s", statusLabel(appointment.Status))

	statusOpts := make([]string, 0, len(models.AllStatuses)+1)
	for _, s := range models.AllStatuses {
		statusOpts = append(statusOpts, string(s))
	}
	var newStatus string
	prompt := &survey.Select{Message: "Select new status:", Options: append(statusOpts, backChoice)}
	if err := survey.AskOne(prompt, &newStatus); err != nil || newStatus == backChoice {
		showInfo("Operation cancelled.")
		return
	}

	if err := m.appointments.UpdateStatus(appointmentID, models.AppointmentStatus(newStatus)); err != nil {
		showError(err.Error())
		return
	}
	showSuccess("Appointment status updated to: " + newStatus)
}

func (m *Menu) createPatient() {
	showHeader("Create Patient")

	qs := []*survey.Question{
		{Name: "firstName", Prompt: &survey.Input{Message: "First name:"}},
		{Name: "lastName", Prompt: &survey.Input{Message: "Last name:"}},
		{Name: "email", Prompt: &survey.Input{Message: "Email:"}},
		{Name: "phone", Prompt: &survey.Input{Message: "Phone (optional):"}},
	}
	answers := struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
	}{}
	if err := survey.Ask(qs, &answers); err != nil {
		return
	}

	// Re-prompt for the email while it is malformed or already taken
	for {
		patient, err := m.patients.CreatePatient(service.CreatePatientInput{
			FirstName: answers.FirstName,
			LastName:  answers.LastName,
			Email:     answers.Email,
			Phone:     answers.Phone,
		})
		if err == nil {
			showSuccess(fmt.Sprintf("Patient created successfully! ID: %d", patient.ID))
			return
		}
		if apperror.Is(err, apperror.Validation) {
			showError("Invalid email format.")
		} else if apperror.Is(err, apperror.Conflict) {
			showError("Email already exists.")
		} else {
			showError(err.Error())
			return
		}
		if askErr := survey.AskOne(&survey.Input{Message: "Email:"}, &answers.Email); askErr != nil {
			return
		}
	}
}

func (m *Menu) deleteAppointment() {
	showHeader("Delete Appointment")

	appointments, err := m.appointments.ListCandidates()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(appointments) == 0 {
		showWarning("No appointments found.")
		return
	}
	apptOpts := make([]string, 0, len(appointments))
	for _, a := range appointments {
		apptOpts = append(apptOpts, fmt.Sprintf("%d. %s - %s",
			a.ID, a.AppointmentDate.Format("2006-01-02 15:04"), a.Patient.FullName()))
	}
	appointmentID, ok := pickID("Select an appointment to delete:", apptOpts)
	if !ok {
		return
	}

	var confirmed bool
	confirm := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to delete appointment ID %d?", appointmentID),
	}
	if err := survey.AskOne(confirm, &confirmed); err != nil || !confirmed {
		showInfo("Deletion cancelled.")
		return
	}

	if err := m.appointments.DeleteAppointment(appointmentID); err != nil {
		showError(err.Error())
		return
	}
	showSuccess("Appointment deleted successfully.")
}

func (m *Menu) reportsMenu() {
	for {
		showHeader("Reports")

		var choice string
		prompt := &survey.Select{
			Message: "Select a report:",
			Options: []string{
				"Top Patients by Visits",
				"Doctor Workload",
				"At-Risk Patients (NoShow Analysis)",
				"Latest Activity",
				"Popular Treatments",
				"Clinic Summary",
				backChoice,
			},
		}
		if err := survey.AskOne(prompt, &choice); err != nil || choice == backChoice {
			return
		}

		switch choice {
		case "Top Patients by Visits":
			m.showTopPatients()
		case "Doctor Workload":
			m.showDoctorWorkload()
		case "At-Risk Patients (NoShow Analysis)":
			m.showAtRiskPatients()
		case "Latest Activity":
			m.showLatestActivity()
		case "Popular Treatments":
			m.showPopularTreatments()
		case "Clinic Summary":
			m.showClinicSummary()
		}
	}
}

func (m *Menu) showTopPatients() {
	showHeader("Top Patients by Visits")
	rows, err := m.reporter.TopPatients()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showWarning("No patient data available.")
		return
	}
	renderTopPatients(rows)
}

func (m *Menu) showDoctorWorkload() {
	showHeader("Doctor Workload")
	rows, err := m.reporter.DoctorWorkloads(time.Now().UTC())
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showWarning("No doctor data available.")
		return
	}
	renderDoctorWorkloads(rows)
}

func (m *Menu) showAtRiskPatients() {
	showHeader("At-Risk Patients")
	rows, err := m.reporter.AtRiskPatients()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showSuccess("No at-risk patients found. Great!")
		return
	}
	renderAtRiskPatients(rows)
}

func (m *Menu) showLatestActivity() {
	showHeader("Latest Activity")
	rows, err := m.reporter.LatestActivity()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showWarning("No activity found.")
		return
	}
	renderLatestActivity(rows)
}

func (m *Menu) showPopularTreatments() {
	showHeader("Popular Treatments")
	rows, err := m.reporter.PopularTreatments()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showWarning("No treatment data available.")
		return
	}
	renderPopularTreatments(rows)
}

func (m *Menu) showClinicSummary() {
	showHeader("Clinic Summary")
	rows, err := m.reporter.ClinicSummaries()
	if err != nil {
		showError(err.Error())
		return
	}
	if len(rows) == 0 {
		showWarning("No clinic data available.")
		return
	}
	renderClinicSummaries(rows)
}
