package ui

import (
	"fmt"
	"os"
	"strconv"

	"clinicflow/internal/models"
	"clinicflow/internal/report"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func showHeader(title string)       { headerColor.Printf("\n== %s ==\n\n", title) }
func showSuccess(msg string)        { successColor.Println("✔ " + msg) }
func showWarning(msg string)        { warnColor.Println("! " + msg) }
func showError(msg string)          { errorColor.Println("✘ " + msg) }
func showInfo(msg string)           { infoColor.Println(msg) }
func showInfof(f string, a ...any)  { infoColor.Printf(f+"\n", a...) }

// statusLabel renders an appointment status with its conventional colour
func statusLabel(s models.AppointmentStatus) string {
	switch s {
	case models.StatusCompleted:
		return color.GreenString(string(s))
	case models.StatusScheduled:
		return color.YellowString(string(s))
	case models.StatusNoShow:
		return color.RedString(string(s))
	case models.StatusCancelled:
		return color.HiBlackString(string(s))
	}
	return string(s)
}

func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	return table
}

func renderPatients(patients []models.Patient) {
	table := newTable("ID", "First Name", "Last Name", "Email", "Phone")
	for _, p := range patients {
		phone := "N/A"
		if p.Phone != nil {
			phone = *p.Phone
		}
		table.Append([]string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.FirstName, p.LastName, p.Email, phone,
		})
	}
	table.Render()
	showInfof("Total: %d patients", len(patients))
}

func renderDoctors(doctors []models.Doctor) {
	table := newTable("ID", "Name", "Specialization", "Clinic", "City")
	for _, d := range doctors {
		table.Append([]string{
			strconv.FormatUint(uint64(d.ID), 10),
			"Dr. " + d.FullName(),
			d.Specialization,
			d.Clinic.Name,
			d.Clinic.City,
		})
	}
	table.Render()
	showInfof("Total: %d doctors", len(doctors))
}

func renderTreatments(treatments []models.Treatment) {
	table := newTable("ID", "Treatment Name", "Duration (min)", "Price")
	for _, t := range treatments {
		table.Append([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Name,
			strconv.Itoa(t.DurationMinutes),
			fmt.Sprintf("%.2f", t.Price),
		})
	}
	table.Render()
	showInfof("Total: %d treatments", len(treatments))
}

func renderAppointments(appointments []models.Appointment) {
	table := newTable("ID", "Date", "Patient", "Doctor", "Status")
	for _, a := range appointments {
		table.Append([]string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.AppointmentDate.Format("2006-01-02 15:04"),
			a.Patient.FullName(),
			"Dr. " + a.Doctor.FullName(),
			statusLabel(a.Status),
		})
	}
	table.Render()
}

func renderTopPatients(rows []report.PatientVisits) {
	table := newTable("Rank", "ID", "Patient Name", "Total", "Completed", "NoShow", "Cancelled")
	for i, p := range rows {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.FormatUint(uint64(p.PatientID), 10),
			p.FirstName + " " + p.LastName,
			strconv.Itoa(p.TotalVisits),
			strconv.Itoa(p.Completed),
			strconv.Itoa(p.NoShows),
			strconv.Itoa(p.Cancelled),
		})
	}
	table.Render()
	showInfof("Showing top %d patients", len(rows))
}

func renderDoctorWorkloads(rows []report.DoctorWorkload) {
	table := newTable("ID", "Doctor Name", "Specialization", "Total", "Done", "NoShow", "Upcoming")
	for _, d := range rows {
		table.Append([]string{
			strconv.FormatUint(uint64(d.DoctorID), 10),
			"Dr. " + d.FirstName + " " + d.LastName,
			d.Specialization,
			strconv.Itoa(d.TotalAppointments),
			strconv.Itoa(d.Completed),
			strconv.Itoa(d.NoShows),
			strconv.Itoa(d.Upcoming),
		})
	}
	table.Render()
	showInfof("Total: %d doctors", len(rows))
}

func renderAtRiskPatients(rows []report.AtRiskPatient) {
	table := newTable("Risk", "ID", "Patient Name", "Email", "Total", "NoShows", "Rate %")
	for _, p := range rows {
		risk := warnColor.Sprint(string(p.Risk))
		if p.Risk == report.RiskHigh {
			risk = errorColor.Sprint(string(p.Risk))
		}
		table.Append([]string{
			risk,
			strconv.FormatUint(uint64(p.PatientID), 10),
			p.FirstName + " " + p.LastName,
			p.Email,
			strconv.Itoa(p.TotalVisits),
			strconv.Itoa(p.NoShows),
			fmt.Sprintf("%.1f%%", p.NoShowRate),
		})
	}
	table.Render()
	errorColor.Printf("%d at-risk patients identified\n", len(rows))
	showInfo("High risk: 3+ no-shows   Medium risk: 2 no-shows")
}

func renderLatestActivity(rows []report.ActivityEntry) {
	table := newTable("Date", "Patient", "Doctor", "Clinic", "Status")
	for _, a := range rows {
		table.Append([]string{
			a.AppointmentDate.Format("2006-01-02 15:04"),
			a.PatientName,
			"Dr. " + a.DoctorName,
			a.ClinicName,
			statusLabel(a.Status),
		})
	}
	table.Render()
	showInfof("Showing latest %d appointments", len(rows))
}

func renderPopularTreatments(rows []report.TreatmentPopularity) {
	table := newTable("ID", "Treatment Name", "Duration", "Price", "Booked", "Revenue")
	var totalRevenue float64
	for _, t := range rows {
		totalRevenue += t.TotalRevenue
		table.Append([]string{
			strconv.FormatUint(uint64(t.TreatmentID), 10),
			t.Name,
			fmt.Sprintf("%d min", t.DurationMinutes),
			fmt.Sprintf("%.2f", t.Price),
			strconv.Itoa(t.TimesBooked),
			fmt.Sprintf("%.2f", t.TotalRevenue),
		})
	}
	table.Render()
	showInfof("Total treatments: %d", len(rows))
	successColor.Printf("Total revenue: %.2f\n", totalRevenue)
}

func renderClinicSummaries(rows []report.ClinicSummary) {
	table := newTable("ID", "Clinic Name", "City", "Doctors", "Total", "Completed")
	var doctors, appointments int
	for _, c := range rows {
		doctors += c.DoctorCount
		appointments += c.TotalAppointments
		table.Append([]string{
			strconv.FormatUint(uint64(c.ClinicID), 10),
			c.Name,
			c.City,
			strconv.Itoa(c.DoctorCount),
			strconv.Itoa(c.TotalAppointments),
			strconv.Itoa(c.CompletedAppointments),
		})
	}
	table.Render()
	showInfof("Total clinics: %d, doctors: %d, appointments: %d", len(rows), doctors, appointments)
}
