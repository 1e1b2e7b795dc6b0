package handler

import (
	"net/http"
	"strconv"
	"time"

	"clinicflow/internal/models"
	"clinicflow/internal/service"
	"clinicflow/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
	treatmentService   *service.TreatmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, treatmentService *service.TreatmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		treatmentService:   treatmentService,
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// GetAppointments retrieves the latest appointments (capped at 30)
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.ListAppointments()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// CreateAppointment books a new appointment in Scheduled status
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req struct {
		PatientID       uint      `json:"patient_id" binding:"required"`
		DoctorID        uint      `json:"doctor_id" binding:"required"`
		AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(req.PatientID, req.DoctorID, req.AppointmentDate)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     "Appointment created successfully",
		"appointment": appointment,
	})
}

// AddTreatment links a treatment to an appointment. By convention callers
// link treatments to Scheduled appointments only; the operation itself
// accepts any existing appointment.
func (h *AppointmentHandler) AddTreatment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		TreatmentID uint `json:"treatment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.AddTreatment(id, req.TreatmentID); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Treatment added to appointment successfully")
}

// UpdateStatus overwrites the status of an appointment
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=Scheduled Completed Cancelled NoShow"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.UpdateStatus(id, models.AppointmentStatus(req.Status)); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Appointment status updated to "+req.Status)
}

// DeleteAppointment removes an appointment and its treatment links
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Appointment deleted successfully")
}

// GetTreatments retrieves the treatment catalog
func (h *AppointmentHandler) GetTreatments(c *gin.Context) {
	treatments, err := h.treatmentService.ListTreatments()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// CreateTreatment adds a treatment to the catalog
func (h *AppointmentHandler) CreateTreatment(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required,max=100"`
		DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
		Price           float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	treatment, err := h.treatmentService.CreateTreatment(service.CreateTreatmentInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Treatment created successfully",
		"treatment": treatment,
	})
}

// DeleteTreatment removes a treatment that has no appointment links
func (h *AppointmentHandler) DeleteTreatment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.treatmentService.DeleteTreatment(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.MessageResponse(c, "Treatment deleted successfully")
}
