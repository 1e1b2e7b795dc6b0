package handler

import (
	"net/http"

	"clinicflow/internal/service"
	"clinicflow/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// GetPatients retrieves all patients ordered by name
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// CreatePatient registers a new patient
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required,max=50"`
		LastName  string `json:"last_name" binding:"required,max=50"`
		Email     string `json:"email" binding:"required,contains=@,max=100"`
		Phone     string `json:"phone" binding:"omitempty,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.CreatePatient(service.CreatePatientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Patient created successfully",
		"patient": patient,
	})
}
