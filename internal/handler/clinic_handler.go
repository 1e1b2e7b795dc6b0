package handler

import (
	"net/http"

	"clinicflow/internal/service"
	"clinicflow/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClinicHandler struct {
	clinicService *service.ClinicService
	doctorService *service.DoctorService
}

func NewClinicHandler(clinicService *service.ClinicService, doctorService *service.DoctorService) *ClinicHandler {
	return &ClinicHandler{
		clinicService: clinicService,
		doctorService: doctorService,
	}
}

// GetClinics retrieves all clinics
func (h *ClinicHandler) GetClinics(c *gin.Context) {
	clinics, err := h.clinicService.ListClinics()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// CreateClinic registers a new clinic
func (h *ClinicHandler) CreateClinic(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,max=100"`
		Address string `json:"address" binding:"omitempty,max=200"`
		City    string `json:"city" binding:"omitempty,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	clinic, err := h.clinicService.CreateClinic(service.CreateClinicInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Clinic created successfully",
		"clinic":  clinic,
	})
}

// GetDoctors retrieves all doctors with their clinic
func (h *ClinicHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateDoctor registers a new doctor under an existing clinic
func (h *ClinicHandler) CreateDoctor(c *gin.Context) {
	var req struct {
		FirstName      string `json:"first_name" binding:"required,max=50"`
		LastName       string `json:"last_name" binding:"required,max=50"`
		Specialization string `json:"specialization" binding:"omitempty,max=100"`
		ClinicID       uint   `json:"clinic_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.doctorService.CreateDoctor(service.CreateDoctorInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		ClinicID:       req.ClinicID,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}
