package handler

import (
	"time"

	"clinicflow/internal/report"
	"clinicflow/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reporter *report.Reporter
}

func NewReportHandler(reporter *report.Reporter) *ReportHandler {
	return &ReportHandler{reporter: reporter}
}

// TopPatients returns the top 10 patients by visit count
func (h *ReportHandler) TopPatients(c *gin.Context) {
	rows, err := h.reporter.TopPatients()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"patients": rows, "count": len(rows)})
}

// DoctorWorkload returns appointment counts per doctor
func (h *ReportHandler) DoctorWorkload(c *gin.Context) {
	rows, err := h.reporter.DoctorWorkloads(time.Now().UTC())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"doctors": rows, "count": len(rows)})
}

// AtRiskPatients returns patients with two or more no-shows
func (h *ReportHandler) AtRiskPatients(c *gin.Context) {
	rows, err := h.reporter.AtRiskPatients()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"patients": rows, "count": len(rows)})
}

// LatestActivity returns the 20 most recently created appointments
func (h *ReportHandler) LatestActivity(c *gin.Context) {
	rows, err := h.reporter.LatestActivity()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"activity": rows, "count": len(rows)})
}

// PopularTreatments returns booking counts and revenue per treatment
func (h *ReportHandler) PopularTreatments(c *gin.Context) {
	rows, err := h.reporter.PopularTreatments()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"treatments": rows, "count": len(rows)})
}

// ClinicSummary returns doctor and appointment counts per clinic
func (h *ReportHandler) ClinicSummary(c *gin.Context) {
	rows, err := h.reporter.ClinicSummaries()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"clinics": rows, "count": len(rows)})
}
