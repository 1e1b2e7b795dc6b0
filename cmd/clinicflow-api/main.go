package main

import (
	"clinicflow/internal/config"
	"clinicflow/internal/database"
	"clinicflow/internal/handler"
	"clinicflow/internal/logger"
	"clinicflow/internal/report"
	"clinicflow/internal/repository"
	"clinicflow/internal/service"
	"clinicflow/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logging
	if err := logger.Init(cfg.App.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger.Log.Info("Configuration loaded", zap.String("env", cfg.App.Env))

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	if cfg.App.Seed {
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// 4. Initialize repositories
	clinicRepo := repository.NewClinicRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	// 5. Initialize services
	clinicService := service.NewClinicService(clinicRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	patientService := service.NewPatientService(patientRepo)
	treatmentService := service.NewTreatmentService(treatmentRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	reporter := report.NewReporter(db)

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	// 7. Register handlers
	clinicHandler := handler.NewClinicHandler(clinicService, doctorService)
	patientHandler := handler.NewPatientHandler(patientService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, treatmentService)
	reportHandler := handler.NewReportHandler(reporter)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "clinicflow",
		})
	})

	// Entity routes
	r.GET("/clinics", clinicHandler.GetClinics)
	r.POST("/clinics", clinicHandler.CreateClinic)
	r.GET("/doctors", clinicHandler.GetDoctors)
	r.POST("/doctors", clinicHandler.CreateDoctor)
	r.GET("/patients", patientHandler.GetPatients)
	r.POST("/patients", patientHandler.CreatePatient)
	r.GET("/treatments", appointmentHandler.GetTreatments)
	r.POST("/treatments", appointmentHandler.CreateTreatment)
	r.DELETE("/treatments/:id", appointmentHandler.DeleteTreatment)
	r.GET("/appointments", appointmentHandler.GetAppointments)
	r.POST("/appointments", appointmentHandler.CreateAppointment)
	r.POST("/appointments/:id/treatments", appointmentHandler.AddTreatment)
	r.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	r.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

	// Report routes
	reports := r.Group("/reports")
	{
		reports.GET("/top-patients", reportHandler.TopPatients)
		reports.GET("/doctor-workload", reportHandler.DoctorWorkload)
		reports.GET("/at-risk-patients", reportHandler.AtRiskPatients)
		reports.GET("/latest-activity", reportHandler.LatestActivity)
		reports.GET("/popular-treatments", reportHandler.PopularTreatments)
		reports.GET("/clinic-summary", reportHandler.ClinicSummary)
	}

	logger.Log.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
