package main

import (
	"flag"

	"clinicflow/internal/config"
	"clinicflow/internal/database"
	"clinicflow/internal/logger"
	"clinicflow/internal/report"
	"clinicflow/internal/repository"
	"clinicflow/internal/service"
	"clinicflow/internal/ui"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo dataset before starting")
	flag.Parse()

	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logging
	if err := logger.Init(cfg.App.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	if *seed || cfg.App.Seed {
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// 4. Initialize repositories
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	treatmentRepo := repository.NewTreatmentRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	// 5. Initialize services
	doctorService := service.NewDoctorService(doctorRepo)
	patientService := service.NewPatientService(patientRepo)
	treatmentService := service.NewTreatmentService(treatmentRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	reporter := report.NewReporter(db)

	// 6. Run the menu loop
	menu := ui.NewMenu(patientService, doctorService, treatmentService, appointmentService, reporter)
	menu.Run()
}
