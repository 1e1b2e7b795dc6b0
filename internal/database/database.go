package database

import (
	"fmt"
	"time"

	"clinicflow/internal/config"
	applog "clinicflow/internal/logger"
	"clinicflow/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		applog.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		applog.Log.Fatal("Failed to get database instance", zap.Error(err))
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		applog.Log.Fatal("Failed to ping database", zap.Error(err))
	}

	applog.Log.Info("Successfully connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database))

	return db
}

// Migrate creates or updates the schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Clinic{},
		&models.Doctor{},
		&models.Patient{},
		&models.Treatment{},
		&models.Appointment{},
		&models.AppointmentTreatment{},
	)
}
