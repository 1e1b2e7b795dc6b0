package database

import (
	"testing"
	"time"

	"clinicflow/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPopulatesDemoData(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	counts := map[string]interface{}{
		"clinics":      &models.Clinic{},
		"doctors":      &models.Doctor{},
		"patients":     &models.Patient{},
		"treatments":   &models.Treatment{},
		"appointments": &models.Appointment{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.NotZero(t, count, name)
	}

	// Every seeded link points at an existing appointment and treatment
	var dangling int64
	require.NoError(t, db.Table("appointment_treatments").
		Joins("LEFT JOIN appointments ON appointments.id = appointment_treatments.appointment_id").
		Where("appointments.id IS NULL").
		Count(&dangling).Error)
	assert.EqualValues(t, 0, dangling)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	var before int64
	require.NoError(t, db.Model(&models.Patient{}).Count(&before).Error)

	require.NoError(t, Seed(db))

	var after int64
	require.NoError(t, db.Model(&models.Patient{}).Count(&after).Error)
	assert.Equal(t, before, after)
}
