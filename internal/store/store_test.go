package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Prescription{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:        "Jane Roe",
		Email:       email,
		Age:         30,
		Gender:      "female",
		PhoneNumber: "0712345678",
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, NewUserStore(db).Create(context.Background(), user))
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, email string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{
		Name:            "Dr. Smith",
		Email:           email,
		Specialty:       "Cardiology",
		ExperienceYears: 12,
		Availability:    "Weekdays",
	}
	require.NoError(t, doctor.SetPassword("secret123"))
	require.NoError(t, NewDoctorStore(db).Create(context.Background(), doctor))
	return doctor
}

func seedAppointment(t *testing.T, db *gorm.DB, userID, doctorID uint) *models.Appointment {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2023-07-09")
	require.NoError(t, err)

	ap := &models.Appointment{
		UserID:   userID,
		DoctorID: doctorID,
		Date:     date,
		Time:     "10:00",
		Status:   "Scheduled",
	}
	require.NoError(t, NewAppointmentStore(db).Create(context.Background(), ap))
	return ap
}

func seedPrescription(t *testing.T, db *gorm.DB, appointmentID uint) *models.Prescription {
	t.Helper()
	p := &models.Prescription{
		AppointmentID: appointmentID,
		Medicine:      "Amoxicillin",
		Dosage:        "500mg",
		Instructions:  "Twice a day after meals",
	}
	require.NoError(t, NewPrescriptionStore(db).Create(context.Background(), p))
	return p
}
