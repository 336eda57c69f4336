package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

func TestAppointmentStore_CreateRejectsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doctor := seedDoctor(t, db, "smith@example.com")

	ap := &models.Appointment{
		UserID:   9999,
		DoctorID: doctor.ID,
		Date:     time.Now(),
		Time:     "10:00",
		Status:   "Scheduled",
	}
	err := NewAppointmentStore(db).Create(ctx, ap)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "user_id", ve.Field)
}

func TestAppointmentStore_CreateRejectsUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "jane@example.com")

	ap := &models.Appointment{
		UserID:   user.ID,
		DoctorID: 9999,
		Date:     time.Now(),
		Time:     "10:00",
		Status:   "Scheduled",
	}
	err := NewAppointmentStore(db).Create(ctx, ap)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "doctor_id", ve.Field)
}

func TestAppointmentStore_GetByIDLoadsRelations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "jane@example.com")
	doctor := seedDoctor(t, db, "smith@example.com")
	ap := seedAppointment(t, db, user.ID, doctor.ID)
	seedPrescription(t, db, ap.ID)

	got, err := NewAppointmentStore(db).GetByID(ctx, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, user.Email, got.User.Email)
	assert.Equal(t, doctor.Email, got.Doctor.Email)
	assert.Len(t, got.Prescriptions, 1)
	assert.Equal(t, "2023-07-09", got.Date.Format("2006-01-02"))
	assert.Equal(t, "10:00", got.Time)
}

func TestAppointmentStore_ListByPrincipal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	jane := seedUser(t, db, "jane@example.com")
	mary := seedUser(t, db, "mary@example.com")
	doctor := seedDoctor(t, db, "smith@example.com")

	seedAppointment(t, db, jane.ID, doctor.ID)
	seedAppointment(t, db, jane.ID, doctor.ID)
	seedAppointment(t, db, mary.ID, doctor.ID)

	aps := NewAppointmentStore(db)

	forJane, err := aps.ListByUser(ctx, jane.ID)
	require.NoError(t, err)
	assert.Len(t, forJane, 2)

	forDoctor, err := aps.ListByDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Len(t, forDoctor, 3)
}

func TestAppointmentStore_DeleteCascadesPrescriptions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "jane@example.com")
	doctor := seedDoctor(t, db, "smith@example.com")
	ap := seedAppointment(t, db, user.ID, doctor.ID)
	p := seedPrescription(t, db, ap.ID)

	require.NoError(t, NewAppointmentStore(db).Delete(ctx, ap.ID))

	_, err := NewPrescriptionStore(db).GetByID(ctx, p.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPrescriptionStore_CreateRejectsUnknownAppointment(t *testing.T) {
	db := newTestDB(t)

	p := &models.Prescription{
		AppointmentID: 9999,
		Medicine:      "Amoxicillin",
		Dosage:        "500mg",
		Instructions:  "Twice a day",
	}
	err := NewPrescriptionStore(db).Create(context.Background(), p)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "appointment_id", ve.Field)
}
