package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

func (s *AppointmentStore) Create(ctx context.Context, ap *models.Appointment) error {
	if err := s.checkReferences(ctx, ap); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error)
}

func (s *AppointmentStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Doctor").
		Preload("Prescriptions").
		First(&ap, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (s *AppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	return s.list(ctx, s.db.WithContext(ctx))
}

func (s *AppointmentStore) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return s.list(ctx, s.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (s *AppointmentStore) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	return s.list(ctx, s.db.WithContext(ctx).Where("doctor_id = ?", doctorID))
}

func (s *AppointmentStore) list(ctx context.Context, q *gorm.DB) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := q.
		Preload("User").
		Preload("Doctor").
		Preload("Prescriptions").
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (s *AppointmentStore) Update(ctx context.Context, ap *models.Appointment) error {
	if err := s.checkReferences(ctx, ap); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error)
}

// Delete removes the appointment together with its prescriptions.
func (s *AppointmentStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.First(&ap, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("appointment_id = ?", id).
			Delete(&models.Prescription{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ap).Error
	})
}

// checkReferences rejects writes whose user_id or doctor_id does not point at
// an existing row, so no orphaned appointment can be created.
func (s *AppointmentStore) checkReferences(ctx context.Context, ap *models.Appointment) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", ap.UserID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return Invalid("user_id", "referenced user does not exist")
	}

	if err := s.db.WithContext(ctx).Model(&models.Doctor{}).
		Where("id = ?", ap.DoctorID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return Invalid("doctor_id", "referenced doctor does not exist")
	}
	return nil
}
