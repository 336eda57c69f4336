package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

type DoctorStore struct {
	db *gorm.DB
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{db: db}
}

func (s *DoctorStore) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := s.ensureUniqueEmail(ctx, doctor.Email, 0); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(doctor).Error)
}

func (s *DoctorStore) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		First(&doctor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (s *DoctorStore) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		Where("email = ?", email).
		First(&doctor).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

func (s *DoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		Order("id ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorStore) Update(ctx context.Context, doctor *models.Doctor) error {
	if err := s.ensureUniqueEmail(ctx, doctor.Email, doctor.ID); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(doctor).Error)
}

// Delete cascades to the doctor's appointments and their prescriptions in
// one transaction.
func (s *DoctorStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, id).Error; err != nil {
			return translate(err)
		}

		var appointmentIDs []uint
		if err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ?", id).
			Pluck("id", &appointmentIDs).Error; err != nil {
			return err
		}

		if len(appointmentIDs) > 0 {
			if err := tx.Where("appointment_id IN ?", appointmentIDs).
				Delete(&models.Prescription{}).Error; err != nil {
				return err
			}
			if err := tx.Where("doctor_id = ?", id).
				Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&doctor).Error
	})
}

func (s *DoctorStore) ensureUniqueEmail(ctx context.Context, email string, selfID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Doctor{}).Where("email = ?", email)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return Invalid("email", "email is already in use")
	}
	return nil
}
