package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

type PrescriptionStore struct {
	db *gorm.DB
}

func NewPrescriptionStore(db *gorm.DB) *PrescriptionStore {
	return &PrescriptionStore{db: db}
}

func (s *PrescriptionStore) Create(ctx context.Context, p *models.Prescription) error {
	if err := s.checkReference(ctx, p.AppointmentID); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

func (s *PrescriptionStore) GetByID(ctx context.Context, id uint) (*models.Prescription, error) {
	var p models.Prescription
	if err := s.db.WithContext(ctx).
		Preload("Appointment").
		First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *PrescriptionStore) List(ctx context.Context) ([]models.Prescription, error) {
	var ps []models.Prescription
	if err := s.db.WithContext(ctx).
		Preload("Appointment").
		Order("id ASC").
		Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PrescriptionStore) Update(ctx context.Context, p *models.Prescription) error {
	if err := s.checkReference(ctx, p.AppointmentID); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error)
}

func (s *PrescriptionStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Prescription
		if err := tx.First(&p, id).Error; err != nil {
			return translate(err)
		}
		return tx.Delete(&p).Error
	})
}

func (s *PrescriptionStore) checkReference(ctx context.Context, appointmentID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return Invalid("appointment_id", "referenced appointment does not exist")
	}
	return nil
}
