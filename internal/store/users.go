package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.ensureUniqueEmail(ctx, user.Email, 0); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error)
}

func (s *UserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Preload("Appointments").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update is a full replace of the mutable fields, not a partial patch.
func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	if err := s.ensureUniqueEmail(ctx, user.Email, user.ID); err != nil {
		return err
	}
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error)
}

// Delete removes the user and, in the same transaction, every appointment
// that references it and every prescription attached to those appointments.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}

		var appointmentIDs []uint
		if err := tx.Model(&models.Appointment{}).
			Where("user_id = ?", id).
			Pluck("id", &appointmentIDs).Error; err != nil {
			return err
		}

		if len(appointmentIDs) > 0 {
			if err := tx.Where("appointment_id IN ?", appointmentIDs).
				Delete(&models.Prescription{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).
				Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}

func (s *UserStore) ensureUniqueEmail(ctx context.Context, email string, selfID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
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
