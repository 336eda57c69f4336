package models

import (
	"time"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/auth"
)

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Specialty    string `gorm:"size:100;not null" json:"specialty"`

	ExperienceYears int    `gorm:"not null" json:"experience_years"`
	Availability    string `gorm:"size:100;not null" json:"availability"`

	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) SetPassword(plain string) error {
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return err
	}
	d.PasswordHash = hash
	return nil
}

func (d *Doctor) VerifyPassword(plain string) bool {
	return auth.CheckPasswordHash(plain, d.PasswordHash)
}
