package models

import (
	"time"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/auth"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Age          int    `gorm:"not null" json:"age"`
	Gender       string `gorm:"size:20;not null" json:"gender"`
	PhoneNumber  string `gorm:"size:20;not null" json:"phone_number"`

	Appointments []Appointment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetPassword replaces the stored hash. The plaintext is never persisted and
// there is no accessor for it.
func (u *User) SetPassword(plain string) error {
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) VerifyPassword(plain string) bool {
	return auth.CheckPasswordHash(plain, u.PasswordHash)
}
