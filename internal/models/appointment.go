package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`

	DoctorID uint   `gorm:"not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnDelete:CASCADE" json:"doctor,omitempty"`

	Date time.Time `gorm:"type:date;not null" json:"date"`

	// Time of day in 24-hour HH:MM form, validated on write.
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:50;not null" json:"status"`

	Prescriptions []Prescription `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"prescriptions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
