package models

import "time"

type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint         `gorm:"not null" json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnDelete:CASCADE" json:"appointment,omitempty"`

	Medicine     string `gorm:"size:100;not null" json:"medicine"`
	Dosage       string `gorm:"size:100;not null" json:"dosage"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
