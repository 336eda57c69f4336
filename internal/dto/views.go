// Package dto holds the JSON views returned by the API. Each view nests
// related records exactly one level deep and nested records carry scalar
// fields only, so the cyclic entity graph always serializes as a tree.
package dto

import (
	"time"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
)

const (
	dateLayout = "2006-01-02"
)

// --------- Scalar refs (nested one level down) ---------

type UserRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
}

type DoctorRef struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Specialty       string `json:"specialty"`
	ExperienceYears int    `json:"experience_years"`
	Availability    string `json:"availability"`
}

type AppointmentRef struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	DoctorID uint   `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

type PrescriptionRef struct {
	ID            uint   `json:"id"`
	AppointmentID uint   `json:"appointment_id"`
	Medicine      string `json:"medicine"`
	Dosage        string `json:"dosage"`
	Instructions  string `json:"instructions"`
}

// --------- Top-level views ---------

type UserView struct {
	UserRef
	Appointments []AppointmentRef `json:"appointments"`
}

type DoctorView struct {
	DoctorRef
	Appointments []AppointmentRef `json:"appointments"`
}

type AppointmentView struct {
	AppointmentRef
	User          UserRef           `json:"user"`
	Doctor        DoctorRef         `json:"doctor"`
	Prescriptions []PrescriptionRef `json:"prescriptions"`
}

type PrescriptionView struct {
	PrescriptionRef
	Appointment AppointmentRef `json:"appointment"`
}

// --------- Builders ---------

func NewUserRef(u *models.User) UserRef {
	return UserRef{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Age:         u.Age,
		Gender:      u.Gender,
		PhoneNumber: u.PhoneNumber,
	}
}

func NewDoctorRef(d *models.Doctor) DoctorRef {
	return DoctorRef{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Specialty:       d.Specialty,
		ExperienceYears: d.ExperienceYears,
		Availability:    d.Availability,
	}
}

func NewAppointmentRef(ap *models.Appointment) AppointmentRef {
	return AppointmentRef{
		ID:       ap.ID,
		UserID:   ap.UserID,
		DoctorID: ap.DoctorID,
		Date:     FormatDate(ap.Date),
		Time:     ap.Time,
		Status:   ap.Status,
	}
}

func NewPrescriptionRef(p *models.Prescription) PrescriptionRef {
	return PrescriptionRef{
		ID:            p.ID,
		AppointmentID: p.AppointmentID,
		Medicine:      p.Medicine,
		Dosage:        p.Dosage,
		Instructions:  p.Instructions,
	}
}

func NewUserView(u *models.User) UserView {
	v := UserView{
		UserRef:      NewUserRef(u),
		Appointments: make([]AppointmentRef, 0, len(u.Appointments)),
	}
	for i := range u.Appointments {
		v.Appointments = append(v.Appointments, NewAppointmentRef(&u.Appointments[i]))
	}
	return v
}

func NewDoctorView(d *models.Doctor) DoctorView {
	v := DoctorView{
		DoctorRef:    NewDoctorRef(d),
		Appointments: make([]AppointmentRef, 0, len(d.Appointments)),
	}
	for i := range d.Appointments {
		v.Appointments = append(v.Appointments, NewAppointmentRef(&d.Appointments[i]))
	}
	return v
}

func NewAppointmentView(ap *models.Appointment) AppointmentView {
	v := AppointmentView{
		AppointmentRef: NewAppointmentRef(ap),
		User:           NewUserRef(&ap.User),
		Doctor:         NewDoctorRef(&ap.Doctor),
		Prescriptions:  make([]PrescriptionRef, 0, len(ap.Prescriptions)),
	}
	for i := range ap.Prescriptions {
		v.Prescriptions = append(v.Prescriptions, NewPrescriptionRef(&ap.Prescriptions[i]))
	}
	return v
}

func NewPrescriptionView(p *models.Prescription) PrescriptionView {
	v := PrescriptionView{
		PrescriptionRef: NewPrescriptionRef(p),
	}
	if p.Appointment != nil {
		v.Appointment = NewAppointmentRef(p.Appointment)
	}
	return v
}

func NewUserViews(users []models.User) []UserView {
	out := make([]UserView, 0, len(users))
	for i := range users {
		out = append(out, NewUserView(&users[i]))
	}
	return out
}

func NewDoctorViews(doctors []models.Doctor) []DoctorView {
	out := make([]DoctorView, 0, len(doctors))
	for i := range doctors {
		out = append(out, NewDoctorView(&doctors[i]))
	}
	return out
}

func NewAppointmentViews(aps []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentView(&aps[i]))
	}
	return out
}

func NewPrescriptionViews(ps []models.Prescription) []PrescriptionView {
	out := make([]PrescriptionView, 0, len(ps))
	for i := range ps {
		out = append(out, NewPrescriptionView(&ps[i]))
	}
	return out
}

// FormatDate renders a calendar date in the YYYY-MM-DD wire form.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
