package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/handlers"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/session"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Manager) {

	// ======================================================
	// STORES
	// ======================================================
	users := store.NewUserStore(db)
	doctors := store.NewDoctorStore(db)
	appointments := store.NewAppointmentStore(db)
	prescriptions := store.NewPrescriptionStore(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(users, doctors, sessions)
	userHandler := handlers.NewUserHandler(users)
	doctorHandler := handlers.NewDoctorHandler(doctors)
	appointmentHandler := handlers.NewAppointmentHandler(appointments)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptions)

	// ======================================================
	// AUTH & SESSION
	// ======================================================
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/doctor_login", authHandler.DoctorLogin)
	r.DELETE("/logout", authHandler.Logout)
	r.GET("/check_session", authHandler.CheckSession)
	r.DELETE("/clear", authHandler.ClearSession)

	// ======================================================
	// USERS
	// ======================================================
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Get)
	r.PUT("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)
	r.GET("/users/:id/appointments", appointmentHandler.ListByUser)

	// ======================================================
	// DOCTORS
	// ======================================================
	r.GET("/doctors", doctorHandler.List)
	r.POST("/doctors", doctorHandler.Create)
	r.GET("/doctors/:id", doctorHandler.Get)
	r.PUT("/doctors/:id", doctorHandler.Update)
	r.DELETE("/doctors/:id", doctorHandler.Delete)
	r.GET("/doctors/:id/appointments", appointmentHandler.ListByDoctor)

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.PUT("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	// ======================================================
	// PRESCRIPTIONS
	// ======================================================
	r.GET("/prescriptions", prescriptionHandler.List)
	r.POST("/prescriptions", prescriptionHandler.Create)
	r.GET("/prescriptions/:id", prescriptionHandler.Get)
	r.PUT("/prescriptions/:id", prescriptionHandler.Update)
	r.DELETE("/prescriptions/:id", prescriptionHandler.Delete)
}
