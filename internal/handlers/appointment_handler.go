package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/dto"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

type AppointmentHandler struct {
	appointments *store.AppointmentStore
}

func NewAppointmentHandler(appointments *store.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type AppointmentRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.appointments.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentViews(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	aps, err := h.appointments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentViews(aps))
}

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "id")
	if !ok {
		return
	}

	aps, err := h.appointments.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentViews(aps))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", `field "date" must be a valid YYYY-MM-DD date`)
		return
	}
	timeOfDay, err := parseTimeOfDay(req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", `field "time" must be a valid 24-hour HH:MM time`)
		return
	}

	ap := models.Appointment{
		UserID:   req.UserID,
		DoctorID: req.DoctorID,
		Date:     date,
		Time:     timeOfDay,
		Status:   req.Status,
	}

	if err := h.appointments.Create(c.Request.Context(), &ap); err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}

	created, err := h.appointments.GetByID(c.Request.Context(), ap.ID)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusCreated, dto.NewAppointmentView(created))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", `field "date" must be a valid YYYY-MM-DD date`)
		return
	}
	timeOfDay, err := parseTimeOfDay(req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", `field "time" must be a valid 24-hour HH:MM time`)
		return
	}

	ap.UserID = req.UserID
	ap.DoctorID = req.DoctorID
	ap.Date = date
	ap.Time = timeOfDay
	ap.Status = req.Status

	if err := h.appointments.Update(c.Request.Context(), ap); err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}

	updated, err := h.appointments.GetByID(c.Request.Context(), ap.ID)
	if err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewAppointmentView(updated))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "appointment_not_found")
		return
	}
	c.Status(http.StatusNoContent)
}
