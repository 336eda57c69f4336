package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/dto"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

type DoctorHandler struct {
	doctors *store.DoctorStore
}

func NewDoctorHandler(doctors *store.DoctorStore) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

type CreateDoctorRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Specialty       string `json:"specialty" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"required"`
	Availability    string `json:"availability" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
}

type UpdateDoctorRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Specialty       string `json:"specialty" binding:"required"`
	ExperienceYears int    `json:"experience_years" binding:"required"`
	Availability    string `json:"availability" binding:"required"`
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorViews(doctors))
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorView(doctor))
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctor := models.Doctor{
		Name:            req.Name,
		Email:           req.Email,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
		Availability:    req.Availability,
	}
	if err := doctor.SetPassword(req.Password); err != nil {
		httperr.Internal(c, "failed_to_hash_password", "")
		return
	}

	if err := h.doctors.Create(c.Request.Context(), &doctor); err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}
	c.JSON(http.StatusCreated, dto.NewDoctorView(&doctor))
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctor.Name = req.Name
	doctor.Email = req.Email
	doctor.Specialty = req.Specialty
	doctor.ExperienceYears = req.ExperienceYears
	doctor.Availability = req.Availability

	if err := h.doctors.Update(c.Request.Context(), doctor); err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewDoctorView(doctor))
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.doctors.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "doctor_not_found")
		return
	}
	c.Status(http.StatusNoContent)
}
