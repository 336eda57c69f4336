package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/dto"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

type PrescriptionHandler struct {
	prescriptions *store.PrescriptionStore
}

func NewPrescriptionHandler(prescriptions *store.PrescriptionStore) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptions: prescriptions}
}

type PrescriptionRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Medicine      string `json:"medicine" binding:"required"`
	Dosage        string `json:"dosage" binding:"required"`
	Instructions  string `json:"instructions" binding:"required"`
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	ps, err := h.prescriptions.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewPrescriptionViews(ps))
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.prescriptions.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewPrescriptionView(p))
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p := models.Prescription{
		AppointmentID: req.AppointmentID,
		Medicine:      req.Medicine,
		Dosage:        req.Dosage,
		Instructions:  req.Instructions,
	}

	if err := h.prescriptions.Create(c.Request.Context(), &p); err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}

	created, err := h.prescriptions.GetByID(c.Request.Context(), p.ID)
	if err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}
	c.JSON(http.StatusCreated, dto.NewPrescriptionView(created))
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.prescriptions.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}

	var req PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p.AppointmentID = req.AppointmentID
	p.Medicine = req.Medicine
	p.Dosage = req.Dosage
	p.Instructions = req.Instructions

	if err := h.prescriptions.Update(c.Request.Context(), p); err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}

	updated, err := h.prescriptions.GetByID(c.Request.Context(), p.ID)
	if err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewPrescriptionView(updated))
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.prescriptions.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "prescription_not_found")
		return
	}
	c.Status(http.StatusNoContent)
}
