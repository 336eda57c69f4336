package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/dto"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/models"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/session"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

type AuthHandler struct {
	users    *store.UserStore
	doctors  *store.DoctorStore
	sessions *session.Manager
}

func NewAuthHandler(users *store.UserStore, doctors *store.DoctorStore, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, doctors: doctors, sessions: sessions}
}

// --------- Requests ---------

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Age         int    `json:"age" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Age:         req.Age,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	}
	if err := user.SetPassword(req.Password); err != nil {
		httperr.Internal(c, "failed_to_hash_password", "")
		return
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserView(&user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials")
			return
		}
		log.Printf("login failed: %v", err)
		httperr.Internal(c, "internal_error", "")
		return
	}

	if !user.VerifyPassword(req.Password) {
		httperr.Unauthorized(c, "invalid_credentials")
		return
	}

	if err := h.sessions.SetUser(c, user.ID); err != nil {
		log.Printf("failed to persist session: %v", err)
		httperr.Internal(c, "failed_to_create_session", "")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserView(user))
}

func (h *AuthHandler) DoctorLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctor, err := h.doctors.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials")
			return
		}
		log.Printf("doctor login failed: %v", err)
		httperr.Internal(c, "internal_error", "")
		return
	}

	if !doctor.VerifyPassword(req.Password) {
		httperr.Unauthorized(c, "invalid_credentials")
		return
	}

	if err := h.sessions.SetDoctor(c, doctor.ID); err != nil {
		log.Printf("failed to persist session: %v", err)
		httperr.Internal(c, "failed_to_create_session", "")
		return
	}

	c.JSON(http.StatusOK, dto.NewDoctorView(doctor))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		log.Printf("failed to clear session slots: %v", err)
		httperr.Internal(c, "internal_error", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckSession reports the authenticated principal, the user slot taking
// precedence. An anonymous session is an empty 204, never an error.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	sess, ok := h.sessions.Current(c)
	if ok && sess.UserID != 0 {
		if user, err := h.users.GetByID(c.Request.Context(), sess.UserID); err == nil {
			c.JSON(http.StatusOK, dto.NewUserView(user))
			return
		}
	}
	if ok && sess.DoctorID != 0 {
		if doctor, err := h.doctors.GetByID(c.Request.Context(), sess.DoctorID); err == nil {
			c.JSON(http.StatusOK, dto.NewDoctorView(doctor))
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ClearSession(c *gin.Context) {
	if err := h.sessions.Clear(c); err != nil {
		log.Printf("failed to clear session: %v", err)
		httperr.Internal(c, "internal_error", "")
		return
	}
	c.Status(http.StatusNoContent)
}
