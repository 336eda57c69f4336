package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/dto"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/httperr"
	"github.com/Tony-Muriuki/Good-Doctor-Backend/internal/store"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type UpdateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Age         int    `json:"age" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`

	// Optional: when present the stored hash is replaced.
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewUserViews(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewUserView(user))
}

// Update is a full replace of the mutable fields; password alone is optional.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Age = req.Age
	user.Gender = req.Gender
	user.PhoneNumber = req.PhoneNumber
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			httperr.Internal(c, "failed_to_hash_password", "")
			return
		}
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}
	c.JSON(http.StatusOK, dto.NewUserView(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err, "user_not_found")
		return
	}
	c.Status(http.StatusNoContent)
}
