package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/domains/admin"
	"studio-backend/internal/shared/response"
)

const minPasswordLength = 8

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.BadRequest(c, "Username and password are required")
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, admin.ErrPasswordNotConfigured):
			response.ErrorResponse(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", "Admin access is not configured")
		default:
			response.InternalServerError(c, "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, session)
}

// ChangePassword handles PUT /admin/password
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		response.BadRequest(c, "Password must be at least 8 characters")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), req.NewPassword); err != nil {
		response.InternalServerError(c, "Failed to update password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}
