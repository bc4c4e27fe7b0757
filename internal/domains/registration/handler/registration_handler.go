package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	reg "studio-backend/internal/domains/registration"
	"studio-backend/internal/shared/response"
)

type RegistrationHandler struct {
	service reg.Service
}

func NewRegistrationHandler(service reg.Service) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// List handles GET /admin/registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	registrations, degraded := h.service.List(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, registrations, &response.Meta{
		Total:    len(registrations),
		Degraded: degraded,
	})
}

// Create handles POST /registrations (public intake)
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req reg.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid registration", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to add registration")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/registrations/:id
func (h *RegistrationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid registration id")
		return
	}

	var req reg.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, reg.ErrRegistrationNotFound):
			response.NotFound(c, "Registration not found")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid registration", err.Error())
		default:
			response.InternalServerError(c, "Failed to update registration")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /admin/registrations/:id
func (h *RegistrationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid registration id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, reg.ErrRegistrationNotFound) {
			response.NotFound(c, "Registration not found")
			return
		}
		response.InternalServerError(c, "Failed to remove registration")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Registration removed successfully"})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
