package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	b "studio-backend/internal/domains/business"
	"studio-backend/internal/shared/response"
)

type BusinessHandler struct {
	service b.Service
}

func NewBusinessHandler(service b.Service) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// List handles GET /businesses
func (h *BusinessHandler) List(c *gin.Context) {
	businesses, degraded := h.service.List(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, businesses, &response.Meta{
		Total:    len(businesses),
		Degraded: degraded,
	})
}

// Create handles POST /admin/businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	var req b.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid business", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to add business")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/businesses/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid business id")
		return
	}

	var req b.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, b.ErrBusinessNotFound):
			response.NotFound(c, "Business not found")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid business", err.Error())
		default:
			response.InternalServerError(c, "Failed to update business")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /admin/businesses/:id
func (h *BusinessHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid business id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, b.ErrBusinessNotFound) {
			response.NotFound(c, "Business not found")
			return
		}
		response.InternalServerError(c, "Failed to remove business")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Business removed successfully"})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
