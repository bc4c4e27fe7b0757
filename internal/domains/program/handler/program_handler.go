package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	p "studio-backend/internal/domains/program"
	"studio-backend/internal/shared/response"
)

type ProgramHandler struct {
	service p.Service
}

func NewProgramHandler(service p.Service) *ProgramHandler {
	return &ProgramHandler{service: service}
}

// List handles GET /programs
func (h *ProgramHandler) List(c *gin.Context) {
	programs, degraded := h.service.List(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, programs, &response.Meta{
		Total:    len(programs),
		Degraded: degraded,
	})
}

// Seed handles POST /admin/programs/seed
func (h *ProgramHandler) Seed(c *gin.Context) {
	seeded, err := h.service.Seed(c.Request.Context())
	if err != nil {
		if errors.Is(err, p.ErrAlreadySeeded) {
			response.ErrorResponse(c, http.StatusConflict, "ALREADY_SEEDED", "Programs collection is not empty")
			return
		}
		response.InternalServerError(c, "Failed to seed programs")
		return
	}

	response.Success(c, http.StatusCreated, seeded)
}

// Create handles POST /admin/programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req p.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid program", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to add program")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Invalid program id")
		return
	}

	var req p.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, p.ErrProgramNotFound):
			response.NotFound(c, "Program not found")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid program", err.Error())
		default:
			response.InternalServerError(c, "Failed to update program")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /admin/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Invalid program id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, p.ErrProgramNotFound) {
			response.NotFound(c, "Program not found")
			return
		}
		response.InternalServerError(c, "Failed to remove program")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Program removed successfully"})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
