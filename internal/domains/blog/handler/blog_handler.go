package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	b "studio-backend/internal/domains/blog"
	"studio-backend/internal/shared/response"
)

type BlogHandler struct {
	service b.Service
}

func NewBlogHandler(service b.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /blog-posts
func (h *BlogHandler) List(c *gin.Context) {
	posts, degraded := h.service.List(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Total:    len(posts),
		Degraded: degraded,
	})
}

// Create handles POST /admin/blog-posts
func (h *BlogHandler) Create(c *gin.Context) {
	var req b.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid blog post", err.Error())
			return
		}
		response.InternalServerError(c, "Failed to add blog post")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /admin/blog-posts/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid blog post id")
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
		case errors.Is(err, b.ErrPostNotFound):
			response.NotFound(c, "Blog post not found")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid blog post", err.Error())
		default:
			response.InternalServerError(c, "Failed to update blog post")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /admin/blog-posts/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid blog post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, b.ErrPostNotFound) {
			response.NotFound(c, "Blog post not found")
			return
		}
		response.InternalServerError(c, "Failed to remove blog post")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Blog post removed successfully"})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
