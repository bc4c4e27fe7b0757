package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/domains/media"
	"studio-backend/internal/shared/response"
)

// multipartSlack covers the multipart framing around the file part so a
// payload exactly at the cap still parses.
const multipartSlack = 10 * 1024

type MediaHandler struct {
	service  media.Service
	maxBytes int64
}

func NewMediaHandler(service media.Service, maxBytes int64) *MediaHandler {
	return &MediaHandler{service: service, maxBytes: maxBytes}
}

// Upload handles POST /api/upload. Expects a multipart form with the
// file under the "image" field. The request body is capped before any
// multipart parsing so an oversized upload is refused without buffering
// it in memory.
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartSlack)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if isBodyTooLarge(err) {
			response.BadRequest(c, "File size must be less than 10MB")
			return
		}
		response.BadRequest(c, "No image provided")
		return
	}

	if fileHeader.Size > h.maxBytes {
		response.BadRequest(c, "File size must be less than 10MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	asset, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNoFile):
			response.BadRequest(c, "No image provided")
		case errors.Is(err, media.ErrNotAnImage):
			response.BadRequest(c, "Only image files are allowed")
		case errors.Is(err, media.ErrTooLarge):
			response.BadRequest(c, "File size must be less than 10MB")
		default:
			response.ErrorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusOK, asset)
}

// isBodyTooLarge recognizes the MaxBytesReader trip, which surfaces
// either typed or wrapped in the multipart parse error.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

// Delete handles DELETE /api/delete/*publicId. The wildcard keeps the
// slash inside public ids like "blog_images/<uuid>" intact.
func (h *MediaHandler) Delete(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		response.BadRequest(c, "No public id provided")
		return
	}

	if err := h.service.Delete(c.Request.Context(), publicID); err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "DELETE_FAILED", "Delete failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
