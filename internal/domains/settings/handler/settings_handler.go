package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	s "studio-backend/internal/domains/settings"
	"studio-backend/internal/shared/response"
)

type SettingsHandler struct {
	service s.Service
}

func NewSettingsHandler(service s.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetRegistrationPrice handles GET /settings/registration-price
func (h *SettingsHandler) GetRegistrationPrice(c *gin.Context) {
	price, degraded := h.service.RegistrationPrice(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"price": price}, &response.Meta{Degraded: degraded})
}

type updatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// UpdateRegistrationPrice handles PUT /admin/settings/registration-price
func (h *SettingsHandler) UpdateRegistrationPrice(c *gin.Context) {
	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if req.Price.IsNegative() {
		response.BadRequest(c, "Price must not be negative")
		return
	}

	if err := h.service.UpdateRegistrationPrice(c.Request.Context(), req.Price); err != nil {
		response.InternalServerError(c, "Failed to update registration price")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"price": req.Price})
}

// GetContactInfo handles GET /settings/contact-info
func (h *SettingsHandler) GetContactInfo(c *gin.Context) {
	info, degraded := h.service.ContactInfo(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, info, &response.Meta{Degraded: degraded})
}

// UpdateContactInfo handles PUT /admin/settings/contact-info
func (h *SettingsHandler) UpdateContactInfo(c *gin.Context) {
	var info s.ContactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdateContactInfo(c.Request.Context(), &info); err != nil {
		response.InternalServerError(c, "Failed to update contact info")
		return
	}

	response.Success(c, http.StatusOK, info)
}

// GetSocialMediaLinks handles GET /settings/social-links
func (h *SettingsHandler) GetSocialMediaLinks(c *gin.Context) {
	links, degraded := h.service.SocialMediaLinks(c.Request.Context())
	response.SuccessWithMeta(c, http.StatusOK, links, &response.Meta{Degraded: degraded})
}

// UpdateSocialMediaLinks handles PUT /admin/settings/social-links
func (h *SettingsHandler) UpdateSocialMediaLinks(c *gin.Context) {
	var links s.SocialMediaLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdateSocialMediaLinks(c.Request.Context(), &links); err != nil {
		response.InternalServerError(c, "Failed to update social links")
		return
	}

	response.Success(c, http.StatusOK, links)
}
