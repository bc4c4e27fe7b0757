package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-backend/internal/shared/middleware"
	"studio-backend/internal/shared/response"
	"studio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = c.Config.Media.MaxBytes

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Upload relay keeps its original paths, outside the versioned group.
	router.POST("/api/upload", c.MediaHandler.Upload)
	router.DELETE("/api/delete/*publicId", c.MediaHandler.Delete)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/businesses", c.BusinessHandler.List)
	v1.GET("/blog-posts", c.BlogHandler.List)
	v1.GET("/programs", c.ProgramHandler.List)

	v1.POST("/registrations", c.RegistrationHandler.Create)

	settings := v1.Group("/settings")
	{
		settings.GET("/contact-info", c.SettingsHandler.GetContactInfo)
		settings.GET("/social-links", c.SettingsHandler.GetSocialMediaLinks)
		settings.GET("/registration-price", c.SettingsHandler.GetRegistrationPrice)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")

	admin.POST("/login", c.AdminHandler.Login)

	// Everything past login requires a valid session token.
	admin.Use(middleware.AdminSession(c.JWTManager))
	{
		admin.PUT("/password", c.AdminHandler.ChangePassword)

		admin.POST("/businesses", c.BusinessHandler.Create)
		admin.PUT("/businesses/:id", c.BusinessHandler.Update)
		admin.DELETE("/businesses/:id", c.BusinessHandler.Delete)

		admin.POST("/blog-posts", c.BlogHandler.Create)
		admin.PUT("/blog-posts/:id", c.BlogHandler.Update)
		admin.DELETE("/blog-posts/:id", c.BlogHandler.Delete)

		admin.POST("/programs", c.ProgramHandler.Create)
		admin.POST("/programs/seed", c.ProgramHandler.Seed)
		admin.PUT("/programs/:id", c.ProgramHandler.Update)
		admin.DELETE("/programs/:id", c.ProgramHandler.Delete)

		admin.GET("/registrations", c.RegistrationHandler.List)
		admin.PUT("/registrations/:id", c.RegistrationHandler.Update)
		admin.DELETE("/registrations/:id", c.RegistrationHandler.Delete)

		admin.PUT("/settings/registration-price", c.SettingsHandler.UpdateRegistrationPrice)
		admin.PUT("/settings/contact-info", c.SettingsHandler.UpdateContactInfo)
		admin.PUT("/settings/social-links", c.SettingsHandler.UpdateSocialMediaLinks)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "UP",
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "DEGRADED"
			status["database"] = "DOWN"
			response.Success(ctx, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "UP"

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["cache"] = "DOWN"
		} else {
			status["cache"] = "UP"
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
