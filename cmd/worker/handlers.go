package main

import (
	"github.com/hibiken/asynq"

	mediaJob "studio-backend/internal/domains/media/job"
	"studio-backend/internal/shared"
	"studio-backend/pkg/container"
)

// HandlerRegistry holds every background job handler.
type HandlerRegistry struct {
	generateVariants *mediaJob.GenerateVariantsHandler
	cleanupOrphans   *mediaJob.CleanupOrphansHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		generateVariants: mediaJob.NewGenerateVariantsHandler(c.MediaService),
		cleanupOrphans:   mediaJob.NewCleanupOrphansHandler(c.MediaService),
	}
}

func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeMediaGenerateVariants, h.generateVariants.ProcessTask)
	mux.HandleFunc(shared.TypeMediaCleanupOrphans, h.cleanupOrphans.ProcessTask)
}
