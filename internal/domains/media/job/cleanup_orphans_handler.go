package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"studio-backend/internal/domains/media"
	"studio-backend/pkg/logger"
)

const defaultOrphanAgeHours = 24

// CleanupOrphansHandler sweeps stored objects that no persisted record
// references anymore. Scheduled nightly.
type CleanupOrphansHandler struct {
	mediaService media.Service
}

func NewCleanupOrphansHandler(mediaService media.Service) *CleanupOrphansHandler {
	return &CleanupOrphansHandler{mediaService: mediaService}
}

func (h *CleanupOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload media.CleanupOrphansPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("failed to unmarshal cleanup payload", err)
		return asynq.SkipRetry
	}

	if payload.OlderThanHours <= 0 {
		payload.OlderThanHours = defaultOrphanAgeHours
	}

	removed, err := h.mediaService.CleanupOrphans(ctx, payload.OlderThanHours)
	if err != nil {
		logger.Error("orphan cleanup failed", err)
		return fmt.Errorf("cleanup orphans: %w", err)
	}

	logger.Info("orphan cleanup finished", map[string]interface{}{"removed": removed})
	return nil
}
