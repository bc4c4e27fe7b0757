package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"studio-backend/internal/domains/media"
	"studio-backend/pkg/logger"
)

// GenerateVariantsHandler builds the display sizes for a freshly
// uploaded asset in the background.
type GenerateVariantsHandler struct {
	mediaService media.Service
}

func NewGenerateVariantsHandler(mediaService media.Service) *GenerateVariantsHandler {
	return &GenerateVariantsHandler{mediaService: mediaService}
}

func (h *GenerateVariantsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload media.GenerateVariantsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("failed to unmarshal variants payload", err)
		return asynq.SkipRetry
	}

	if err := h.mediaService.GenerateVariants(ctx, payload.Key, payload.PublicID); err != nil {
		logger.Error("failed to generate variants", err)
		return fmt.Errorf("generate variants: %w", err)
	}

	logger.Info("variants generated", map[string]interface{}{"public_id": payload.PublicID})
	return nil
}
