package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"studio-backend/internal/domains/media"
	"studio-backend/internal/infrastructure/storage"
	"studio-backend/internal/shared"
	"studio-backend/pkg/logger"
)

// ObjectStorage is the slice of the storage layer the relay needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
	List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
}

// TaskEnqueuer is satisfied by asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type mediaService struct {
	storage   ObjectStorage
	processor *storage.ImageProcessor
	repo      media.Repository
	queue     TaskEnqueuer
	folder    string
	maxBytes  int64
}

func NewMediaService(
	objectStorage ObjectStorage,
	processor *storage.ImageProcessor,
	repo media.Repository,
	queue TaskEnqueuer,
	folder string,
	maxBytes int64,
) media.Service {
	return &mediaService{
		storage:   objectStorage,
		processor: processor,
		repo:      repo,
		queue:     queue,
		folder:    folder,
		maxBytes:  maxBytes,
	}
}

func (s *mediaService) Upload(ctx context.Context, filename, contentType string, data []byte) (*media.Asset, error) {
	if len(data) == 0 {
		return nil, media.ErrNoFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, media.ErrNotAnImage
	}
	if int64(len(data)) > s.maxBytes {
		return nil, media.ErrTooLarge
	}

	normalized, err := s.processor.Normalize(data)
	if err != nil {
		// The declared MIME type lied; the bytes are not a decodable image.
		return nil, media.ErrNotAnImage
	}

	publicID := fmt.Sprintf("%s/%s", s.folder, uuid.NewString())
	key := publicID + "." + normalized.Ext

	url, err := s.storage.Upload(ctx, key, normalized.Data, normalized.ContentType)
	if err != nil {
		return nil, media.NewUploadError(err)
	}

	s.enqueueVariants(ctx, key, publicID)

	logger.Info("image uploaded", map[string]interface{}{
		"public_id": publicID,
		"filename":  filename,
		"width":     normalized.Width,
		"height":    normalized.Height,
	})

	return &media.Asset{
		URL:      url,
		PublicID: publicID,
		Width:    normalized.Width,
		Height:   normalized.Height,
	}, nil
}

// enqueueVariants is best effort: the original is already stored, so a
// queue outage only costs the display sizes.
func (s *mediaService) enqueueVariants(ctx context.Context, key, publicID string) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(media.GenerateVariantsPayload{Key: key, PublicID: publicID})
	if err != nil {
		logger.Error("failed to marshal variants payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeMediaGenerateVariants, payload)
	if _, err := s.queue.EnqueueContext(ctx, task, asynq.Queue(shared.QueueMedia), asynq.MaxRetry(3)); err != nil {
		logger.Error("failed to enqueue variants task", err)
	}
}

// Delete removes the asset and every variant sharing its public id
// prefix. Unknown ids succeed silently.
func (s *mediaService) Delete(ctx context.Context, publicID string) error {
	if err := s.storage.DeleteByPrefix(ctx, publicID); err != nil {
		return media.NewDeleteError(err)
	}
	return nil
}

func (s *mediaService) GenerateVariants(ctx context.Context, key, publicID string) error {
	data, err := s.storage.Download(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to download original: %w", err)
	}

	variants, err := s.processor.Variants(data)
	if err != nil {
		return fmt.Errorf("failed to build variants: %w", err)
	}

	for name, encoded := range variants {
		variantKey := fmt.Sprintf("%s_%s.jpg", publicID, name)
		if _, err := s.storage.Upload(ctx, variantKey, encoded, "image/jpeg"); err != nil {
			return fmt.Errorf("failed to store %s variant: %w", name, err)
		}
	}

	return nil
}

// CleanupOrphans drops stored objects that nothing references anymore.
// Only objects past the age cutoff are considered so that an upload
// still waiting for its record to be saved is never swept.
func (s *mediaService) CleanupOrphans(ctx context.Context, olderThanHours int) (int, error) {
	referenced, err := s.repo.GetReferencedURLs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load referenced urls: %w", err)
	}

	objects, err := s.storage.List(ctx, s.folder+"/")
	if err != nil {
		return 0, fmt.Errorf("failed to list stored objects: %w", err)
	}

	cutoff := time.Now().Add(-time.Duration(olderThanHours) * time.Hour)
	removed := 0
	swept := make(map[string]bool)

	for _, object := range objects {
		// One sweep per public id: the prefix delete already took the
		// asset's variants with it.
		base := basePublicID(object.Key)
		if swept[base] {
			continue
		}
		if object.LastModified.After(cutoff) {
			continue
		}
		if isReferenced(base, referenced) {
			continue
		}

		if err := s.storage.DeleteByPrefix(ctx, base); err != nil {
			logger.Error("failed to remove orphaned object", err)
			continue
		}
		swept[base] = true
		removed++
	}

	if removed > 0 {
		logger.Info("orphaned media removed", map[string]interface{}{"count": removed})
	}

	return removed, nil
}

// isReferenced reports whether any stored URL points at the public id.
// Variants count as referenced when their base asset is.
func isReferenced(publicID string, referenced []string) bool {
	for _, url := range referenced {
		if strings.Contains(url, publicID) {
			return true
		}
	}
	return false
}

// basePublicID strips the extension and any variant suffix from an
// object key, recovering the public id shared by an asset and its
// variants.
func basePublicID(key string) string {
	if idx := strings.LastIndex(key, "."); idx > 0 {
		key = key[:idx]
	}
	for _, suffix := range []string{"_medium", "_thumbnail"} {
		key = strings.TrimSuffix(key, suffix)
	}
	return key
}
