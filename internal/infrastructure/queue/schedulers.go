package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"studio-backend/internal/domains/media"
	"studio-backend/internal/shared"
	"studio-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress, redisPassword string, redisDB int) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress, Password: redisPassword, DB: redisDB},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerCleanupOrphansJob()
}

// Nightly at 3 AM, when nobody is uploading. The 24 hour age cutoff in
// the payload keeps uploads from the same evening out of the sweep.
func (s *Scheduler) registerCleanupOrphansJob() error {
	payload, err := json.Marshal(media.CleanupOrphansPayload{OlderThanHours: 24})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeMediaCleanupOrphans, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register CleanupOrphans job", err)
		return err
	}

	logger.Info("registered CleanupOrphans: daily at 3 AM", nil)
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
