package shared

// Asynq task types.
const (
	TypeMediaGenerateVariants = "media:generate_variants"
	TypeMediaCleanupOrphans   = "media:cleanup_orphans"
)

// Asynq queues.
const (
	QueueDefault = "default"
	QueueMedia   = "media"
)
