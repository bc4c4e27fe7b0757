package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"studio-backend/internal/config"
	infraCache "studio-backend/internal/infrastructure/cache"
	"studio-backend/internal/infrastructure/database"
	"studio-backend/internal/infrastructure/storage"
	"studio-backend/pkg/cache"
	"studio-backend/pkg/jwt"
	"studio-backend/pkg/logger"

	"studio-backend/internal/domains/admin"
	adminHandler "studio-backend/internal/domains/admin/handler"
	adminService "studio-backend/internal/domains/admin/service"
	"studio-backend/internal/domains/blog"
	blogHandler "studio-backend/internal/domains/blog/handler"
	blogRepo "studio-backend/internal/domains/blog/repository"
	blogService "studio-backend/internal/domains/blog/service"
	"studio-backend/internal/domains/business"
	businessHandler "studio-backend/internal/domains/business/handler"
	businessRepo "studio-backend/internal/domains/business/repository"
	businessService "studio-backend/internal/domains/business/service"
	"studio-backend/internal/domains/media"
	mediaHandler "studio-backend/internal/domains/media/handler"
	mediaRepo "studio-backend/internal/domains/media/repository"
	mediaService "studio-backend/internal/domains/media/service"
	"studio-backend/internal/domains/program"
	programHandler "studio-backend/internal/domains/program/handler"
	programRepo "studio-backend/internal/domains/program/repository"
	programService "studio-backend/internal/domains/program/service"
	"studio-backend/internal/domains/registration"
	registrationHandler "studio-backend/internal/domains/registration/handler"
	registrationRepo "studio-backend/internal/domains/registration/repository"
	registrationService "studio-backend/internal/domains/registration/service"
	"studio-backend/internal/domains/settings"
	settingsHandler "studio-backend/internal/domains/settings/handler"
	settingsRepo "studio-backend/internal/domains/settings/repository"
	settingsService "studio-backend/internal/domains/settings/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, infrastructure, repositories, services.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	SettingsRepo     settings.Repository
	BusinessRepo     business.Repository
	BlogRepo         blog.Repository
	ProgramRepo      program.Repository
	RegistrationRepo registration.Repository
	MediaRepo        media.Repository

	SettingsService     settings.Service
	BusinessService     business.Service
	BlogService         blog.Service
	ProgramService      program.Service
	RegistrationService registration.Service
	AdminService        admin.Service
	MediaService        media.Service

	SettingsHandler     *settingsHandler.SettingsHandler
	BusinessHandler     *businessHandler.BusinessHandler
	BlogHandler         *blogHandler.BlogHandler
	ProgramHandler      *programHandler.ProgramHandler
	RegistrationHandler *registrationHandler.RegistrationHandler
	AdminHandler        *adminHandler.AdminHandler
	MediaHandler        *mediaHandler.MediaHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()
	if err := c.initStorage(); err != nil {
		return nil, err
	}
	c.initQueue()
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if err := c.AdminService.EnsureBootstrapPassword(context.Background(), cfg.Admin.BootstrapPassword); err != nil {
		return nil, fmt.Errorf("failed to ensure admin password: %w", err)
	}

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	c.DB = db
	return nil
}

// initCache connects Redis but treats failure as non-critical: every
// read path degrades to the repository when the cache is down.
func (c *Container) initCache() {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, running without cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	c.Cache = redisCache
}

func (c *Container) initStorage() error {
	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = minioStorage
	return nil
}

func (c *Container) initQueue() {
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.SettingsRepo = settingsRepo.NewPostgresRepository(pool)
	c.BusinessRepo = businessRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.ProgramRepo = programRepo.NewPostgresRepository(pool)
	c.RegistrationRepo = registrationRepo.NewPostgresRepository(pool)
	c.MediaRepo = mediaRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.Cache)
	c.BusinessService = businessService.NewBusinessService(c.BusinessRepo)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.ProgramService = programService.NewProgramService(c.ProgramRepo)
	c.RegistrationService = registrationService.NewRegistrationService(c.RegistrationRepo)
	c.AdminService = adminService.NewAdminService(c.SettingsService, c.JWTManager, c.Config.Admin.Username)

	processor := storage.NewImageProcessor(
		c.Config.Media.MaxWidth,
		c.Config.Media.MaxHeight,
		c.Config.Media.JPEGQuality,
	)
	c.MediaService = mediaService.NewMediaService(
		c.Storage,
		processor,
		c.MediaRepo,
		c.AsynqClient,
		c.Config.Media.Folder,
		c.Config.Media.MaxBytes,
	)
}

func (c *Container) initHandlers() {
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.BusinessHandler = businessHandler.NewBusinessHandler(c.BusinessService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ProgramHandler = programHandler.NewProgramHandler(c.ProgramService)
	c.RegistrationHandler = registrationHandler.NewRegistrationHandler(c.RegistrationService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService, c.Config.Media.MaxBytes)
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleanup completed", nil)
}
