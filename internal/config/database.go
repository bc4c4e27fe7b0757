package config

import (
	"time"

	"studio-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig maps the env-driven config onto the pgx pool
// configuration consumed by the database layer.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,

		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	}, nil
}
