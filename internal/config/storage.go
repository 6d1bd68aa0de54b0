package config

import (
	"os"
	"strings"
)

const (
	storageBackendEnv       = "STORAGE_BACKEND"
	databaseDSNEnv          = "DATABASE_DSN"
	databaseMaxOpenConnsEnv = "DATABASE_MAX_OPEN_CONNS"
	databaseMaxIdleConnsEnv = "DATABASE_MAX_IDLE_CONNS"

	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 10
)

type StorageBackend string

const (
	StorageBackendRedis    StorageBackend = "redis"
	StorageBackendPostgres StorageBackend = "postgres"
)

type StorageConfig struct {
	Backend      StorageBackend
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

func LoadStorageConfig() (*StorageConfig, error) {
	backend := StorageBackend(strings.ToLower(strings.TrimSpace(os.Getenv(storageBackendEnv))))
	switch backend {
	case "":
		backend = StorageBackendRedis
	case StorageBackendRedis, StorageBackendPostgres:
	default:
		return nil, ErrUnknownStorageBackend
	}

	return &StorageConfig{
		Backend:      backend,
		DSN:          os.Getenv(databaseDSNEnv),
		MaxOpenConns: positiveIntEnv(databaseMaxOpenConnsEnv, defaultMaxOpenConns),
		MaxIdleConns: positiveIntEnv(databaseMaxIdleConnsEnv, defaultMaxIdleConns),
	}, nil
}

func (c *StorageConfig) Validate() error {
	if c.Backend == StorageBackendPostgres && c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	return nil
}
