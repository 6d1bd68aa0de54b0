package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrUnknownStorageBackend = errors.New("STORAGE_BACKEND must be redis or postgres")
	ErrDatabaseDSNMissing    = errors.New("DATABASE_DSN is required for the postgres backend")
	ErrTimeZoneMissing       = errors.New("TIMEZONE must not be empty")
	ErrMaintenanceCronEmpty  = errors.New("MAINTENANCE_CRON is required when maintenance is enabled")
	ErrJWTSecretMissing      = errors.New("JWT_SECRET is required")
	ErrImportQueueMissing    = errors.New("ROUTE_IMPORT_QUEUE is required when AMQP_URL is set")
)
