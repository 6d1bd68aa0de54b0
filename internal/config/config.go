package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultServiceName = "big-telesales"
)

type Config struct {
	Port        string
	LogLevel    slog.Level
	Env         string
	ServiceName string
	Redis       *RedisConfig
	Storage     *StorageConfig
	Schedule    *ScheduleConfig
	Session     *SessionConfig
	Messaging   *MessagingConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	storageConfig, err := LoadStorageConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		Env:         env,
		ServiceName: serviceName,
		Redis:       redisConfig,
		Storage:     storageConfig,
		Schedule:    LoadScheduleConfig(),
		Session:     LoadSessionConfig(),
		Messaging:   LoadMessagingConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// positiveIntEnv returns the integer value of key, or def when it is unset,
// malformed or not positive.
func positiveIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func nonNegativeIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}

func boolEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
