package config

import (
	"errors"
	"fmt"
)

// ValidateForRun checks every section needed to serve traffic.
func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.Storage.Backend == StorageBackendRedis {
		if err := cfg.Redis.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := cfg.Storage.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Schedule.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Session.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Messaging.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}
	return nil
}
