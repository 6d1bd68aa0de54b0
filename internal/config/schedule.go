package config

import (
	"os"
	"strings"
)

const (
	timeZoneEnv            = "TIMEZONE"
	planningHorizonDaysEnv = "PLANNING_HORIZON_DAYS"
	staleRetentionDaysEnv  = "STALE_RETENTION_DAYS"
	maintenanceCronEnv     = "MAINTENANCE_CRON"
	maintenanceEnabledEnv  = "MAINTENANCE_ENABLED"

	defaultTimeZone            = "Europe/Moscow"
	defaultPlanningHorizonDays = 7
	defaultStaleRetentionDays  = 30
	defaultMaintenanceCron     = "0 3 * * *"
)

type ScheduleConfig struct {
	// TimeZone is the fallback zone used until one is stored in settings.
	TimeZone            string
	PlanningHorizonDays int
	StaleRetentionDays  int
	MaintenanceCron     string
	MaintenanceEnabled  bool
}

func LoadScheduleConfig() *ScheduleConfig {
	timeZone := strings.TrimSpace(os.Getenv(timeZoneEnv))
	if timeZone == "" {
		timeZone = defaultTimeZone
	}

	maintenanceCron := strings.TrimSpace(os.Getenv(maintenanceCronEnv))
	if maintenanceCron == "" {
		maintenanceCron = defaultMaintenanceCron
	}

	return &ScheduleConfig{
		TimeZone:            timeZone,
		PlanningHorizonDays: positiveIntEnv(planningHorizonDaysEnv, defaultPlanningHorizonDays),
		StaleRetentionDays:  nonNegativeIntEnv(staleRetentionDaysEnv, defaultStaleRetentionDays),
		MaintenanceCron:     maintenanceCron,
		MaintenanceEnabled:  boolEnv(maintenanceEnabledEnv, true),
	}
}

func (c *ScheduleConfig) Validate() error {
	if c.TimeZone == "" {
		return ErrTimeZoneMissing
	}
	if c.MaintenanceEnabled && c.MaintenanceCron == "" {
		return ErrMaintenanceCronEmpty
	}
	return nil
}
