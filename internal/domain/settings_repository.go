package domain

import "context"

//go:generate mockgen -source=settings_repository.go -destination=settings_repository_mock.go -package=domain

type SettingsRepository interface {
	// GetTimeZone returns ErrSettingNotFound when no zone was ever stored.
	GetTimeZone(ctx context.Context) (string, error)
	SetTimeZone(ctx context.Context, name string) error
}
