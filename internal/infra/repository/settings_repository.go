package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

type settingsRepository struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) domain.SettingsRepository {
	return &settingsRepository{
		client: client,
	}
}

func (r *settingsRepository) GetTimeZone(ctx context.Context) (string, error) {
	name, err := r.client.HGet(ctx, settingsKey, timeZoneField).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSettingNotFound
		}
		return "", err
	}
	return name, nil
}

func (r *settingsRepository) SetTimeZone(ctx context.Context, name string) error {
	return r.client.HSet(ctx, settingsKey, timeZoneField, name).Err()
}
