package sqlstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/domain"
)

const timeZoneKey = "timezone"

type settingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) domain.SettingsRepository {
	return &settingsStore{db: db}
}

func (s *settingsStore) GetTimeZone(ctx context.Context) (string, error) {
	var m settingModel
	err := s.db.WithContext(ctx).Where("key = ?", timeZoneKey).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSettingNotFound
		}
		return "", err
	}
	return m.Value, nil
}

func (s *settingsStore) SetTimeZone(ctx context.Context, name string) error {
	m := settingModel{
		Key:       timeZoneKey,
		Value:     name,
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}
