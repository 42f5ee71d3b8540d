package dbbadger

import (
	"context"
	"time"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

// Setting is the badgerhold record of a single preference.
type Setting struct {
	Key       string `badgerhold:"key"`
	Value     string
	UpdatedAt int64
}

var timeNow = time.Now

type settingsRepositoryImpl struct {
	store *badgerhold.Store
}

func newSettingsRepositoryImpl(store *badgerhold.Store) domain.SettingsRepository {
	return &settingsRepositoryImpl{store}
}

func (r *settingsRepositoryImpl) GetSetting(_ context.Context, key string) (string, error) {
	var setting Setting
	if err := r.store.Get(key, &setting); err != nil {
		if err == badgerhold.ErrNotFound {
			return "", domain.ErrSettingNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

func (r *settingsRepositoryImpl) SetSetting(_ context.Context, key, value string) error {
	setting := &Setting{Key: key, Value: value, UpdatedAt: timeNow().Unix()}
	return r.store.Upsert(key, setting)
}
