package inmemory

import (
	"context"

	"github.com/kwallet-network/kwallet/internal/core/domain"
)

// SettingsRepositoryImpl represents an in memory storage
type SettingsRepositoryImpl struct {
	store *settingsInmemoryStore
}

// NewSettingsRepositoryImpl returns a new empty SettingsRepositoryImpl
func NewSettingsRepositoryImpl(store *settingsInmemoryStore) domain.SettingsRepository {
	return &SettingsRepositoryImpl{store}
}

func (r *SettingsRepositoryImpl) GetSetting(_ context.Context, key string) (string, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	value, ok := r.store.settings[key]
	if !ok {
		return "", domain.ErrSettingNotFound
	}
	return value, nil
}

func (r *SettingsRepositoryImpl) SetSetting(_ context.Context, key, value string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.settings[key] = value
	return nil
}
