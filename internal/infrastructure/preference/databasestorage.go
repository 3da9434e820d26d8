// Package preference provides the durable backends of the connectivity
// preference. Every failure is reported as connectivity.ErrStorageUnavailable
// so the stores can degrade to memory.
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/setting"
)

// DatabaseStorage keeps the preference in the local settings table.
type DatabaseStorage struct {
	repo setting.Repository
}

func NewDatabaseStorage(repo setting.Repository) *DatabaseStorage {
	return &DatabaseStorage{repo: repo}
}

func (s *DatabaseStorage) Load(ctx context.Context, key string) (string, error) {
	st, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return "", connectivity.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("%w: %v", connectivity.ErrStorageUnavailable, err)
	}
	return st.Value(), nil
}

func (s *DatabaseStorage) Save(ctx context.Context, key, value string) error {
	st, err := setting.NewLocalSetting(key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", connectivity.ErrStorageUnavailable, err)
	}
	if err := s.repo.Upsert(ctx, st); err != nil {
		return fmt.Errorf("%w: %v", connectivity.ErrStorageUnavailable, err)
	}
	return nil
}
