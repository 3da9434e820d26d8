package setting

import "context"

type Repository interface {
	// Get returns ErrSettingNotFound for a missing key.
	Get(ctx context.Context, key string) (*LocalSetting, error)
	Upsert(ctx context.Context, s *LocalSetting) error
}
