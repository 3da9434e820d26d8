// Package setting is the agent's local key/value store for device-level
// preferences such as the connectivity mode.
package setting

import (
	"fmt"
	"strings"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
)

const maxKeyLength = 100

// LocalSetting is one device preference.
type LocalSetting struct {
	key       string
	value     string
	updatedAt time.Time
}

func NewLocalSetting(key, value string) (*LocalSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > maxKeyLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSettingKey, key)
	}
	return &LocalSetting{
		key:       key,
		value:     value,
		updatedAt: biztime.NowUTC(),
	}, nil
}

// ReconstructLocalSetting rebuilds a setting from persistence.
func ReconstructLocalSetting(key, value string, updatedAt time.Time) *LocalSetting {
	return &LocalSetting{key: key, value: value, updatedAt: updatedAt}
}

func (s *LocalSetting) Key() string          { return s.key }
func (s *LocalSetting) Value() string        { return s.value }
func (s *LocalSetting) UpdatedAt() time.Time { return s.updatedAt }
