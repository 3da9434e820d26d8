package mappers

import (
	"github.com/ledgerpos/ledgerpos/internal/domain/setting"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
)

func LocalSettingToDomain(m *models.LocalSettingModel) *setting.LocalSetting {
	if m == nil {
		return nil
	}
	return setting.ReconstructLocalSetting(m.SettingKey, m.Value, m.UpdatedAt)
}

func LocalSettingToModel(s *setting.LocalSetting) *models.LocalSettingModel {
	if s == nil {
		return nil
	}
	return &models.LocalSettingModel{
		SettingKey: s.Key(),
		Value:      s.Value(),
		UpdatedAt:  s.UpdatedAt(),
	}
}
