package models

import "time"

// LocalSettingModel is the GORM model for local_settings.
type LocalSettingModel struct {
	SettingKey string    `gorm:"column:setting_key;primaryKey;type:varchar(100)"`
	Value      string    `gorm:"column:value;type:text;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (LocalSettingModel) TableName() string {
	return "local_settings"
}
