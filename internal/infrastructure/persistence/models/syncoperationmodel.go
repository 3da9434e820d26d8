package models

import (
	"time"

	"gorm.io/datatypes"
)

// SyncOperationModel is the GORM model for sync_operations.
type SyncOperationModel struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	EntityType string         `gorm:"column:entity_type;type:varchar(64);not null"`
	EntityID   string         `gorm:"column:entity_id;type:varchar(64);not null"`
	Action     string         `gorm:"column:action;type:varchar(16);not null"`
	Payload    datatypes.JSON `gorm:"column:payload"`
	Attempts   int            `gorm:"column:attempts;not null;default:0"`
	LastError  string         `gorm:"column:last_error;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null"`
	FailedAt   *time.Time     `gorm:"column:failed_at"`
}

func (SyncOperationModel) TableName() string {
	return "sync_operations"
}
