package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel is the GORM model for audit_logs.
type AuditLogModel struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	BusinessID string         `gorm:"column:business_id;type:varchar(64);not null"`
	ActorID    string         `gorm:"column:actor_id;type:varchar(64)"`
	Action     string         `gorm:"column:action;type:varchar(32);not null"`
	EntityType string         `gorm:"column:entity_type;type:varchar(64);not null"`
	EntityID   string         `gorm:"column:entity_id;type:varchar(64);not null"`
	Details    datatypes.JSON `gorm:"column:details"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
