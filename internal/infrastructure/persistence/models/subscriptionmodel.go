package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubscriptionModel is the GORM model for subscriptions, the local cache of
// the business's plan record.
type SubscriptionModel struct {
	BusinessID  string                      `gorm:"column:business_id;primaryKey;type:varchar(64)"`
	PlanName    string                      `gorm:"column:plan_name;type:varchar(32);not null"`
	Features    datatypes.JSONSlice[string] `gorm:"column:features"`
	MaxUsers    *int                        `gorm:"column:max_users"`
	MaxProducts *int                        `gorm:"column:max_products"`
	MaxBranches *int                        `gorm:"column:max_branches"`
	MaxDevices  *int                        `gorm:"column:max_devices"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
