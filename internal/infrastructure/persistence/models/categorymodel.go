package models

import (
	"time"

	"gorm.io/gorm"
)

// CategoryModel is the GORM model for categories.
type CategoryModel struct {
	ID          string         `gorm:"column:id;primaryKey;type:varchar(64)"`
	BusinessID  string         `gorm:"column:business_id;type:varchar(64);not null;index:idx_categories_business_id"`
	Name        string         `gorm:"column:name;type:varchar(100);not null"`
	Description string         `gorm:"column:description;type:varchar(500)"`
	SortOrder   int            `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;not null"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
