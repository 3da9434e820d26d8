package models

import "time"

// ProfileModel is the GORM model for profiles.
type ProfileModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:varchar(64)"`
	BusinessID    string    `gorm:"column:business_id;type:varchar(64);not null"`
	Username      string    `gorm:"column:username;type:varchar(100);not null"`
	UsernameLower string    `gorm:"column:username_lower;type:varchar(100);not null;uniqueIndex:idx_profiles_username_lower"`
	Email         string    `gorm:"column:email;type:varchar(255);not null;default:''"`
	Role          string    `gorm:"column:role;type:varchar(32);not null;default:'cashier'"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
