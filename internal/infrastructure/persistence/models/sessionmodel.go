package models

import "time"

// SessionModel is the GORM model for user_sessions.
type SessionModel struct {
	ID         string     `gorm:"column:id;primaryKey;type:varchar(64)"`
	UserID     string     `gorm:"column:user_id;type:varchar(64);not null;index:idx_user_sessions_user_id"`
	DeviceName string     `gorm:"column:device_name;type:varchar(100)"`
	IPAddress  string     `gorm:"column:ip_address;type:varchar(64)"`
	UserAgent  string     `gorm:"column:user_agent;type:varchar(255)"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
	LastSeenAt time.Time  `gorm:"column:last_seen_at;not null"`
	RevokedAt  *time.Time `gorm:"column:revoked_at"`
}

func (SessionModel) TableName() string {
	return "user_sessions"
}
