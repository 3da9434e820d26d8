package dto

import (
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/session"
)

type SuperAdminStatusDTO struct {
	IsSuperAdmin bool `json:"is_super_admin"`
}

type SessionDTO struct {
	ID         string    `json:"id"`
	DeviceName string    `json:"device_name"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	IsCurrent  bool      `json:"is_current"`
}

func ToSessionDTO(s *session.Session, currentID string) *SessionDTO {
	return &SessionDTO{
		ID:         s.ID(),
		DeviceName: s.DeviceName(),
		IPAddress:  s.IPAddress(),
		UserAgent:  s.UserAgent(),
		CreatedAt:  s.CreatedAt(),
		LastSeenAt: s.LastSeenAt(),
		IsCurrent:  s.ID() == currentID,
	}
}

type RevokeResultDTO struct {
	Revoked int64 `json:"revoked"`
}
