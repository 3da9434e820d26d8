package mappers

import (
	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
)

func SessionToDomain(m *models.SessionModel) *session.Session {
	if m == nil {
		return nil
	}
	return session.ReconstructSession(
		m.ID,
		m.UserID,
		m.DeviceName,
		m.IPAddress,
		m.UserAgent,
		m.CreatedAt,
		m.LastSeenAt,
		m.RevokedAt,
	)
}

func SessionToModel(s *session.Session) *models.SessionModel {
	if s == nil {
		return nil
	}
	return &models.SessionModel{
		ID:         s.ID(),
		UserID:     s.UserID(),
		DeviceName: s.DeviceName(),
		IPAddress:  s.IPAddress(),
		UserAgent:  s.UserAgent(),
		CreatedAt:  s.CreatedAt(),
		LastSeenAt: s.LastSeenAt(),
		RevokedAt:  s.RevokedAt(),
	}
}

func SessionsToDomain(list []*models.SessionModel) []*session.Session {
	return mapper.MapSlicePtr(list, SessionToDomain)
}
