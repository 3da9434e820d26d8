package mappers

import (
	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/authorization"
)

// ProfileToDomain maps a stored profile. An unknown stored role degrades to
// the least privileged one.
func ProfileToDomain(m *models.ProfileModel) *profile.Profile {
	if m == nil {
		return nil
	}
	return profile.ReconstructProfile(
		m.UserID,
		m.BusinessID,
		m.Username,
		m.Email,
		authorization.ParseRole(m.Role),
		m.CreatedAt,
	)
}

func ProfileToModel(p *profile.Profile) *models.ProfileModel {
	if p == nil {
		return nil
	}
	return &models.ProfileModel{
		UserID:        p.UserID(),
		BusinessID:    p.BusinessID(),
		Username:      p.Username(),
		UsernameLower: p.UsernameLower(),
		Email:         p.Email(),
		Role:          p.Role().String(),
		CreatedAt:     p.CreatedAt(),
	}
}
