package usecases

import (
	"context"
	"time"

	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	"github.com/ledgerpos/ledgerpos/internal/shared/authorization"
)

type mockProfileRepository struct {
	roles map[string]authorization.Role
	err   error
}

func (m *mockProfileRepository) GetByUsernameLower(ctx context.Context, usernameLower string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	role, ok := m.roles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return profile.ReconstructProfile(userID, "biz_1", userID, userID+"@example.com", role, time.Now()), nil
}

type mockEnforcer struct {
	EnforceFunc func(role authorization.Role, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(role authorization.Role, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, resource, action)
	}
	return false, nil
}

// superAdminOnlyRevokeUser mirrors the default casbin policy set.
func superAdminOnlyRevokeUser(role authorization.Role, _, action string) (bool, error) {
	if action == "revoke_user" {
		return role.IsSuperAdmin(), nil
	}
	return true, nil
}

type mockSessionRepository struct {
	ListActiveByUserIDFunc func(ctx context.Context, userID string) ([]*session.Session, error)
	RevokeAllByUserIDFunc  func(ctx context.Context, userID, exceptID string) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *session.Session) error {
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*session.Session, error) {
	return nil, session.ErrSessionNotFound
}

func (m *mockSessionRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*session.Session, error) {
	if m.ListActiveByUserIDFunc != nil {
		return m.ListActiveByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	return nil
}

func (m *mockSessionRepository) RevokeAllByUserID(ctx context.Context, userID, exceptID string) (int64, error) {
	if m.RevokeAllByUserIDFunc != nil {
		return m.RevokeAllByUserIDFunc(ctx, userID, exceptID)
	}
	return 0, nil
}
