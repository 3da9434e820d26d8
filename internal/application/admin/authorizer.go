// Package admin authorizes session management actions. Every failure to
// decide is a denial.
package admin

import (
	"context"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/shared/authorization"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// ResourceSessions is the casbin object for every session action.
const ResourceSessions = "sessions"

type Action string

const (
	ActionCheckSuperAdmin Action = "check_super_admin"
	ActionList            Action = "list"
	ActionRevokeUser      Action = "revoke_user"
	ActionRevokeOthers    Action = "revoke_others"
	ActionRevokeAll       Action = "revoke_all"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCheckSuperAdmin, ActionList, ActionRevokeUser, ActionRevokeOthers, ActionRevokeAll:
		return true
	}
	return false
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("unknown admin action %q", s)
	}
	return a, nil
}

type PermissionEnforcer interface {
	Enforce(role authorization.Role, resource, action string) (bool, error)
}

// AuthorizationResult is the outcome of an authorization check. Role is the
// caller's stored role when it could be resolved.
type AuthorizationResult struct {
	Authorized bool
	Role       authorization.Role
	Reason     string
}

func denied(reason string) AuthorizationResult {
	return AuthorizationResult{Reason: reason}
}

type Authorizer struct {
	profiles profile.Repository
	enforcer PermissionEnforcer
	logger   logger.Interface
}

func NewAuthorizer(profiles profile.Repository, enforcer PermissionEnforcer, logger logger.Interface) *Authorizer {
	return &Authorizer{profiles: profiles, enforcer: enforcer, logger: logger}
}

// Authorize checks action against the role stored on the caller's profile,
// not the role claimed in the token.
func (a *Authorizer) Authorize(ctx context.Context, userID string, action Action) AuthorizationResult {
	if userID == "" {
		return denied("missing caller")
	}

	p, err := a.profiles.GetByUserID(ctx, userID)
	if err != nil {
		a.logger.Warnw("failed to resolve caller role", "user_id", userID, "error", err)
		return denied("caller role unavailable")
	}

	allowed, err := a.enforcer.Enforce(p.Role(), ResourceSessions, string(action))
	if err != nil {
		a.logger.Warnw("permission check failed, denying", "user_id", userID, "action", action, "error", err)
		return AuthorizationResult{Role: p.Role(), Reason: "permission check failed"}
	}
	if !allowed {
		return AuthorizationResult{Role: p.Role(), Reason: "action not permitted for role"}
	}
	return AuthorizationResult{Authorized: true, Role: p.Role()}
}

// IsSuperAdmin answers false whenever the role cannot be resolved.
func (a *Authorizer) IsSuperAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	p, err := a.profiles.GetByUserID(ctx, userID)
	if err != nil {
		a.logger.Warnw("failed to resolve caller role", "user_id", userID, "error", err)
		return false
	}
	return p.Role().IsSuperAdmin()
}
