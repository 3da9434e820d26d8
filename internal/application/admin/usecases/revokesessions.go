package usecases

import (
	"context"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/application/admin"
	"github.com/ledgerpos/ledgerpos/internal/application/admin/dto"
	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// RevokeSessionsCommand picks the sessions to sign out with Action:
// revoke_user signs out every session of TargetUserID, revoke_others every
// session of the caller but the current one, revoke_all every session of the
// caller.
type RevokeSessionsCommand struct {
	Caller       Caller
	Action       admin.Action
	TargetUserID string
}

type RevokeSessionsUseCase struct {
	sessions   session.Repository
	authorizer *admin.Authorizer
	logger     logger.Interface
}

func NewRevokeSessionsUseCase(sessions session.Repository, authorizer *admin.Authorizer, logger logger.Interface) *RevokeSessionsUseCase {
	return &RevokeSessionsUseCase{sessions: sessions, authorizer: authorizer, logger: logger}
}

func (uc *RevokeSessionsUseCase) Execute(ctx context.Context, cmd RevokeSessionsCommand) (*dto.RevokeResultDTO, error) {
	var userID, exceptID string
	switch cmd.Action {
	case admin.ActionRevokeUser:
		if cmd.TargetUserID == "" {
			return nil, apperrors.NewValidationError("user_id is required")
		}
		userID = cmd.TargetUserID
	case admin.ActionRevokeOthers:
		if cmd.Caller.SessionID == "" {
			return nil, apperrors.NewValidationError("current session is unknown")
		}
		userID, exceptID = cmd.Caller.UserID, cmd.Caller.SessionID
	case admin.ActionRevokeAll:
		userID = cmd.Caller.UserID
	default:
		return nil, apperrors.NewValidationError("unsupported revoke action")
	}

	res := uc.authorizer.Authorize(ctx, cmd.Caller.UserID, cmd.Action)
	if !res.Authorized {
		uc.logger.Warnw("session revoke denied",
			"user_id", cmd.Caller.UserID,
			"action", cmd.Action,
			"reason", res.Reason,
		)
		return nil, apperrors.NewForbiddenError("not allowed to revoke these sessions")
	}

	n, err := uc.sessions.RevokeAllByUserID(ctx, userID, exceptID)
	if err != nil {
		uc.logger.Errorw("failed to revoke sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}

	uc.logger.Infow("sessions revoked",
		"actor_id", cmd.Caller.UserID,
		"user_id", userID,
		"action", cmd.Action,
		"count", n,
	)
	return &dto.RevokeResultDTO{Revoked: n}, nil
}
