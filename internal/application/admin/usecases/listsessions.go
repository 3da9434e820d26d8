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

// ListSessionsUseCase lists the caller's own active sessions.
type ListSessionsUseCase struct {
	sessions   session.Repository
	authorizer *admin.Authorizer
	logger     logger.Interface
}

func NewListSessionsUseCase(sessions session.Repository, authorizer *admin.Authorizer, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{sessions: sessions, authorizer: authorizer, logger: logger}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, caller Caller) ([]*dto.SessionDTO, error) {
	if res := uc.authorizer.Authorize(ctx, caller.UserID, admin.ActionList); !res.Authorized {
		return nil, apperrors.NewForbiddenError("not allowed to list sessions")
	}

	list, err := uc.sessions.ListActiveByUserID(ctx, caller.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "user_id", caller.UserID, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := make([]*dto.SessionDTO, 0, len(list))
	for _, s := range list {
		result = append(result, dto.ToSessionDTO(s, caller.SessionID))
	}
	return result, nil
}
