package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type LookupUsernameQuery struct {
	Username string
}

type LookupUsernameResult struct {
	Email string `json:"email"`
}

// LookupUsernameUseCase resolves a username to the sign-in email.
// Usernames match case-insensitively.
type LookupUsernameUseCase struct {
	profiles profile.Repository
	logger   logger.Interface
}

func NewLookupUsernameUseCase(profiles profile.Repository, logger logger.Interface) *LookupUsernameUseCase {
	return &LookupUsernameUseCase{profiles: profiles, logger: logger}
}

func (uc *LookupUsernameUseCase) Execute(ctx context.Context, query LookupUsernameQuery) (*LookupUsernameResult, error) {
	username := profile.NormalizeUsername(query.Username)
	if username == "" {
		return nil, apperrors.NewBadRequestError("username is required")
	}

	p, err := uc.profiles.GetByUsernameLower(ctx, username)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			uc.logger.Debugw("username not found", "username", utils.MaskUsername(username))
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to look up username", "username", utils.MaskUsername(username), "error", err)
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	if !p.HasEmail() {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	uc.logger.Debugw("username resolved", "username", utils.MaskUsername(username), "email", utils.MaskEmail(p.Email()))
	return &LookupUsernameResult{Email: p.Email()}, nil
}
