package usecases

import (
	"context"

	"github.com/ledgerpos/ledgerpos/internal/application/admin"
	"github.com/ledgerpos/ledgerpos/internal/application/admin/dto"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type CheckSuperAdminUseCase struct {
	authorizer *admin.Authorizer
	logger     logger.Interface
}

func NewCheckSuperAdminUseCase(authorizer *admin.Authorizer, logger logger.Interface) *CheckSuperAdminUseCase {
	return &CheckSuperAdminUseCase{authorizer: authorizer, logger: logger}
}

func (uc *CheckSuperAdminUseCase) Execute(ctx context.Context, caller Caller) *dto.SuperAdminStatusDTO {
	return &dto.SuperAdminStatusDTO{IsSuperAdmin: uc.authorizer.IsSuperAdmin(ctx, caller.UserID)}
}
