package handlers

import (
	"context"

	auditusecases "github.com/ledgerpos/ledgerpos/internal/application/auditlog/usecases"
	categorydto "github.com/ledgerpos/ledgerpos/internal/application/category/dto"
	categoryusecases "github.com/ledgerpos/ledgerpos/internal/application/category/usecases"
	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
)

type modeStore interface {
	State() connectivity.Mode
	SetMode(ctx context.Context, mode connectivity.Mode) error
}

type statusStore interface {
	State() connectivity.State
	ApplyReachability(mode connectivity.Mode, reachable bool)
}

type syncRunner interface {
	Run(ctx context.Context) error
}

type reachabilityProbe interface {
	Reachable(ctx context.Context) bool
}

type planAccess interface {
	Access(ctx context.Context) *plan.Access
	Refresh(ctx context.Context) (*plan.Access, error)
}

type upgradeCoordinator interface {
	State() upgrade.State
	Destination() string
	Open(args upgrade.OpenArgs) upgrade.State
	Close()
	UpgradeNow(ctx context.Context) error
	NotNow()
}

type listCategoriesUseCase interface {
	Execute(ctx context.Context, businessID string) ([]*categorydto.CategoryDTO, error)
}

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd categoryusecases.CreateCategoryCommand) (*categorydto.CategoryDTO, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd categoryusecases.UpdateCategoryCommand) (*categorydto.CategoryDTO, error)
}

type listAuditLogsUseCase interface {
	Execute(ctx context.Context, q auditusecases.ListAuditLogsQuery) (*auditusecases.ListAuditLogsResult, error)
}

type superAdminChecker interface {
	CheckSuperAdmin(ctx context.Context, bearer string) bool
}
