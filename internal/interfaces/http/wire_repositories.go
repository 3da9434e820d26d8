package http

import (
	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/domain/category"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/profile"
	"github.com/ledgerpos/ledgerpos/internal/domain/session"
	"github.com/ledgerpos/ledgerpos/internal/domain/setting"
	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/repository"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	auditLogRepo      auditlog.Repository
	categoryRepo      category.Repository
	settingRepo       setting.Repository
	profileRepo       profile.Repository
	sessionRepo       session.Repository
	subscriptionRepo  plan.Repository
	syncOperationRepo syncqueue.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		auditLogRepo:      repository.NewAuditLogRepository(db, log),
		categoryRepo:      repository.NewCategoryRepository(db, log),
		settingRepo:       repository.NewLocalSettingRepository(db, log),
		profileRepo:       repository.NewProfileRepository(db, log),
		sessionRepo:       repository.NewSessionRepository(db, log),
		subscriptionRepo:  repository.NewSubscriptionRepository(db, log),
		syncOperationRepo: repository.NewSyncOperationRepository(db, log),
	}
}
