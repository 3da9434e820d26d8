package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// SubscriptionRepository implements plan.Repository on the local cache table.
type SubscriptionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(gdb *gorm.DB, log logger.Interface) plan.Repository {
	return &SubscriptionRepository{db: gdb, logger: log}
}

func (r *SubscriptionRepository) GetByBusinessID(ctx context.Context, businessID string) (*plan.Subscription, error) {
	var model models.SubscriptionModel
	err := db.Conn(ctx, r.db).Where("business_id = ?", businessID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrNotFound
		}
		r.logger.Errorw("failed to get subscription", "business_id", businessID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToDomain(&model), nil
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *plan.Subscription) error {
	err := db.Conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "business_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan_name", "features", "max_users", "max_products", "max_branches", "max_devices", "updated_at",
		}),
	}).Create(mappers.SubscriptionToModel(sub)).Error
	if err != nil {
		r.logger.Errorw("failed to save subscription", "business_id", sub.BusinessID, "error", err)
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}
