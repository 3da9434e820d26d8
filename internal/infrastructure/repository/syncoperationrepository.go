package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/syncqueue"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// SyncOperationRepository implements syncqueue.Repository.
type SyncOperationRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSyncOperationRepository(gdb *gorm.DB, log logger.Interface) syncqueue.Repository {
	return &SyncOperationRepository{db: gdb, logger: log}
}

func (r *SyncOperationRepository) Enqueue(ctx context.Context, op *syncqueue.Operation) error {
	if err := db.Conn(ctx, r.db).Create(mappers.SyncOperationToModel(op)).Error; err != nil {
		r.logger.Errorw("failed to enqueue sync operation", "entity_type", op.EntityType(), "error", err)
		return fmt.Errorf("failed to enqueue sync operation: %w", err)
	}
	return nil
}

func (r *SyncOperationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := db.Conn(ctx, r.db).
		Model(&models.SyncOperationModel{}).
		Scopes(pending).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sync operations: %w", err)
	}
	return count, nil
}

func (r *SyncOperationRepository) CountFailed(ctx context.Context) (int64, error) {
	var count int64
	err := db.Conn(ctx, r.db).
		Model(&models.SyncOperationModel{}).
		Where("failed_at IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count failed sync operations: %w", err)
	}
	return count, nil
}

func (r *SyncOperationRepository) ListPending(ctx context.Context, limit int) ([]*syncqueue.Operation, error) {
	var list []*models.SyncOperationModel
	err := db.Conn(ctx, r.db).
		Scopes(pending).
		Order("created_at ASC, id ASC").
		Scopes(db.Paginate(0, limit)).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync operations: %w", err)
	}
	return mappers.SyncOperationsToDomain(list), nil
}

func (r *SyncOperationRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.Conn(ctx, r.db).Where("id IN ?", ids).Delete(&models.SyncOperationModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete sync operations: %w", err)
	}
	return nil
}

func (r *SyncOperationRepository) MarkFailed(ctx context.Context, ids []string, reason string) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.Conn(ctx, r.db).
		Model(&models.SyncOperationModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
			"failed_at":  biztime.NowUTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark sync operations failed: %w", err)
	}
	return nil
}

func pending(tx *gorm.DB) *gorm.DB {
	return tx.Where("failed_at IS NULL")
}
