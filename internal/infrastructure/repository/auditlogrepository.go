package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerpos/ledgerpos/internal/domain/auditlog"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/mappers"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/persistence/models"
	"github.com/ledgerpos/ledgerpos/internal/shared/db"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/mapper"
)

var auditLogSortColumns = map[string]string{
	"created_at":  "created_at",
	"action":      "action",
	"entity_type": "entity_type",
}

// AuditLogRepository implements auditlog.Repository.
type AuditLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditLogRepository(gdb *gorm.DB, log logger.Interface) auditlog.Repository {
	return &AuditLogRepository{db: gdb, logger: log}
}

func (r *AuditLogRepository) Create(ctx context.Context, e *auditlog.Entry) error {
	model, err := mappers.AuditLogToModel(e)
	if err != nil {
		return err
	}
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create audit log", "entity_type", e.EntityType(), "error", err)
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, filter auditlog.Filter) ([]*auditlog.Entry, int64, error) {
	where := auditLogFilterScope(filter)

	var total int64
	if err := db.Conn(ctx, r.db).Model(&models.AuditLogModel{}).Scopes(where).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count audit logs", "error", err)
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	var list []*models.AuditLogModel
	err := db.Conn(ctx, r.db).
		Scopes(where, db.Paginate(filter.Offset(), filter.Limit())).
		Order(filter.OrderClause(auditLogSortColumns, "created_at DESC")).
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to list audit logs", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	return mapper.MapSlicePtr(list, mappers.AuditLogToDomain), total, nil
}

func auditLogFilterScope(filter auditlog.Filter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.BusinessID != "" {
			tx = tx.Where("business_id = ?", filter.BusinessID)
		}
		if filter.EntityType != "" {
			tx = tx.Where("entity_type = ?", filter.EntityType)
		}
		if filter.ActorID != "" {
			tx = tx.Where("actor_id = ?", filter.ActorID)
		}
		if !filter.From.IsZero() {
			tx = tx.Where("created_at >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			tx = tx.Where("created_at < ?", filter.To)
		}
		return tx
	}
}
